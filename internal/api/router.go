package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/snippetvault/snippet-api/internal/api/handler"
	"github.com/snippetvault/snippet-api/internal/api/middleware"
	"github.com/snippetvault/snippet-api/internal/core/service"
	"github.com/snippetvault/snippet-api/internal/infrastructure/config"
	mongodb "github.com/snippetvault/snippet-api/internal/infrastructure/db/mongo"
	redisdb "github.com/snippetvault/snippet-api/internal/infrastructure/db/redis"
)

// Router bundles the Echo instance with the auth service the startup sequence
// needs for admin bootstrapping.
type Router struct {
	Echo *echo.Echo
	Auth *service.AuthService
}

// NewRouter wires repositories, services and handlers onto an Echo instance
// with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *Router {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderContentType, middleware.TokenHeader},
	}))
	e.Use(echoprometheus.NewMiddleware("snippetvault"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	snippetRepo := mongodb.NewSnippetRepository(db)
	languageCache := redisdb.NewLanguageCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	snippetService := service.NewSnippetService(snippetRepo, languageCache, log)
	viewerService := service.NewViewerService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	snippetHandler := handler.NewSnippetHandler(snippetService)
	viewerHandler := handler.NewViewerHandler(viewerService)
	languageHandler := handler.NewLanguageHandler(snippetService)

	requireToken := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC("admin")

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Snippet routes: reads are public, mutations are admin-gated ---
	codes := e.Group("/api/codes")
	codes.GET("", snippetHandler.List)
	codes.POST("", snippetHandler.Create, requireToken, adminOnly)
	codes.PUT("/:id", snippetHandler.Update, requireToken, adminOnly)
	codes.DELETE("/:id", snippetHandler.Delete, requireToken, adminOnly)

	e.GET("/api/languages", languageHandler.List)

	// --- Viewer management (admin only) ---
	viewers := e.Group("/api/viewers", requireToken, adminOnly)
	viewers.GET("", viewerHandler.List)
	viewers.DELETE("/:id", viewerHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return &Router{Echo: e, Auth: authService}
}
