package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository, shared with viewer_service_test.go
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id, role string) error {
	u, ok := r.users[id]
	if !ok || u.Role != role {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	user, err := svc.Register(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected an id")
	}
	if user.Role != domain.RoleViewer {
		t.Fatalf("expected viewer role, got %s", user.Role)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "pw1")
	if err != nil {
		t.Fatalf("login after register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "", "pw"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "bob", "pw"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pw2"); !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestAuthService_Login_TokenClaims(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	user, err := svc.Register(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != user.ID {
		t.Fatalf("expected user_id %s, got %v", user.ID, claims["user_id"])
	}
	if claims["role"] != domain.RoleViewer {
		t.Fatalf("expected role %s, got %v", domain.RoleViewer, claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestAuthService_Login_EnumerationResistance(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "dave", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassErr := svc.Login(context.Background(), "dave", "badpass")
	_, unknownUserErr := svc.Login(context.Background(), "ghost", "whatever")

	if !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassErr)
	}
	if !errors.Is(unknownUserErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown username: expected ErrInvalidCredentials, got %v", unknownUserErr)
	}
	if wrongPassErr.Error() != unknownUserErr.Error() {
		t.Fatalf("error messages differ: %q vs %q", wrongPassErr, unknownUserErr)
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "root", "rootpw"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "root")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}

	// Second call is a no-op.
	if err := svc.EnsureAdmin(context.Background(), "root", "rootpw"); err != nil {
		t.Fatalf("repeat EnsureAdmin failed: %v", err)
	}
	if n := len(repo.users); n != 1 {
		t.Fatalf("expected 1 user, got %d", n)
	}
}

func TestAuthService_EnsureAdmin_Unconfigured(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "secret", time.Hour, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "", ""); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("expected no users created")
	}
}
