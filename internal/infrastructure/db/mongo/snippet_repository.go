package mongo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/snippetvault/snippet-api/internal/core/domain"
)

const snippetsCollection = "snippets"

// SnippetRepository implements ports.SnippetRepository on MongoDB.
type SnippetRepository struct {
	coll *mongo.Collection
}

func NewSnippetRepository(db *mongo.Database) *SnippetRepository {
	return &SnippetRepository{coll: db.Collection(snippetsCollection)}
}

type mongoSnippet struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Title     string              `bson:"title"`
	Code      string              `bson:"code"`
	Language  string              `bson:"language"`
	Category  string              `bson:"category,omitempty"`
	CreatedBy *primitive.ObjectID `bson:"created_by,omitempty"`
	CreatedAt time.Time           `bson:"created_at"`
}

// annotatedSnippet is the $lookup output shape: the snippet document plus the
// joined creator (zero or one element).
type annotatedSnippet struct {
	mongoSnippet `bson:",inline"`
	Creator      []mongoUser `bson:"creator"`
}

func (a annotatedSnippet) toDomain() *domain.Snippet {
	s := &domain.Snippet{
		ID:        a.ID.Hex(),
		Title:     a.Title,
		Code:      a.Code,
		Language:  a.Language,
		Category:  a.Category,
		CreatedAt: a.CreatedAt.UTC(),
	}
	if len(a.Creator) > 0 {
		s.CreatedBy = &domain.Creator{
			ID:       a.Creator[0].ID.Hex(),
			Username: a.Creator[0].Username,
		}
	}
	return s
}

// lookupStage joins the creator user document onto each snippet. A deleted
// creator simply produces an empty array, which maps to a nil CreatedBy.
func lookupStage() bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: usersCollection},
		{Key: "localField", Value: "created_by"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "creator"},
	}}}
}

// Insert persists a snippet with a server-set created_at and returns it
// annotated with its creator.
func (r *SnippetRepository) Insert(ctx context.Context, s *domain.Snippet) (*domain.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSnippet{
		Title:     s.Title,
		Code:      s.Code,
		Language:  s.Language,
		Category:  s.Category,
		CreatedAt: time.Now().UTC(),
	}
	if s.CreatedBy != nil {
		oid, err := primitive.ObjectIDFromHex(s.CreatedBy.ID)
		if err != nil {
			return nil, fmt.Errorf("insert snippet: creator id: %w", err)
		}
		doc.CreatedBy = &oid
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert snippet: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert snippet: unexpected id type %T", res.InsertedID)
	}
	return r.findAnnotated(ctx, oid)
}

// List returns every snippet, newest first, with creator usernames joined in a
// single aggregation (no N+1 user lookups).
func (r *SnippetRepository) List(ctx context.Context) ([]*domain.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		lookupStage(),
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer cur.Close(ctx)

	snippets := []*domain.Snippet{}
	for cur.Next(ctx) {
		var a annotatedSnippet
		if err := cur.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode snippet: %w", err)
		}
		snippets = append(snippets, a.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	return snippets, nil
}

// Update applies the non-nil patch fields with a single $set. Concurrent
// updates interleave with last-write-wins semantics per field.
func (r *SnippetRepository) Update(ctx context.Context, id string, patch domain.SnippetPatch) (*domain.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSnippetNotFound
	}

	if patch.Empty() {
		return r.findAnnotated(ctx, oid)
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Code != nil {
		set["code"] = *patch.Code
	}
	if patch.Language != nil {
		set["language"] = *patch.Language
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update snippet: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSnippetNotFound
	}
	return r.findAnnotated(ctx, oid)
}

func (r *SnippetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSnippetNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete snippet: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSnippetNotFound
	}
	return nil
}

// Languages returns the sorted distinct language tags. Empty tags are excluded
// to uphold the non-empty language invariant even against legacy documents.
func (r *SnippetRepository) Languages(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "language", bson.M{"language": bson.M{"$ne": ""}})
	if err != nil {
		return nil, fmt.Errorf("distinct languages: %w", err)
	}

	langs := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			langs = append(langs, s)
		}
	}
	sort.Strings(langs)
	return langs, nil
}

// EnsureIndexes creates the indexes backing the list sort and language index.
func (r *SnippetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "language", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *SnippetRepository) findAnnotated(ctx context.Context, oid primitive.ObjectID) (*domain.Snippet, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": oid}}},
		lookupStage(),
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find snippet: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		if err := cur.Err(); err != nil {
			return nil, fmt.Errorf("find snippet: %w", err)
		}
		return nil, domain.ErrSnippetNotFound
	}

	var a annotatedSnippet
	if err := cur.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode snippet: %w", err)
	}
	return a.toDomain(), nil
}
