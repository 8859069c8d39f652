package repositories

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"inkwell/models"
)

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Insert inserts a new post document and returns its generated id.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (primitive.ObjectID, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	if p.Tags == nil {
		p.Tags = []string{}
	}

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID returns a post by id, or nil when no document matches.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces title/content/tags and refreshes updated_at.
// Author fields, created_at and the like facts are left untouched.
func (r *PostRepository) Update(ctx context.Context, id primitive.ObjectID, title, content string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{
			"title":      title,
			"content":    content,
			"tags":       tags,
			"updated_at": time.Now(),
		},
	})
	return err
}

// Delete removes a post document.
func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// List returns posts sorted newest-first, optionally filtered by a free-text
// search over title, content, tags and author username.
func (r *PostRepository) List(ctx context.Context, search string) ([]models.Post, error) {
	return r.find(ctx, searchFilter(search))
}

// ListByAuthorUsername returns a user's posts sorted newest-first.
func (r *PostRepository) ListByAuthorUsername(ctx context.Context, username string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"author_username": username})
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, filter, newestFirstOptions())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// newestFirstOptions sorts listings by creation time, newest first.
func newestFirstOptions() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}

// searchFilter builds the case-insensitive $or filter for free-text search.
// A leading "@" is stripped before matching against author_username so that
// "@alice" finds alice's posts.
func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}

	pattern := regexp.QuoteMeta(search)
	usernamePattern := regexp.QuoteMeta(strings.TrimPrefix(search, "@"))

	return bson.M{
		"$or": bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"content": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"tags": bson.M{"$in": bson.A{primitive.Regex{Pattern: pattern, Options: "i"}}}},
			bson.M{"author_username": primitive.Regex{Pattern: usernamePattern, Options: "i"}},
		},
	}
}
