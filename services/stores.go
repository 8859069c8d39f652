package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/models"
)

// PostStore is the post persistence surface the services depend on.
// Find methods return (nil, nil) when no document matches.
type PostStore interface {
	Insert(ctx context.Context, p *models.Post) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	Update(ctx context.Context, id primitive.ObjectID, title, content string, tags []string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, search string) ([]models.Post, error)
	ListByAuthorUsername(ctx context.Context, username string) ([]models.Post, error)
}

// LikeStore is the like-fact persistence surface. Add must tolerate a racing
// duplicate insert and Remove must report whether a fact was actually removed.
type LikeStore interface {
	Add(ctx context.Context, postID primitive.ObjectID, userID string) error
	Remove(ctx context.Context, postID primitive.ObjectID, userID string) (bool, error)
	CountByPost(ctx context.Context, postID primitive.ObjectID) (int64, error)
	CountByPosts(ctx context.Context, postIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error)
	ListLikedPostIDs(ctx context.Context, userID string, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error)
	RemoveAllByPost(ctx context.Context, postID primitive.ObjectID) error
}

// UserStore is the account persistence surface. Insert must surface the
// storage duplicate-key error unchanged so EnsureUser can retry a lost race.
type UserStore interface {
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}
