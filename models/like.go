package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is an independent fact asserting that a user currently likes a post.
// Collection: likes
//
// A unique compound index on (post_id, user_id) guarantees at most one fact
// per pair even when two toggles race.
type Like struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PostID    primitive.ObjectID `bson:"post_id" json:"post_id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
