package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a user-authored post document.
// Collection: posts
//
// Author fields are a denormalized snapshot taken at creation time and are
// not refreshed when the user's profile changes later.
type Post struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Content        string             `bson:"content" json:"content"`
	Tags           []string           `bson:"tags" json:"tags"`
	AuthorID       string             `bson:"author_id" json:"author_id"`
	AuthorName     string             `bson:"author_name" json:"author_name"`
	AuthorUsername string             `bson:"author_username" json:"author_username"`
	AuthorImage    string             `bson:"author_image,omitempty" json:"author_image,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}
