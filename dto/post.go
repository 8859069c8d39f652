package dto

import (
	"time"

	"inkwell/models"
)

// PostDTO is the transport shape for a post.
// LikesCount is always populated; IsLiked only when the request carried a
// valid session token.
type PostDTO struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	AuthorID       string    `json:"author_id"`
	AuthorName     string    `json:"author_name"`
	AuthorUsername string    `json:"author_username"`
	AuthorImage    string    `json:"author_image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	LikesCount     int64     `json:"likes_count"`
	IsLiked        *bool     `json:"is_liked,omitempty"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:             p.ID.Hex(),
		Title:          p.Title,
		Content:        p.Content,
		Tags:           p.Tags,
		AuthorID:       p.AuthorID,
		AuthorName:     p.AuthorName,
		AuthorUsername: p.AuthorUsername,
		AuthorImage:    p.AuthorImage,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		LikesCount:     0,
	}
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// UpdatePostRequest is the body of PUT /posts/{id}.
type UpdatePostRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// CreatePostResponse carries the id of a freshly created post.
type CreatePostResponse struct {
	ID string `json:"id" example:"665f1c2ab8b4c53d1c0a9e11"`
}

// ToggleLikeResponse is the result of POST /posts/{id}/like.
type ToggleLikeResponse struct {
	LikesCount int64 `json:"likes_count" example:"3"`
	IsLiked    bool  `json:"is_liked" example:"true"`
}
