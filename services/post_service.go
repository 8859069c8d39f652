package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/dto"
	"inkwell/models"
)

// PostService encapsulates business logic for posts: creation, lookup,
// search, owner-gated mutation and DTO mapping. Like counts are read through
// the LikeStore when rendering.
type PostService struct {
	posts PostStore
	likes LikeStore
}

func NewPostService(posts PostStore, likes LikeStore) *PostService {
	return &PostService{posts: posts, likes: likes}
}

type CreatePostInput struct {
	Title   string
	Content string
	Tags    []string
}

type UpdatePostInput struct {
	Title   string
	Content string
	Tags    []string
}

// Create persists a new post authored by the given identity. The author's
// name, username and image are denormalized onto the post and never
// refreshed afterwards.
func (s *PostService) Create(ctx context.Context, in CreatePostInput, author Identity) (string, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return "", fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return "", err
	}

	post := &models.Post{
		Title:          title,
		Content:        content,
		Tags:           tags,
		AuthorID:       author.UserID,
		AuthorName:     author.Name,
		AuthorUsername: author.Username,
		AuthorImage:    author.Image,
	}

	id, err := s.posts.Insert(ctx, post)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// GetByID loads a post by its ObjectID hex and returns a DTO decorated with
// the like count. viewerID may be empty for anonymous requests; when set,
// IsLiked is populated for that viewer.
func (s *PostService) GetByID(ctx context.Context, hexID, viewerID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrInvalidID
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	decorated, err := s.decorate(ctx, []models.Post{*post}, viewerID)
	if err != nil {
		return nil, err
	}
	return &decorated[0], nil
}

// List returns all posts newest-first, optionally narrowed by a free-text
// search query.
func (s *PostService) List(ctx context.Context, search, viewerID string) ([]dto.PostDTO, error) {
	posts, err := s.posts.List(ctx, search)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, posts, viewerID)
}

// ListByAuthor returns the posts whose denormalized author username matches.
func (s *PostService) ListByAuthor(ctx context.Context, username, viewerID string) ([]dto.PostDTO, error) {
	posts, err := s.posts.ListByAuthorUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, posts, viewerID)
}

// Update replaces title/content/tags of a post owned by the actor.
// A missing post reports ErrNotFound before ownership is ever considered.
func (s *PostService) Update(ctx context.Context, hexID string, in UpdatePostInput, actorID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidID
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !canMutate(post, actorID) {
		return ErrForbidden
	}

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}
	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return err
	}

	return s.posts.Update(ctx, id, title, content, tags)
}

// Delete removes a post owned by the actor together with its like facts, so
// no orphaned facts survive the post.
func (s *PostService) Delete(ctx context.Context, hexID, actorID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return ErrInvalidID
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !canMutate(post, actorID) {
		return ErrForbidden
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}
	return s.likes.RemoveAllByPost(ctx, id)
}

// decorate maps posts to DTOs and fills likes_count (always) and is_liked
// (only for an authenticated viewer) with batch lookups.
func (s *PostService) decorate(ctx context.Context, posts []models.Post, viewerID string) ([]dto.PostDTO, error) {
	out := make([]dto.PostDTO, 0, len(posts))
	if len(posts) == 0 {
		return out, nil
	}

	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
	}

	counts, err := s.likes.CountByPosts(ctx, ids)
	if err != nil {
		return nil, err
	}

	var liked map[primitive.ObjectID]bool
	if viewerID != "" {
		liked, err = s.likes.ListLikedPostIDs(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range posts {
		d := dto.NewPostDTO(p)
		d.LikesCount = counts[p.ID]
		if viewerID != "" {
			v := liked[p.ID]
			d.IsLiked = &v
		}
		out = append(out, d)
	}
	return out, nil
}
