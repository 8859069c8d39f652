package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeService toggles a user's like on a post and reports the resulting
// aggregate state. A like is a separate fact document, not a field on the
// post, so toggling never rewrites the post itself.
type LikeService struct {
	posts PostStore
	likes LikeStore
}

func NewLikeService(posts PostStore, likes LikeStore) *LikeService {
	return &LikeService{posts: posts, likes: likes}
}

// LikeState is the result of a toggle.
type LikeState struct {
	LikesCount int64
	IsLiked    bool
}

// Toggle flips whether the user likes the post: an existing fact is removed,
// a missing one is inserted. The target post must exist; a like is never
// recorded against a dangling post id.
//
// The remove branch is a single atomic DeleteOne and the insert branch rides
// on the unique (post_id, user_id) index, so two racing toggles by the same
// user cannot double-insert or double-delete.
func (s *LikeService) Toggle(ctx context.Context, hexID, userID string) (LikeState, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return LikeState{}, ErrInvalidID
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return LikeState{}, err
	}
	if post == nil {
		return LikeState{}, ErrNotFound
	}

	removed, err := s.likes.Remove(ctx, id, userID)
	if err != nil {
		return LikeState{}, err
	}
	if !removed {
		if err := s.likes.Add(ctx, id, userID); err != nil {
			return LikeState{}, err
		}
	}

	count, err := s.likes.CountByPost(ctx, id)
	if err != nil {
		return LikeState{}, err
	}

	return LikeState{LikesCount: count, IsLiked: !removed}, nil
}
