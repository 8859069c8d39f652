package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkwell/models"
)

// In-memory stores mirroring the Mongo repository contracts, so the services
// can be exercised without a database.

type fakePostStore struct {
	posts map[primitive.ObjectID]models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[primitive.ObjectID]models.Post{}}
}

func (s *fakePostStore) Insert(_ context.Context, p *models.Post) (primitive.ObjectID, error) {
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = p.CreatedAt
	p.ID = primitive.NewObjectID()
	if p.Tags == nil {
		p.Tags = []string{}
	}
	s.posts[p.ID] = *p
	return p.ID, nil
}

func (s *fakePostStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (s *fakePostStore) Update(_ context.Context, id primitive.ObjectID, title, content string, tags []string) error {
	p, ok := s.posts[id]
	if !ok {
		return nil
	}
	p.Title = title
	p.Content = content
	p.Tags = tags
	p.UpdatedAt = time.Now().Add(time.Millisecond)
	s.posts[id] = p
	return nil
}

func (s *fakePostStore) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(s.posts, id)
	return nil
}

func (s *fakePostStore) List(_ context.Context, search string) ([]models.Post, error) {
	q := strings.ToLower(search)
	uq := strings.TrimPrefix(q, "@")

	out := []models.Post{}
	for _, p := range s.posts {
		if search == "" || s.matches(p, q, uq) {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *fakePostStore) matches(p models.Post, q, uq string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(t, q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.AuthorUsername), uq)
}

func (s *fakePostStore) ListByAuthorUsername(_ context.Context, username string) ([]models.Post, error) {
	out := []models.Post{}
	for _, p := range s.posts {
		if p.AuthorUsername == username {
			out = append(out, p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type fakeLikeStore struct {
	facts map[string]bool
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{facts: map[string]bool{}}
}

func likeKey(postID primitive.ObjectID, userID string) string {
	return postID.Hex() + "|" + userID
}

func (s *fakeLikeStore) Add(_ context.Context, postID primitive.ObjectID, userID string) error {
	s.facts[likeKey(postID, userID)] = true
	return nil
}

func (s *fakeLikeStore) Remove(_ context.Context, postID primitive.ObjectID, userID string) (bool, error) {
	key := likeKey(postID, userID)
	if !s.facts[key] {
		return false, nil
	}
	delete(s.facts, key)
	return true, nil
}

func (s *fakeLikeStore) CountByPost(_ context.Context, postID primitive.ObjectID) (int64, error) {
	var n int64
	prefix := postID.Hex() + "|"
	for key := range s.facts {
		if strings.HasPrefix(key, prefix) {
			n++
		}
	}
	return n, nil
}

func (s *fakeLikeStore) CountByPosts(ctx context.Context, postIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := map[primitive.ObjectID]int64{}
	for _, id := range postIDs {
		n, _ := s.CountByPost(ctx, id)
		if n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

func (s *fakeLikeStore) ListLikedPostIDs(_ context.Context, userID string, postIDs []primitive.ObjectID) (map[primitive.ObjectID]bool, error) {
	liked := map[primitive.ObjectID]bool{}
	for _, id := range postIDs {
		if s.facts[likeKey(id, userID)] {
			liked[id] = true
		}
	}
	return liked, nil
}

func (s *fakeLikeStore) RemoveAllByPost(_ context.Context, postID primitive.ObjectID) error {
	prefix := postID.Hex() + "|"
	for key := range s.facts {
		if strings.HasPrefix(key, prefix) {
			delete(s.facts, key)
		}
	}
	return nil
}

type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (s *fakeUserStore) Insert(_ context.Context, u *models.User) (primitive.ObjectID, error) {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	u.ID = primitive.NewObjectID()
	s.users[u.ID] = *u
	return u.ID, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

func (s *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}
