package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/auth"
	"inkwell/models"
)

// racingUserStore lets another sign-in land right before the first Insert,
// which then fails on the unique index the way Mongo reports it.
type racingUserStore struct {
	*fakeUserStore
	racer *models.User
}

func (s *racingUserStore) Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	if s.racer != nil {
		racer := s.racer
		s.racer = nil
		if _, err := s.fakeUserStore.Insert(ctx, racer); err != nil {
			return primitive.NilObjectID, err
		}
		if racer.Email == u.Email || racer.Username == u.Username {
			return primitive.NilObjectID, mongo.WriteException{
				WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
			}
		}
	}
	return s.fakeUserStore.Insert(ctx, u)
}

func TestEnsureUserCreatesAccountOnFirstSignIn(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	user, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{
		Sub:     "google-1",
		Email:   "alice@example.com",
		Name:    "Alice Kim",
		Picture: "https://example.com/a.png",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected username alice from email local part, got %q", user.Username)
	}
	if user.ID.IsZero() {
		t.Fatalf("expected persisted user to have an id")
	}
}

func TestEnsureUserReturnsExistingAccount(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	first, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{Email: "alice@example.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{Email: "alice@example.com", Name: "Alice Renamed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same account on repeat sign-in")
	}
	if len(users.users) != 1 {
		t.Fatalf("expected one stored user, got %d", len(users.users))
	}
}

func TestEnsureUserSuffixesCollidingUsernames(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	// Two different identities whose emails share the local part "alice".
	first, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{Email: "alice@example.com", Name: "Alice A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{Email: "alice@other.org", Name: "Alice B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	third, err := svc.EnsureUser(ctx, auth.GoogleUserInfo{Email: "alice@third.net", Name: "Alice C"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Username != "alice" {
		t.Fatalf("expected first username alice, got %q", first.Username)
	}
	if second.Username != "alice2" {
		t.Fatalf("expected second username alice2, got %q", second.Username)
	}
	if third.Username != "alice3" {
		t.Fatalf("expected third username alice3, got %q", third.Username)
	}
}

func TestEnsureUserRetriesUsernameAfterLostRace(t *testing.T) {
	base := newFakeUserStore()
	users := &racingUserStore{
		fakeUserStore: base,
		racer:         &models.User{Email: "alice@other.org", Name: "Alice B", Username: "alice"},
	}
	svc := NewUserService(users)

	// The concurrent sign-in grabs "alice" between the free check and the
	// insert; this sign-in must come back with the next suffix, not a failure.
	user, err := svc.EnsureUser(context.Background(), auth.GoogleUserInfo{Email: "alice@example.com", Name: "Alice A"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice2" {
		t.Fatalf("expected username alice2 after lost race, got %q", user.Username)
	}
	if len(base.users) != 2 {
		t.Fatalf("expected both accounts stored, got %d", len(base.users))
	}
}

func TestEnsureUserReturnsWinnerAfterLostEmailRace(t *testing.T) {
	base := newFakeUserStore()
	users := &racingUserStore{
		fakeUserStore: base,
		racer:         &models.User{Email: "alice@example.com", Name: "Alice", Username: "alice"},
	}
	svc := NewUserService(users)

	// The same identity signs in twice concurrently; the loser must adopt the
	// winner's account instead of erroring out.
	user, err := svc.EnsureUser(context.Background(), auth.GoogleUserInfo{Email: "alice@example.com", Name: "Alice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" || user.Username != "alice" {
		t.Fatalf("expected the winner's account, got %+v", user)
	}
	if len(base.users) != 1 {
		t.Fatalf("expected a single stored account, got %d", len(base.users))
	}
}

func TestGetByIDRejectsUnknownAndMalformedIDs(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, "not-hex"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for malformed id, got %v", err)
	}
	if _, err := svc.GetByID(ctx, "64f000000000000000000000"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for unknown id, got %v", err)
	}
}
