package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"inkwell/auth"
	"inkwell/models"
)

// maxSignInAttempts bounds the retry loop for concurrent first sign-ins
// racing on the unique email/username indexes.
const maxSignInAttempts = 3

// UserService manages accounts created lazily on first sign-in.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// EnsureUser returns the account for the signed-in Google identity, creating
// it on first sign-in. The username is derived from the email local part; a
// numeric suffix is appended until the value is free, so two accounts can
// never share a username. A concurrent first sign-in can still win the unique
// email or username index between the check and the insert; that surfaces as
// a duplicate-key error, so the resolve step is retried rather than failed.
func (s *UserService) EnsureUser(ctx context.Context, info auth.GoogleUserInfo) (*models.User, error) {
	for attempt := 0; attempt < maxSignInAttempts; attempt++ {
		existing, err := s.users.FindByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}

		username, err := s.allocateUsername(ctx, info.Email)
		if err != nil {
			return nil, err
		}

		user := &models.User{
			Email:    info.Email,
			Name:     info.Name,
			Username: username,
			Image:    info.Picture,
		}
		id, err := s.users.Insert(ctx, user)
		if err == nil {
			user.ID = id
			return user, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, err
		}
		// Lost the race: either the same email landed (next FindByEmail
		// returns it) or the username did (next allocation suffixes past it).
	}
	return nil, fmt.Errorf("could not create account for %s: unique index kept conflicting", info.Email)
}

// GetByID loads a user by ObjectID hex. Returns ErrUserNotFound when the id
// is malformed or no account matches.
func (s *UserService) GetByID(ctx context.Context, hexID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) allocateUsername(ctx context.Context, email string) (string, error) {
	base := strings.SplitN(email, "@", 2)[0]
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := s.users.UsernameExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}
