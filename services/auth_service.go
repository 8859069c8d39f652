package services

import (
	"context"
	"fmt"
	"os"

	"inkwell/auth"
)

// AuthService drives the Google sign-in flow and session token handling.
// Accounts are created lazily during the OAuth callback.
type AuthService struct {
	googleOAuth *auth.GoogleOAuthClient
	jwtManager  *auth.JWTManager
	users       *UserService
	redirectURL string
}

func NewAuthService(googleOAuth *auth.GoogleOAuthClient, jwtManager *auth.JWTManager, users *UserService, redirectURL string) *AuthService {
	return &AuthService{
		googleOAuth: googleOAuth,
		jwtManager:  jwtManager,
		users:       users,
		redirectURL: redirectURL,
	}
}

func NewAuthServiceFromEnv(users *UserService) (*AuthService, error) {
	googleClient, err := auth.NewGoogleOAuthClientFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to init GoogleOAuthClient: %w", err)
	}

	jwtManager, err := auth.NewJWTManagerFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to init JWTManager: %w", err)
	}

	redirectURL := os.Getenv("AUTH_LOGIN_SUCCESS_REDIRECT_URL")
	if redirectURL == "" {
		return nil, fmt.Errorf("AUTH_LOGIN_SUCCESS_REDIRECT_URL is blank")
	}

	return NewAuthService(googleClient, jwtManager, users, redirectURL), nil
}

func (s *AuthService) BuildGoogleLoginURL(state string) string {
	return s.googleOAuth.AuthCodeURL(state)
}

// HandleGoogleCallback exchanges the auth code, ensures an account exists for
// the Google identity and returns a signed session token.
func (s *AuthService) HandleGoogleCallback(ctx context.Context, code string) (string, error) {
	token, err := s.googleOAuth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("google oauth exchange: %w", err)
	}

	info, err := s.googleOAuth.FetchUserInfo(ctx, token)
	if err != nil {
		return "", fmt.Errorf("google userinfo: %w", err)
	}

	user, err := s.users.EnsureUser(ctx, info)
	if err != nil {
		return "", fmt.Errorf("ensure user: %w", err)
	}

	accessToken, err := s.jwtManager.Sign(user.ID.Hex())
	if err != nil {
		return "", fmt.Errorf("jwt sign: %w", err)
	}

	return accessToken, nil
}

// GetRedirectURL returns the final redirect target of the OAuth flow.
// On success the token is appended with GetRedirectURLWithToken; on failure
// the bare URL is used.
func (s *AuthService) GetRedirectURL() string {
	return s.redirectURL
}

func (s *AuthService) GetRedirectURLWithToken(token string) string {
	return fmt.Sprintf("%s?token=%s", s.redirectURL, token)
}

// ParseAccessToken verifies a session token and returns the user id.
func (s *AuthService) ParseAccessToken(token string) (string, error) {
	return s.jwtManager.Parse(token)
}
