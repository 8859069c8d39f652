package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleUserInfo is the subset of the userinfo payload the account layer
// consumes: Email drives account lookup, the rest is denormalized onto the
// profile.
type GoogleUserInfo struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// GoogleOAuthClient wraps the authorization-code flow against Google.
type GoogleOAuthClient struct {
	config *oauth2.Config
}

func NewGoogleOAuthClientFromEnv() (*GoogleOAuthClient, error) {
	clientID := os.Getenv("GOOGLE_OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_OAUTH_REDIRECT_URL")
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, fmt.Errorf("google oauth env not set: GOOGLE_OAUTH_CLIENT_ID/SECRET/REDIRECT_URL are required")
	}

	return &GoogleOAuthClient{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}, nil
}

// AuthCodeURL returns the consent-page URL carrying the CSRF state.
func (c *GoogleOAuthClient) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for an access token.
func (c *GoogleOAuthClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.config.Exchange(ctx, code)
}

// FetchUserInfo loads the signed-in identity from the userinfo endpoint.
func (c *GoogleOAuthClient) FetchUserInfo(ctx context.Context, token *oauth2.Token) (GoogleUserInfo, error) {
	resp, err := c.config.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return GoogleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleUserInfo{}, fmt.Errorf("google userinfo: unexpected status %d", resp.StatusCode)
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleUserInfo{}, fmt.Errorf("google userinfo: decode: %w", err)
	}
	return info, nil
}
