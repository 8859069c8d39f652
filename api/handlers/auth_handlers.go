package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/internal/logger"
	"inkwell/services"
)

const oauthStateCookieName = "oauth_state"

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GoogleLoginHandler godoc
// @Summary      Start Google sign-in
// @Description  Generate a state value, store it in a cookie and redirect to the Google OAuth consent page
// @Tags         auth
// @Produce      json
// @Success      302  {string}  string  "Redirect to Google OAuth or to the login page on failure"
// @Router       /auth/google/login [get]
func GoogleLoginHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := generateState()
		if err != nil {
			redirectURL := authSvc.GetRedirectURL()
			logger.ErrorWithFields("google login failed to generate state", logger.Fields{
				"error":       err.Error(),
				"redirect_to": redirectURL,
				"request_id":  c.GetString("request_id"),
			})
			c.Redirect(http.StatusFound, redirectURL)
			return
		}

		// State cookie guards the callback against CSRF.
		c.SetCookie(oauthStateCookieName, state, 300, "/", "", false, true)

		loginURL := authSvc.BuildGoogleLoginURL(state)
		logger.InfoWithFields("redirect to google oauth", logger.Fields{
			"redirect_to": loginURL,
			"request_id":  c.GetString("request_id"),
		})
		c.Redirect(http.StatusFound, loginURL)
	}
}

// GoogleCallbackHandler godoc
// @Summary      Handle the Google OAuth callback
// @Description  Verify the state value, exchange the code, create the account on first sign-in and redirect with a session token
// @Tags         auth
// @Produce      json
// @Success      302  {string}  string  "Redirect to the login success page, with the token on success"
// @Router       /auth/google/callback [get]
func GoogleCallbackHandler(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		code := c.Query("code")
		redirectURL := authSvc.GetRedirectURL()

		if state == "" || code == "" {
			logger.ErrorWithFields("google callback missing state or code", logger.Fields{
				"request_id": c.GetString("request_id"),
			})
			c.Redirect(http.StatusFound, redirectURL)
			return
		}

		cookieState, err := c.Cookie(oauthStateCookieName)
		if err != nil || cookieState != state {
			logger.ErrorWithFields("google callback state mismatch", logger.Fields{
				"request_id": c.GetString("request_id"),
			})
			c.Redirect(http.StatusFound, redirectURL)
			return
		}
		c.SetCookie(oauthStateCookieName, "", -1, "/", "", false, true)

		token, err := authSvc.HandleGoogleCallback(c.Request.Context(), code)
		if err != nil {
			logger.ErrorWithFields("google callback failed", logger.Fields{
				"error":      err.Error(),
				"request_id": c.GetString("request_id"),
			})
			c.Redirect(http.StatusFound, redirectURL)
			return
		}

		c.Redirect(http.StatusFound, authSvc.GetRedirectURLWithToken(token))
	}
}
