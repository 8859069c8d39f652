package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/auth"
	"inkwell/dto"
	"inkwell/services"
)

var errUnknownUser = errors.New("unknown_user")

// requireUserIDFromHeader parses the mandatory Authorization header and
// returns the session's user id. On failure it writes the 401 response and
// returns false.
func requireUserIDFromHeader(c *gin.Context, authSvc *services.AuthService) (string, bool) {
	token, err := auth.ExtractBearerToken(c)
	if err != nil {
		auth.AbortWithUnauthorized(c, err)
		return "", false
	}

	userID, err := authSvc.ParseAccessToken(token)
	if err != nil {
		auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
		return "", false
	}

	return userID, true
}

// optionalUserIDFromHeader is used on public endpoints where a session only
// enriches the response. An absent header yields an anonymous request; a
// present but invalid token is still rejected with 401.
func optionalUserIDFromHeader(c *gin.Context, authSvc *services.AuthService) (userID string, ok bool) {
	token, err := auth.ExtractBearerToken(c)
	if errors.Is(err, auth.ErrMissingHeader) {
		return "", true
	}
	if err != nil {
		auth.AbortWithUnauthorized(c, err)
		return "", false
	}

	userID, err = authSvc.ParseAccessToken(token)
	if err != nil {
		auth.AbortWithUnauthorized(c, auth.ErrInvalidToken)
		return "", false
	}

	return userID, true
}

// requireIdentity resolves the full acting identity (id plus the profile
// fields denormalized onto new posts). Used where the author snapshot is
// needed, not just the id.
func requireIdentity(c *gin.Context, authSvc *services.AuthService, userSvc *services.UserService) (services.Identity, bool) {
	userID, ok := requireUserIDFromHeader(c, authSvc)
	if !ok {
		return services.Identity{}, false
	}

	user, err := userSvc.GetByID(c.Request.Context(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		// Token is valid but the account is gone; treat as unauthenticated.
		auth.AbortWithUnauthorized(c, errUnknownUser)
		return services.Identity{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal_error"})
		return services.Identity{}, false
	}

	return services.NewIdentity(*user), true
}
