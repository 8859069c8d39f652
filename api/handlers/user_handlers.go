package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/auth"
	"inkwell/dto"
	"inkwell/services"
)

// ListUserPostsHandler godoc
// @Summary      List a user's posts
// @Description  List the posts whose author username matches, newest-first
// @Tags         users
// @Param        username  path  string  true  "Author username"
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /users/{username}/posts [get]
func ListUserPostsHandler(authSvc *services.AuthService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID, ok := optionalUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		items, err := postSvc.ListByAuthor(c.Request.Context(), c.Param("username"), viewerID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetProfileHandler godoc
// @Summary      Get own profile
// @Description  Return the signed-in user's account
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.UserProfileDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /users/profile [get]
func GetProfileHandler(authSvc *services.AuthService, userSvc *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		user, err := userSvc.GetByID(c.Request.Context(), userID)
		if errors.Is(err, services.ErrUserNotFound) {
			auth.AbortWithUnauthorized(c, errUnknownUser)
			return
		}
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.NewUserProfileDTO(*user))
	}
}
