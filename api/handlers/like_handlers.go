package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/dto"
	"inkwell/services"
)

// ToggleLikeHandler godoc
// @Summary      Toggle a like
// @Description  Like the post if the user does not like it yet, unlike it otherwise, and return the resulting state
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.ToggleLikeResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id}/like [post]
func ToggleLikeHandler(authSvc *services.AuthService, likeSvc *services.LikeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		state, err := likeSvc.Toggle(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToggleLikeResponse{
			LikesCount: state.LikesCount,
			IsLiked:    state.IsLiked,
		})
	}
}
