package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inkwell/dto"
	"inkwell/services"
)

// CreatePostHandler godoc
// @Summary      Create a post
// @Description  Create a new post authored by the signed-in user
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Param        body  body  dto.CreatePostRequest  true  "Post fields"
// @Produce      json
// @Success      200  {object}  dto.CreatePostResponse
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /posts [post]
func CreatePostHandler(authSvc *services.AuthService, userSvc *services.UserService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := requireIdentity(c, authSvc, userSvc)
		if !ok {
			return
		}

		var req dto.CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{
				Error:   "invalid_request_body",
				Details: bindingErrorDetails(err),
			})
			return
		}

		id, err := postSvc.Create(c.Request.Context(), services.CreatePostInput{
			Title:   req.Title,
			Content: req.Content,
			Tags:    req.Tags,
		}, ident)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.CreatePostResponse{ID: id})
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  List all posts newest-first, optionally filtered by a free-text search over title, content, tags and author username
// @Tags         posts
// @Param        search  query  string  false  "Search query; a leading @ matches usernames"
// @Produce      json
// @Success      200  {array}  dto.PostDTO
// @Router       /posts [get]
func ListPostsHandler(authSvc *services.AuthService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID, ok := optionalUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		items, err := postSvc.List(c.Request.Context(), c.Query("search"), viewerID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetPostHandler godoc
// @Summary      Get post by id
// @Description  Get a single post by ObjectID
// @Tags         posts
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.PostDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [get]
func GetPostHandler(authSvc *services.AuthService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID, ok := optionalUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		post, err := postSvc.GetByID(c.Request.Context(), c.Param("id"), viewerID)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// UpdatePostHandler godoc
// @Summary      Update a post
// @Description  Replace title, content and tags of a post owned by the signed-in user
// @Tags         posts
// @Security     BearerAuth
// @Accept       json
// @Param        id    path  string                 true  "ObjectID"
// @Param        body  body  dto.UpdatePostRequest  true  "New post fields"
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [put]
func UpdatePostHandler(authSvc *services.AuthService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		var req dto.UpdatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{
				Error:   "invalid_request_body",
				Details: bindingErrorDetails(err),
			})
			return
		}

		err := postSvc.Update(c.Request.Context(), c.Param("id"), services.UpdatePostInput{
			Title:   req.Title,
			Content: req.Content,
			Tags:    req.Tags,
		}, userID)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}

// DeletePostHandler godoc
// @Summary      Delete a post
// @Description  Delete a post owned by the signed-in user together with its likes
// @Tags         posts
// @Security     BearerAuth
// @Param        id  path  string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.SuccessResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      403  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /posts/{id} [delete]
func DeletePostHandler(authSvc *services.AuthService, postSvc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requireUserIDFromHeader(c, authSvc)
		if !ok {
			return
		}

		if err := postSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.SuccessResponseDTO{Success: true})
	}
}
