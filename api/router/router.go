package router

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"inkwell/api/handlers"
	"inkwell/api/middleware"
	"inkwell/config"
	"inkwell/db"
	_ "inkwell/docs"
	"inkwell/services"
)

func New(authSvc *services.AuthService, userSvc *services.UserService, postSvc *services.PostService, likeSvc *services.LikeService) *gin.Engine {
	handlers.RegisterValidatorTagNames()

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = config.GetConfig().CORS.AllowOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/auth/google/login", handlers.GoogleLoginHandler(authSvc))
		api.GET("/auth/google/callback", handlers.GoogleCallbackHandler(authSvc))

		api.POST("/posts", handlers.CreatePostHandler(authSvc, userSvc, postSvc))
		api.GET("/posts", handlers.ListPostsHandler(authSvc, postSvc))
		api.GET("/posts/:id", handlers.GetPostHandler(authSvc, postSvc))
		api.PUT("/posts/:id", handlers.UpdatePostHandler(authSvc, postSvc))
		api.DELETE("/posts/:id", handlers.DeletePostHandler(authSvc, postSvc))
		api.POST("/posts/:id/like", handlers.ToggleLikeHandler(authSvc, likeSvc))

		api.GET("/users/profile", handlers.GetProfileHandler(authSvc, userSvc))
		api.GET("/users/:username/posts", handlers.ListUserPostsHandler(authSvc, postSvc))
	}

	return r
}
