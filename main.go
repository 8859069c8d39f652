package main

import (
	"context"
	"log"
	"net/http"

	"inkwell/api/router"
	"inkwell/config"
	"inkwell/db"
	_ "inkwell/docs" // swag generated package
	"inkwell/internal/logger"
	"inkwell/repositories"
	"inkwell/services"
)

// @title           Inkwell API
// @version         1.0
// @description     API for a community blogging platform: posts, likes and profiles
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	posts := repositories.NewPostRepository(db.Database())
	likes := repositories.NewLikeRepository(db.Database())
	users := repositories.NewUserRepository(db.Database())

	userSvc := services.NewUserService(users)
	postSvc := services.NewPostService(posts, likes)
	likeSvc := services.NewLikeService(posts, likes)

	authSvc, err := services.NewAuthServiceFromEnv(userSvc)
	if err != nil {
		log.Fatal(err)
	}

	r := router.New(authSvc, userSvc, postSvc, likeSvc)

	addr := config.GetConfig().Server.Addr
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
