package main

import (
	"log"
	"os"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/app/router"
	postsadapters "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/adapters"
	postshandler "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/transport/handler"
	postsusecase "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/usecase"
	usersadapters "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/adapters"
	usershandler "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/transport/handler"
	usersusecase "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/platform/db"
)

func main() {
	// db
	cfg, err := db.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	gdb, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			log.Println("[ERROR] Failed to close database:", err)
		}
	}()

	// Repository
	userRepo := usersadapters.NewUserGorm(gdb)
	postRepo := postsadapters.NewPostGorm(gdb)

	// Usecase
	usersUC := usersusecase.NewUsersUsecase(userRepo, postRepo)
	postsUC := postsusecase.NewPostsUsecase(postRepo, userRepo)

	// Handler
	userH := usershandler.NewUserHandler(usersUC)
	postH := postshandler.NewPostHandler(postsUC)

	r := router.NewRouter(userH, postH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
