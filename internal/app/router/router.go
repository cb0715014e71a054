// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	posthandler "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/transport/handler"
	userhandler "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/transport/handler"
	platformhandler "github.com/Thanh-Phuog/CRUD-BackEnd/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all user and post routes mounted at
// the root; the route names are part of the public API contract.
func NewRouter(users *userhandler.UserHandler, posts *posthandler.PostHandler) *gin.Engine {
	r := gin.Default()

	// Browser-facing JSON API
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// User store
	r.POST("/create-user", users.Create)
	r.GET("/get-all-user", users.GetAll)
	r.GET("/get-user-detail/:id", users.GetByID)
	r.GET("/get-user-byEmail/:email", users.GetByEmail)
	r.GET("/get-user-byname/:name", users.GetByName)
	r.PUT("/update-user/:id", users.Update)
	r.DELETE("/delete/:id", users.Delete)
	r.GET("/get-posts/:id", users.GetPosts)
	// Credentials arrive in a JSON body despite the GET method.
	r.GET("/login", users.Login)

	// Post store
	r.GET("/user/:idUser", posts.GetByUser)
	r.POST("/create-post", posts.Create)
	r.PUT("/update-post/:id", posts.Update)
	r.GET("/get-by-id/:id", posts.GetByID)
	r.DELETE("/delete-post/:id", posts.Delete)
	r.GET("/get-all", posts.GetAll)

	return r
}
