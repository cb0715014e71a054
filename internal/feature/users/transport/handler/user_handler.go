// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/transport/http/dto"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/response"
)

// UsersUsecase defines the user store operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type UsersUsecase interface {
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	Update(ctx context.Context, id string, in usecase.UpdateInput) error
	Delete(ctx context.Context, id string) error
	GetPosts(ctx context.Context, id string) (*entity.User, []entity.Post, error)
	Login(ctx context.Context, email, password string) error
}

// UserHandler processes HTTP requests for user operations.
type UserHandler struct {
	users UsersUsecase
}

// NewUserHandler creates a UserHandler with the given usecase.
func NewUserHandler(users UsersUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// bindJSON binds the request body into dst. A missing body is treated as an
// empty request so the usecase reports the missing fields itself.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("request binding failed", "path", c.FullPath(), "error", err)
		response.JSON(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// Create handles POST /create-user. Responds 201 on success, 400 on
// validation failure or duplicate email.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if !bindJSON(c, &req) {
		return
	}
	if _, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		slog.Warn("user creation failed", "email", req.Email, "error", err)
		response.Error(c, err)
		return
	}
	slog.Info("user created", "email", req.Email)
	response.JSON(c, http.StatusCreated, "user created successfully")
}

// GetAll handles GET /get-all-user. Responds with the raw records, all
// fields included.
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByID handles GET /get-user-detail/:id. Responds with the raw record.
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByEmail handles GET /get-user-byEmail/:email. Responds with the raw
// record.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByName handles GET /get-user-byname/:name. Responds with the raw
// record.
func (h *UserHandler) GetByName(c *gin.Context) {
	user, err := h.users.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /update-user/:id. Unspecified fields are retained; the
// updated record is not echoed back.
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	in := usecase.UpdateInput{Name: req.Name, Email: req.Email, Password: req.Password}
	if err := h.users.Update(c.Request.Context(), id, in); err != nil {
		slog.Warn("user update failed", "id", id, "error", err)
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, "user updated successfully")
}

// Delete handles DELETE /delete/:id. Deleting a user cascade-deletes every
// post it owns.
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("user deletion failed", "id", id, "error", err)
		response.Error(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	response.JSON(c, http.StatusOK, "user deleted successfully")
}

// GetPosts handles GET /get-posts/:id. Responds with the user's posts
// projected to {name, date, title, content}.
func (h *UserHandler) GetPosts(c *gin.Context) {
	user, posts, err := h.users.GetPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.UserPostItem, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.UserPostItem{
			Name:    user.Name,
			Date:    p.Date,
			Title:   p.Title,
			Content: p.Content,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Login handles GET /login. The credentials arrive in a JSON body despite
// the method; existing clients depend on it. Responds 404 on a credential
// mismatch.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if !bindJSON(c, &req) {
		return
	}
	if err := h.users.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		slog.Warn("login failed", "email", req.Email, "error", err)
		response.Error(c, err)
		return
	}
	slog.Info("login successful", "email", req.Email)
	response.JSON(c, http.StatusOK, "login successful")
}
