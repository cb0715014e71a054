// Package handler provides the HTTP handlers for the posts feature.
package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/transport/http/dto"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/response"
)

// PostsUsecase defines the post store operations the handlers depend on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type PostsUsecase interface {
	Create(ctx context.Context, title, content, userName string) (*entity.Post, error)
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetAll(ctx context.Context) ([]usecase.PostWithOwner, error)
	GetByUser(ctx context.Context, userID string) ([]usecase.PostWithOwner, error)
	Update(ctx context.Context, id string, in usecase.UpdateInput) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
}

// PostHandler processes HTTP requests for post operations.
type PostHandler struct {
	posts PostsUsecase
}

// NewPostHandler creates a PostHandler with the given usecase.
func NewPostHandler(posts PostsUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		slog.Warn("request binding failed", "path", c.FullPath(), "error", err)
		response.JSON(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// Create handles POST /create-post. The userId field of the body is the
// owner's name; the created record is echoed back in the envelope.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostReq
	if !bindJSON(c, &req) {
		return
	}
	post, err := h.posts.Create(c.Request.Context(), req.Title, req.Content, req.UserID)
	if err != nil {
		slog.Warn("post creation failed", "user", req.UserID, "error", err)
		response.Error(c, err)
		return
	}
	slog.Info("post created", "id", post.ID, "user_id", post.UserID)
	response.JSONData(c, http.StatusCreated, "post created successfully", post)
}

// GetByID handles GET /get-by-id/:id. Responds with the raw record.
func (h *PostHandler) GetByID(c *gin.Context) {
	post, err := h.posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetAll handles GET /get-all. Responds with every post, the owner resolved
// in place of the bare user id (null when the owner record is gone).
func (h *PostHandler) GetAll(c *gin.Context) {
	posts, err := h.posts.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.PostListItem, 0, len(posts))
	for _, w := range posts {
		item := dto.PostListItem{
			ID:      w.Post.ID,
			Title:   w.Post.Title,
			Content: w.Post.Content,
			Date:    w.Post.Date,
		}
		if w.Owner != nil {
			item.Owner = &dto.OwnerRef{ID: w.Owner.ID, Name: w.Owner.Name}
		}
		out = append(out, item)
	}
	c.JSON(http.StatusOK, out)
}

// GetByUser handles GET /user/:idUser. Responds with the user's posts
// projected to {id, userName, date, title, content}. A user with zero posts
// yields an empty list without an existence check.
func (h *PostHandler) GetByUser(c *gin.Context) {
	posts, err := h.posts.GetByUser(c.Request.Context(), c.Param("idUser"))
	if err != nil {
		response.Error(c, err)
		return
	}
	out := make([]dto.UserPostItem, 0, len(posts))
	for _, w := range posts {
		out = append(out, dto.UserPostItem{
			ID:       w.Post.ID,
			UserName: w.Owner.Name,
			Date:     w.Post.Date,
			Title:    w.Post.Title,
			Content:  w.Post.Content,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /update-post/:id. Unspecified fields are retained.
// Responds 201 with the updated record; clients expect 201 here, not 200.
func (h *PostHandler) Update(c *gin.Context) {
	var req dto.UpdatePostReq
	if !bindJSON(c, &req) {
		return
	}
	id := c.Param("id")
	post, err := h.posts.Update(c.Request.Context(), id, usecase.UpdateInput{Title: req.Title, Content: req.Content})
	if err != nil {
		slog.Warn("post update failed", "id", id, "error", err)
		response.Error(c, err)
		return
	}
	response.JSONData(c, http.StatusCreated, "post updated successfully", post)
}

// Delete handles DELETE /delete-post/:id. Deleting a post removes its id
// from the owner's posts list.
func (h *PostHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("post deletion failed", "id", id, "error", err)
		response.Error(c, err)
		return
	}
	slog.Info("post deleted", "id", id)
	response.JSON(c, http.StatusOK, "post deleted successfully")
}
