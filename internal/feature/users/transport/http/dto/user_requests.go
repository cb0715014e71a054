// Package dto defines data transfer objects for the users feature's HTTP
// transport layer. Field presence is validated by the usecase, not by
// binding tags, so partial updates work and clients keep receiving the
// documented error messages.
package dto

import "time"

// CreateUserReq is the request body for POST /create-user.
type CreateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserReq is the request body for PUT /update-user/:id. Empty fields
// are left unchanged.
type UpdateUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReq is the request body for GET /login.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPostItem is one element of the GET /get-posts/:id listing: the post
// projected together with the owning user's name.
type UserPostItem struct {
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}
