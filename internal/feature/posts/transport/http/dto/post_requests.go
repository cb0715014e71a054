// Package dto defines data transfer objects for the posts feature's HTTP
// transport layer.
package dto

import "time"

// CreatePostReq is the request body for POST /create-post. UserID carries
// the owning user's name, not its id; the store resolves it by name lookup.
type CreatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"userId"`
}

// UpdatePostReq is the request body for PUT /update-post/:id. Empty fields
// are left unchanged.
type UpdatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UserPostItem is one element of the GET /user/:idUser listing: the post
// projected with the owner's name flattened in.
type UserPostItem struct {
	ID       string    `json:"id"`
	UserName string    `json:"userName"`
	Date     time.Time `json:"date"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
}

// OwnerRef is the owner as embedded in the global listing.
type OwnerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PostListItem is one element of the GET /get-all listing: the raw post
// with the owner reference resolved in place of the bare user id. Owner is
// null when the owning user record no longer exists.
type PostListItem struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Owner   *OwnerRef `json:"userId"`
	Date    time.Time `json:"date"`
}
