// Package entity defines the domain entities shared by the users and posts features.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered author in the system.
// The stored password is compared in plaintext at login; no hashing is applied.
type User struct {
	// ID is the store-generated unique identifier for the user.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Name is the display name, 5 to 100 characters.
	Name string `gorm:"size:100;not null" json:"name"`

	// Email is the user's email address. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the plaintext credential. The schema declares a 6-20 bound
	// but only the strength pattern is checked at write time.
	Password string `gorm:"size:255;not null" json:"password"`

	// Posts holds the ids of posts authored by this user, in creation order.
	// It is a denormalized back-reference; Post.UserID is authoritative.
	Posts []string `gorm:"serializer:json;type:text" json:"posts"`
}

// BeforeCreate assigns a generated id and an empty posts list so a fresh
// user never serializes the back-reference as null.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Posts == nil {
		u.Posts = []string{}
	}
	return nil
}
