package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Zone is the fixed civil time zone post timestamps are recorded in
// (UTC+7, Ho Chi Minh City). A fixed offset avoids a tzdata dependency.
var Zone = time.FixedZone("UTC+7", 7*60*60)

// Post represents a blog post owned by exactly one user.
type Post struct {
	// ID is the store-generated unique identifier for the post.
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// Title is 5 to 100 characters.
	Title string `gorm:"size:100;not null" json:"title"`

	// Content is at least 10 characters.
	Content string `gorm:"type:text;not null" json:"content"`

	// UserID references the owning user. This field is the authoritative
	// side of the ownership relation.
	UserID string `gorm:"index;size:36;not null" json:"userId"`

	// Date is the creation timestamp, recorded in Zone.
	Date time.Time `json:"date"`
}

// BeforeCreate assigns a generated id and defaults Date to the current
// time in the fixed zone.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().In(Zone)
	}
	return nil
}
