// Package adapters provides the repository implementations for the posts feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/usecase"
	usersusecase "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
)

// postGorm is the GORM implementation of the post repository contracts.
// The same instance serves both the posts usecase and the users usecase's
// cascade delete and posts listing.
type postGorm struct {
	db *gorm.DB
}

// Compile-time checks that postGorm satisfies both consumer interfaces.
var (
	_ usecase.PostRepository      = (*postGorm)(nil)
	_ usersusecase.PostRepository = (*postGorm)(nil)
)

// NewPostGorm creates a postGorm backed by the given connection.
// Constructor for dependency injection.
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create inserts the post. The id and date are assigned by the entity's
// BeforeCreate hook.
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID retrieves a post by id.
func (r *postGorm) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post record.
func (r *postGorm) FindAll(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByUserID returns every post owned by the given user. A user with no
// posts yields an empty slice, not an error.
func (r *postGorm) FindByUserID(ctx context.Context, userID string) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindByIDs resolves post ids to records, preserving the order of ids and
// skipping ids that no longer resolve.
func (r *postGorm) FindByIDs(ctx context.Context, ids []string) ([]entity.Post, error) {
	if len(ids) == 0 {
		return []entity.Post{}, nil
	}
	var posts []entity.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]entity.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}
	ordered := make([]entity.Post, 0, len(posts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// FirstByContentSince returns a post with exactly this content dated at or
// after since. There is deliberately no upper date bound.
func (r *postGorm) FirstByContentSince(ctx context.Context, content string, since time.Time) (*entity.Post, error) {
	var p entity.Post
	if err := r.db.WithContext(ctx).
		Where("content = ? AND date >= ?", content, since).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found")
		}
		return nil, err
	}
	return &p, nil
}

// Save writes back all fields of an existing post.
func (r *postGorm) Save(ctx context.Context, p *entity.Post) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// Delete removes the post record.
func (r *postGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.Post{}, "id = ?", id).Error
}

// DeleteByUserID hard-deletes every post owned by the given user. Used by
// the user-delete cascade.
func (r *postGorm) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Post{}).Error
}
