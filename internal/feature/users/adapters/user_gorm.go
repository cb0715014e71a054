// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	postsusecase "github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/posts/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
)

// userGorm is the GORM implementation of the user repository contracts.
// The same instance serves both the users usecase and the posts usecase's
// back-reference maintenance.
type userGorm struct {
	db *gorm.DB
}

// Compile-time checks that userGorm satisfies both consumer interfaces.
var (
	_ usecase.UserRepository      = (*userGorm)(nil)
	_ postsusecase.UserRepository = (*userGorm)(nil)
)

// NewUserGorm creates a userGorm backed by the given connection.
// Constructor for dependency injection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. The id and empty posts list are assigned by the
// entity's BeforeCreate hook.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindAll returns every user record, all fields included.
func (r *userGorm) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userGorm) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by exact email match.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByName retrieves a user by exact name match.
func (r *userGorm) FindByName(ctx context.Context, name string) (*entity.User, error) {
	return r.first(ctx, "name = ?", name)
}

// FindByCredentials retrieves the user matching both email and password
// exactly. The comparison is plaintext, mirroring the stored format.
func (r *userGorm) FindByCredentials(ctx context.Context, email, password string) (*entity.User, error) {
	return r.first(ctx, "email = ? AND password = ?", email, password)
}

// Save writes back all fields of an existing user.
func (r *userGorm) Save(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Delete removes the user record. Deleting an absent id is not an error;
// existence is checked by the caller.
func (r *userGorm) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entity.User{}, "id = ?", id).Error
}

// AppendPost adds postID to the user's denormalized posts list.
func (r *userGorm) AppendPost(ctx context.Context, userID, postID string) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	u.Posts = append(u.Posts, postID)
	return r.db.WithContext(ctx).Save(u).Error
}

// RemovePost removes postID from the user's denormalized posts list.
// A missing user is a no-op so a post whose owner was already deleted can
// still be removed.
func (r *userGorm) RemovePost(ctx context.Context, userID, postID string) error {
	u, err := r.FindByID(ctx, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil
		}
		return err
	}
	kept := u.Posts[:0]
	for _, id := range u.Posts {
		if id != postID {
			kept = append(kept, id)
		}
	}
	u.Posts = kept
	return r.db.WithContext(ctx).Save(u).Error
}
