// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/validate"
)

// msgWeakPassword is returned whenever a password fails the strength check.
const msgWeakPassword = "password must be at least 6 characters and include an uppercase letter, a lowercase letter, a digit and a special character"

// UserRepository abstracts the persistence layer for user records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. The store assigns the id.
	Create(ctx context.Context, user *entity.User) error

	// FindAll returns every user record, all fields included.
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID returns the user with the given id, or a not-found error.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByEmail returns the user with the exact email, or a not-found error.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByName returns the user with the exact name, or a not-found error.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindByCredentials returns the user matching both email and password
	// exactly, or a not-found error.
	FindByCredentials(ctx context.Context, email, password string) (*entity.User, error)

	// Save persists modified fields of an existing user.
	Save(ctx context.Context, user *entity.User) error

	// Delete removes the user record.
	Delete(ctx context.Context, id string) error
}

// PostRepository abstracts the post-side operations the users feature needs
// for its cascade delete and posts listing.
type PostRepository interface {
	// FindByIDs resolves post ids to records, preserving the order of ids
	// and silently skipping ids that no longer resolve.
	FindByIDs(ctx context.Context, ids []string) ([]entity.Post, error)

	// DeleteByUserID removes every post owned by the given user.
	DeleteByUserID(ctx context.Context, userID string) error
}

// UpdateInput carries the partial-update fields for a user. An empty string
// means "leave unchanged"; there is no way to blank a field.
type UpdateInput struct {
	Name     string
	Email    string
	Password string
}

// UsersUsecase implements the user store operations, including the cascade
// that deletes a user's posts together with the user.
type UsersUsecase struct {
	users UserRepository
	posts PostRepository
}

// NewUsersUsecase creates a UsersUsecase with the given repositories.
func NewUsersUsecase(users UserRepository, posts PostRepository) *UsersUsecase {
	return &UsersUsecase{users: users, posts: posts}
}

// classify passes already-classified errors through and wraps anything else
// as a persistence failure with a request-level message.
func classify(err error, msg string) error {
	if _, ok := apperr.KindOf(err); ok {
		return err
	}
	return apperr.Persistence(msg, err)
}

// Create validates and persists a new user with an empty posts list.
// The duplicate-email guard runs before the write; the name length bound is
// checked explicitly rather than left to the schema.
func (u *UsersUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperr.Validation("please provide all required fields")
	}
	if !validate.IsValidEmail(email) {
		return nil, apperr.Validation("invalid email address")
	}
	if !validate.IsValidPassword(password) {
		return nil, apperr.Validation(msgWeakPassword)
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict("email already exists")
	} else if !apperr.IsNotFound(err) {
		return nil, apperr.Persistence("failed to create user", err)
	}

	if n := len(name); n < 5 || n > 100 {
		return nil, apperr.Validation("name must be between 5 and 100 characters")
	}

	user := &entity.User{Name: name, Email: email, Password: password}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, apperr.Persistence("failed to create user", err)
	}
	return user, nil
}

// GetAll returns every user record, passwords included.
func (u *UsersUsecase) GetAll(ctx context.Context) ([]entity.User, error) {
	users, err := u.users.FindAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to retrieve users", err)
	}
	return users, nil
}

// GetByID returns the user with the given id.
func (u *UsersUsecase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to retrieve user")
	}
	return user, nil
}

// GetByEmail returns the user with the exact email.
func (u *UsersUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, classify(err, "failed to retrieve user")
	}
	return user, nil
}

// GetByName returns the user with the exact name.
func (u *UsersUsecase) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := u.users.FindByName(ctx, name)
	if err != nil {
		return nil, classify(err, "failed to retrieve user")
	}
	return user, nil
}

// Update applies a partial update. Email and password are re-validated only
// when present; no length bounds are re-checked on update.
func (u *UsersUsecase) Update(ctx context.Context, id string, in UpdateInput) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return classify(err, "failed to update user")
	}
	if in.Email != "" && !validate.IsValidEmail(in.Email) {
		return apperr.Validation("invalid email address")
	}
	if in.Password != "" && !validate.IsValidPassword(in.Password) {
		return apperr.Validation(msgWeakPassword)
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		user.Password = in.Password
	}
	if err := u.users.Save(ctx, user); err != nil {
		return apperr.Persistence("failed to update user", err)
	}
	return nil
}

// Delete removes the user and then hard-deletes every post owned by it.
// The two writes are sequential, not transactional: a failure in between
// leaves the posts orphaned until the cascade is retried.
func (u *UsersUsecase) Delete(ctx context.Context, id string) error {
	if _, err := u.users.FindByID(ctx, id); err != nil {
		return classify(err, "failed to delete user")
	}
	if err := u.users.Delete(ctx, id); err != nil {
		return apperr.Persistence("failed to delete user", err)
	}
	if err := u.posts.DeleteByUserID(ctx, id); err != nil {
		return apperr.Persistence("failed to delete user", err)
	}
	return nil
}

// GetPosts resolves the user's denormalized posts list to full records.
// Dangling references are skipped rather than reported.
func (u *UsersUsecase) GetPosts(ctx context.Context, id string) (*entity.User, []entity.Post, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil, classify(err, "failed to retrieve posts")
	}
	posts, err := u.posts.FindByIDs(ctx, user.Posts)
	if err != nil {
		return nil, nil, apperr.Persistence("failed to retrieve posts", err)
	}
	return user, posts, nil
}

// Login validates the credential formats and matches both email and
// password exactly against the store. Passwords are compared in plaintext;
// this mirrors the stored format and is a documented weakness.
func (u *UsersUsecase) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return apperr.Validation("please provide all required fields")
	}
	if !validate.IsValidEmail(email) {
		return apperr.Validation("invalid email address")
	}
	if !validate.IsValidPassword(password) {
		return apperr.Validation(msgWeakPassword)
	}

	if _, err := u.users.FindByCredentials(ctx, email, password); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.NotFound("incorrect email or password")
		}
		return apperr.Persistence("login failed", err)
	}
	return nil
}
