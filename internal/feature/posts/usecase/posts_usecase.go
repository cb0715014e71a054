// Package usecase implements the business logic for the posts feature.
package usecase

import (
	"context"
	"time"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
)

// PostRepository abstracts the persistence layer for post records.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type PostRepository interface {
	// Create persists a new post. The store assigns the id and date.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID returns the post with the given id, or a not-found error.
	FindByID(ctx context.Context, id string) (*entity.Post, error)

	// FindAll returns every post record.
	FindAll(ctx context.Context) ([]entity.Post, error)

	// FindByUserID returns every post owned by the given user.
	FindByUserID(ctx context.Context, userID string) ([]entity.Post, error)

	// FirstByContentSince returns a post with exactly this content dated at
	// or after since, or a not-found error when none exists.
	FirstByContentSince(ctx context.Context, content string, since time.Time) (*entity.Post, error)

	// Save persists modified fields of an existing post.
	Save(ctx context.Context, post *entity.Post) error

	// Delete removes the post record.
	Delete(ctx context.Context, id string) error
}

// UserRepository abstracts the user-side operations the posts feature needs:
// owner resolution and maintenance of the denormalized back-reference list.
type UserRepository interface {
	// FindByID returns the user with the given id, or a not-found error.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByName returns the user with the exact name, or a not-found error.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// AppendPost adds postID to the user's posts list.
	AppendPost(ctx context.Context, userID, postID string) error

	// RemovePost removes postID from the user's posts list. Removing from a
	// user that no longer exists is a no-op.
	RemovePost(ctx context.Context, userID, postID string) error
}

// PostWithOwner pairs a post with its resolved owner. Owner is nil when the
// owning user record no longer exists.
type PostWithOwner struct {
	Post  entity.Post
	Owner *entity.User
}

// UpdateInput carries the partial-update fields for a post. An empty string
// means "leave unchanged"; no length bounds are re-checked on update.
type UpdateInput struct {
	Title   string
	Content string
}

// PostsUsecase implements the post store operations together with the
// back-reference maintenance on the owning user.
type PostsUsecase struct {
	posts PostRepository
	users UserRepository
}

// NewPostsUsecase creates a PostsUsecase with the given repositories.
func NewPostsUsecase(posts PostRepository, users UserRepository) *PostsUsecase {
	return &PostsUsecase{posts: posts, users: users}
}

// startOfToday returns midnight of the current day in the post time zone.
func startOfToday() time.Time {
	now := time.Now().In(entity.Zone)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, entity.Zone)
}

func classify(err error, msg string) error {
	if _, ok := apperr.KindOf(err); ok {
		return err
	}
	return apperr.Persistence(msg, err)
}

// Create validates the input, resolves the owner by name, rejects a post
// whose content duplicates one dated on or after the start of today, then
// persists the post and appends its id to the owner's posts list. The insert
// and the back-reference update are two independent writes, not a
// transaction.
//
// The duplicate guard has a lower date bound only, so content matching a
// future-dated post is also rejected.
func (u *PostsUsecase) Create(ctx context.Context, title, content, userName string) (*entity.Post, error) {
	if title == "" || content == "" || userName == "" {
		return nil, apperr.Validation("please provide all required fields")
	}
	if n := len(title); n < 5 || n > 100 {
		return nil, apperr.Validation("title must be between 5 and 100 characters")
	}
	if len(content) < 10 {
		return nil, apperr.Validation("content must be at least 10 characters")
	}

	owner, err := u.users.FindByName(ctx, userName)
	if err != nil {
		return nil, classify(err, "failed to create post")
	}

	if _, err := u.posts.FirstByContentSince(ctx, content, startOfToday()); err == nil {
		return nil, apperr.Conflict("a post with the same content already exists today")
	} else if !apperr.IsNotFound(err) {
		return nil, apperr.Persistence("failed to create post", err)
	}

	post := &entity.Post{Title: title, Content: content, UserID: owner.ID}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, apperr.Persistence("failed to create post", err)
	}
	if err := u.users.AppendPost(ctx, owner.ID, post.ID); err != nil {
		return nil, apperr.Persistence("failed to create post", err)
	}
	return post, nil
}

// GetByID returns the post with the given id.
func (u *PostsUsecase) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to retrieve post")
	}
	return post, nil
}

// GetAll returns every post with its owner resolved. Posts whose owner is
// gone keep a nil owner; the global listing tolerates orphans.
func (u *PostsUsecase) GetAll(ctx context.Context) ([]PostWithOwner, error) {
	posts, err := u.posts.FindAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("failed to retrieve posts", err)
	}
	return u.resolveOwners(ctx, posts, false)
}

// GetByUser returns every post owned by the given user id with the owner
// resolved. The user's existence is not pre-checked: zero posts yields an
// empty list, while posts whose owner row is missing yield a not-found
// error (the dereferencing join failed).
func (u *PostsUsecase) GetByUser(ctx context.Context, userID string) ([]PostWithOwner, error) {
	posts, err := u.posts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to retrieve posts", err)
	}
	return u.resolveOwners(ctx, posts, true)
}

// resolveOwners attaches owner records to posts, caching lookups per owner.
// When ownerRequired is set, a missing owner row is a not-found error;
// otherwise the owner is left nil.
func (u *PostsUsecase) resolveOwners(ctx context.Context, posts []entity.Post, ownerRequired bool) ([]PostWithOwner, error) {
	owners := make(map[string]*entity.User)
	out := make([]PostWithOwner, 0, len(posts))
	for _, p := range posts {
		owner, seen := owners[p.UserID]
		if !seen {
			var err error
			owner, err = u.users.FindByID(ctx, p.UserID)
			if err != nil {
				if !apperr.IsNotFound(err) {
					return nil, apperr.Persistence("failed to retrieve posts", err)
				}
				if ownerRequired {
					return nil, apperr.NotFound("user not found")
				}
				owner = nil
			}
			owners[p.UserID] = owner
		}
		out = append(out, PostWithOwner{Post: p, Owner: owner})
	}
	return out, nil
}

// Update applies a partial update and returns the updated post.
func (u *PostsUsecase) Update(ctx context.Context, id string, in UpdateInput) (*entity.Post, error) {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err, "failed to update post")
	}
	if in.Title != "" {
		post.Title = in.Title
	}
	if in.Content != "" {
		post.Content = in.Content
	}
	if err := u.posts.Save(ctx, post); err != nil {
		return nil, apperr.Persistence("failed to update post", err)
	}
	return post, nil
}

// Delete removes the post and then removes its id from the owner's posts
// list. Like Create, the two writes are sequential and not transactional.
func (u *PostsUsecase) Delete(ctx context.Context, id string) error {
	post, err := u.posts.FindByID(ctx, id)
	if err != nil {
		return classify(err, "failed to delete post")
	}
	if err := u.posts.Delete(ctx, id); err != nil {
		return apperr.Persistence("failed to delete post", err)
	}
	if err := u.users.RemovePost(ctx, post.UserID, post.ID); err != nil {
		return apperr.Persistence("failed to delete post", err)
	}
	return nil
}
