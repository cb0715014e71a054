package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/domain/entity"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/feature/users/usecase"
	"github.com/Thanh-Phuog/CRUD-BackEnd/internal/shared/apperr"
)

// mockUsersUsecase is a mock implementation of the UsersUsecase interface.
type mockUsersUsecase struct {
	CreateFunc     func(ctx context.Context, name, email, password string) (*entity.User, error)
	GetAllFunc     func(ctx context.Context) ([]entity.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (*entity.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	GetByNameFunc  func(ctx context.Context, name string) (*entity.User, error)
	UpdateFunc     func(ctx context.Context, id string, in usecase.UpdateInput) error
	DeleteFunc     func(ctx context.Context, id string) error
	GetPostsFunc   func(ctx context.Context, id string) (*entity.User, []entity.Post, error)
	LoginFunc      func(ctx context.Context, email, password string) error
}

func (m *mockUsersUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, name, email, password)
	}
	return &entity.User{ID: "u1", Name: name, Email: email, Password: password}, nil
}

func (m *mockUsersUsecase) GetAll(ctx context.Context) ([]entity.User, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return []entity.User{}, nil
}

func (m *mockUsersUsecase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, apperr.NotFound("user not found")
}

func (m *mockUsersUsecase) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, apperr.NotFound("user not found")
}

func (m *mockUsersUsecase) GetByName(ctx context.Context, name string) (*entity.User, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, apperr.NotFound("user not found")
}

func (m *mockUsersUsecase) Update(ctx context.Context, id string, in usecase.UpdateInput) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, in)
	}
	return nil
}

func (m *mockUsersUsecase) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUsersUsecase) GetPosts(ctx context.Context, id string) (*entity.User, []entity.Post, error) {
	if m.GetPostsFunc != nil {
		return m.GetPostsFunc(ctx, id)
	}
	return nil, nil, apperr.NotFound("user not found")
}

func (m *mockUsersUsecase) Login(ctx context.Context, email, password string) error {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil
}

func newTestRouter(uc UsersUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(uc)
	r := gin.New()
	r.POST("/create-user", h.Create)
	r.GET("/get-all-user", h.GetAll)
	r.GET("/get-user-detail/:id", h.GetByID)
	r.PUT("/update-user/:id", h.Update)
	r.DELETE("/delete/:id", h.Delete)
	r.GET("/get-posts/:id", h.GetPosts)
	r.GET("/login", h.Login)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     any
		mockCreateFunc  func(ctx context.Context, name, email, password string) (*entity.User, error)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success: user registration",
			requestBody:     gin.H{"name": "Alice Smith", "email": "a@b.com", "password": "Abcde1!"},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "user created successfully",
		},
		{
			name:        "failure: validation error from the usecase",
			requestBody: gin.H{"name": "Alice Smith"},
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, apperr.Validation("please provide all required fields")
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "please provide all required fields",
		},
		{
			name:        "failure: duplicate email",
			requestBody: gin.H{"name": "Alice Smith", "email": "a@b.com", "password": "Abcde1!"},
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, apperr.Conflict("email already exists")
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "email already exists",
		},
		{
			name:        "failure: persistence error surfaces as 500",
			requestBody: gin.H{"name": "Alice Smith", "email": "a@b.com", "password": "Abcde1!"},
			mockCreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
				return nil, apperr.Persistence("failed to create user", assert.AnError)
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "failed to create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUsersUsecase{CreateFunc: tt.mockCreateFunc})

			w := doJSON(t, r, http.MethodPost, "/create-user", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["message"])
			assert.Equal(t, float64(tt.expectedStatus), body["status"])
		})
	}
}

func TestUserHandler_Create_MissingBody(t *testing.T) {
	// An absent body is passed through as empty fields so the usecase
	// reports the missing fields itself.
	var gotName, gotEmail string
	uc := &mockUsersUsecase{
		CreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
			gotName, gotEmail = name, email
			return nil, apperr.Validation("please provide all required fields")
		},
	}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodPost, "/create-user", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, gotName)
	assert.Empty(t, gotEmail)
}

func TestUserHandler_Create_MalformedBody(t *testing.T) {
	r := newTestRouter(&mockUsersUsecase{
		CreateFunc: func(ctx context.Context, name, email, password string) (*entity.User, error) {
			t.Fatal("usecase must not be called for a malformed body")
			return nil, nil
		},
	})

	req, _ := http.NewRequest(http.MethodPost, "/create-user", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("success: raw record with all fields", func(t *testing.T) {
		uc := &mockUsersUsecase{
			GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
				return &entity.User{ID: id, Name: "Alice Smith", Email: "a@b.com", Password: "Abcde1!", Posts: []string{"p1"}}, nil
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodGet, "/get-user-detail/u1", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body gin.H
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "u1", body["id"])
		assert.Equal(t, "Abcde1!", body["password"], "the record is returned verbatim, password included")
		assert.Equal(t, []any{"p1"}, body["posts"])
	})

	t.Run("failure: unknown id", func(t *testing.T) {
		r := newTestRouter(&mockUsersUsecase{})

		w := doJSON(t, r, http.MethodGet, "/get-user-detail/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})
}

func TestUserHandler_Update(t *testing.T) {
	t.Run("success: partial body forwarded as-is", func(t *testing.T) {
		var gotID string
		var gotIn usecase.UpdateInput
		uc := &mockUsersUsecase{
			UpdateFunc: func(ctx context.Context, id string, in usecase.UpdateInput) error {
				gotID, gotIn = id, in
				return nil
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPut, "/update-user/u1", gin.H{"email": "new@b.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user updated successfully")
		assert.Equal(t, "u1", gotID)
		assert.Equal(t, usecase.UpdateInput{Email: "new@b.com"}, gotIn)
	})

	t.Run("failure: invalid replacement email", func(t *testing.T) {
		uc := &mockUsersUsecase{
			UpdateFunc: func(ctx context.Context, id string, in usecase.UpdateInput) error {
				return apperr.Validation("invalid email format")
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodPut, "/update-user/u1", gin.H{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email format")
	})
}

func TestUserHandler_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotID string
		uc := &mockUsersUsecase{
			DeleteFunc: func(ctx context.Context, id string) error {
				gotID = id
				return nil
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodDelete, "/delete/u1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user deleted successfully")
		assert.Equal(t, "u1", gotID)
	})

	t.Run("failure: unknown id", func(t *testing.T) {
		uc := &mockUsersUsecase{
			DeleteFunc: func(ctx context.Context, id string) error {
				return apperr.NotFound("user not found")
			},
		}
		r := newTestRouter(uc)

		w := doJSON(t, r, http.MethodDelete, "/delete/missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_GetPosts(t *testing.T) {
	uc := &mockUsersUsecase{
		GetPostsFunc: func(ctx context.Context, id string) (*entity.User, []entity.Post, error) {
			user := &entity.User{ID: id, Name: "Alice Smith"}
			posts := []entity.Post{
				{ID: "p1", Title: "Hello World", Content: "This is content."},
				{ID: "p2", Title: "Second post", Content: "More content here."},
			}
			return user, posts, nil
		},
	}
	r := newTestRouter(uc)

	w := doJSON(t, r, http.MethodGet, "/get-posts/u1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []gin.H
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Alice Smith", items[0]["name"])
	assert.Equal(t, "Hello World", items[0]["title"])
	assert.NotContains(t, items[0], "id", "the projection drops the post id")
}

func TestUserHandler_Login(t *testing.T) {
	tests := []struct {
		name            string
		requestBody     gin.H
		mockLoginFunc   func(ctx context.Context, email, password string) error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success: matching credentials",
			requestBody:     gin.H{"email": "a@b.com", "password": "Abcde1!"},
			expectedStatus:  http.StatusOK,
			expectedMessage: "login successful",
		},
		{
			name:        "failure: credential mismatch is a 404",
			requestBody: gin.H{"email": "a@b.com", "password": "wrong"},
			mockLoginFunc: func(ctx context.Context, email, password string) error {
				return apperr.NotFound("incorrect email or password")
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "incorrect email or password",
		},
		{
			name:        "failure: malformed email rejected before lookup",
			requestBody: gin.H{"email": "not-an-email", "password": "Abcde1!"},
			mockLoginFunc: func(ctx context.Context, email, password string) error {
				return apperr.Validation("invalid email format")
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&mockUsersUsecase{LoginFunc: tt.mockLoginFunc})

			// The login route reads its credentials from a GET body.
			w := doJSON(t, r, http.MethodGet, "/login", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedMessage, body["message"])
		})
	}
}
