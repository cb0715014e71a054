package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation maps to 400", err: Validation("bad input"), want: http.StatusBadRequest},
		{name: "conflict maps to 400", err: Conflict("duplicate"), want: http.StatusBadRequest},
		{name: "not found maps to 404", err: NotFound("missing"), want: http.StatusNotFound},
		{name: "persistence maps to 500", err: Persistence("db down", errors.New("io timeout")), want: http.StatusInternalServerError},
		{name: "unclassified maps to 500", err: errors.New("plain"), want: http.StatusInternalServerError},
		{name: "wrapped classified error keeps its status", err: fmt.Errorf("outer: %w", NotFound("missing")), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	k, ok := KindOf(Conflict("duplicate"))
	assert.True(t, ok)
	assert.Equal(t, KindConflict, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(NotFound("missing")))
	assert.False(t, IsNotFound(Validation("bad input")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := Persistence("failed to create user", cause)

	assert.Equal(t, "failed to create user: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "missing", NotFound("missing").Error())
}
