package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad input"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("user not found"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("username taken"), ErrorTypeConflict, http.StatusConflict},
		{"bad request", NewBadRequestError("malformed body"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppErrorMessage(t *testing.T) {
	plain := NewNotFoundError("user not found")
	assert.Equal(t, "not_found: user not found", plain.Error())

	detailed := NewValidationError("invalid rating", "rating must be between 1 and 5")
	assert.Equal(t, "validation_error: invalid rating (rating must be between 1 and 5)", detailed.Error())
}

func TestGetAppErrorUnwrapsChains(t *testing.T) {
	inner := NewConflictError("duplicate plan name")
	wrapped := fmt.Errorf("creating plan: %w", inner)

	got := GetAppError(wrapped)
	assert.Same(t, inner, got)

	assert.Nil(t, GetAppError(stderrors.New("plain error")))
	assert.Nil(t, GetAppError(nil))
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("x")))
	assert.False(t, IsNotFoundError(NewConflictError("x")))

	assert.True(t, IsValidationError(fmt.Errorf("wrap: %w", NewValidationError("x"))))
	assert.False(t, IsValidationError(stderrors.New("x")))

	assert.True(t, IsConflictError(NewConflictError("x")))
	assert.False(t, IsConflictError(nil))

	assert.True(t, IsAppError(NewInternalError("x")))
	assert.False(t, IsAppError(stderrors.New("x")))
}

func TestIsDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"mysql", stderrors.New("Error 1062: Duplicate entry 'alice' for key 'idx_username'"), true},
		{"sqlite", stderrors.New("UNIQUE constraint failed: users.username"), true},
		{"postgres", stderrors.New(`pq: duplicate key value violates unique constraint "users_username_key"`), true},
		{"unrelated", stderrors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}
