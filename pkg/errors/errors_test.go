package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseError(t *testing.T) {
	cause := goerrors.New("connection reset")
	err := NewDatabaseError("get todo", cause)

	assert.True(t, IsDatabase(err))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get todo")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestErrorTypeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("todo")))
	assert.True(t, IsValidation(NewValidationError("'id' query parameter is missing")))
	assert.False(t, IsNotFound(NewValidationError("nope")))
	assert.False(t, IsNotFound(goerrors.New("plain error")))
}

func TestGetAppError_UnwrapsChain(t *testing.T) {
	inner := NewNotFoundError("todo")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr := GetAppError(wrapped)
	assert.Equal(t, inner, appErr)
	assert.True(t, IsNotFound(wrapped))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	// Plain errors become internal errors with the cause preserved.
	cause := goerrors.New("boom")
	wrapped := Wrap(cause, "scan failed")
	appErr := GetAppError(wrapped)
	assert.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeInternal, appErr.Type)
	assert.ErrorIs(t, wrapped, cause)

	// AppErrors keep their type and gain context.
	dbErr := Wrap(NewDatabaseError("put todo", cause), "create")
	assert.True(t, IsDatabase(dbErr))
	assert.Contains(t, dbErr.Error(), "create")
}
