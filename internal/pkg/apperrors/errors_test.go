package apperrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Unwrap(t *testing.T) {
	err := NewCustomError(ErrEmptyExport, "export file data/Classes.html contains no timetables")

	assert.Equal(t, "export file data/Classes.html contains no timetables", err.Error())
	assert.ErrorIs(t, err, ErrEmptyExport)
}

func TestCustomError_MessageFallback(t *testing.T) {
	err := NewCustomError(ErrBadRequest, "")
	assert.Equal(t, ErrBadRequest.Error(), err.Error())
}

func TestIs_MatchesAnyTarget(t *testing.T) {
	wrapped := NewCustomError(ErrBadRequest, "name must not be empty")

	assert.True(t, Is(wrapped, ErrValidationFailed, ErrBadRequest))
	assert.True(t, Is(wrapped, ErrBadRequest))
	assert.False(t, Is(wrapped, ErrClassNotFound, ErrTeacherNotFound))
}
