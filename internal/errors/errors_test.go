package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "shift"}
		assert.Equal(t, "shift not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "shift"}
		err2 := &NotFoundError{Entity: "site"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShiftNotFound, ErrShiftNotFound))
		assert.False(t, errors.Is(ErrShiftNotFound, ErrSiteNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShiftNotFound))
		assert.False(t, IsNotFound(ErrInvalidTimeRange))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "assignment", Context: "for this user and shift"}
		assert.Equal(t, "assignment already exists for this user and shift", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "assignment"}
		assert.Equal(t, "assignment already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "assignment", Context: "for this shift"}
		err2 := &AlreadyExistsError{Entity: "assignment", Context: "for this shift"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAssignmentExists))
		assert.False(t, IsAlreadyExists(ErrAssignmentNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "start_time", Message: "must precede end_time"}
		assert.Equal(t, "validation error: start_time - must precede end_time", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(&ValidationError{Message: "bad"}))
		assert.False(t, IsValidation(ErrShiftNotFound))
	})
}
