package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorHierarchy(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(ErrUserNotFound, ErrNotFound))
	assert.True(t, errors.Is(ErrEmailExists, ErrDuplicate))
	assert.False(t, errors.Is(ErrUserNotFound, ErrDuplicate))
	assert.False(t, errors.Is(ErrEmailExists, ErrNotFound))
}

func TestIsNotFoundAndDuplicate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		err           error
		wantNotFound  bool
		wantDuplicate bool
	}{
		{name: "nil", err: nil},
		{name: "user not found", err: ErrUserNotFound, wantNotFound: true},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrUserNotFound), wantNotFound: true},
		{name: "email exists", err: ErrEmailExists, wantDuplicate: true},
		{name: "store error wrapping duplicate", err: NewStoreError("user", "create", "conflict", ErrEmailExists), wantDuplicate: true},
		{name: "unrelated", err: errors.New("boom")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantNotFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.wantDuplicate, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	withCause := NewStoreError("user", "update", "row missing", ErrUserNotFound)
	assert.Equal(t, "update operation on user failed: row missing: entity not found: user", withCause.Error())
	assert.ErrorIs(t, withCause, ErrUserNotFound)

	withoutCause := NewStoreError("user", "delete", "nothing to do", nil)
	assert.Equal(t, "delete operation on user failed: nothing to do", withoutCause.Error())
	assert.Nil(t, withoutCause.Unwrap())
}
