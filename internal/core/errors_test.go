package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", invalidPath("/nope", "path does not exist: %s"))

	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.NotErrorIs(t, err, ErrPermission)
	assert.Equal(t, "wrapped: path does not exist: /nope", err.Error())

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "/nope", e.Path)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "boom", NewError(KindServer, "boom", nil).Error())
	assert.Equal(t, "inner", NewError(KindServer, "", errors.New("inner")).Error())
	assert.Equal(t, "TIMEOUT", (&Error{Kind: KindTimeout}).Error())
}

func TestTimeoutUnwrapsDeadline(t *testing.T) {
	err := timeoutError(context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ""},
		{"typed", NewError(KindNetwork, "down", nil), KindNetwork},
		{"deadline", fmt.Errorf("walk: %w", context.DeadlineExceeded), KindTimeout},
		{"permission", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, KindPermission},
		{"missing", &fs.PathError{Op: "stat", Path: "x", Err: fs.ErrNotExist}, KindInvalidPath},
		{"other", errors.New("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
