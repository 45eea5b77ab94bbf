package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies failures that reach the user. Kinds are strings so
// they read well in logs and serialize naturally.
type ErrorKind string

const (
	// KindInvalidPath indicates the scan root is missing or not a directory.
	KindInvalidPath ErrorKind = "INVALID_PATH"

	// KindPermission indicates the scan root cannot be read.
	KindPermission ErrorKind = "PERMISSION_DENIED"

	// KindNetwork indicates a request to the scan service could not complete.
	KindNetwork ErrorKind = "NETWORK_ERROR"

	// KindServer indicates the scan service answered with an error status.
	KindServer ErrorKind = "SERVER_ERROR"

	// KindTimeout indicates a scan exceeded its time limit.
	KindTimeout ErrorKind = "TIMEOUT"

	// KindInternal covers everything else.
	KindInternal ErrorKind = "INTERNAL_ERROR"
)

// Sentinels for errors.Is. Matching is by kind only.
var (
	ErrInvalidPath = &Error{Kind: KindInvalidPath}
	ErrPermission  = &Error{Kind: KindPermission}
	ErrNetwork     = &Error{Kind: KindNetwork}
	ErrServer      = &Error{Kind: KindServer}
	ErrTimeout     = &Error{Kind: KindTimeout}
)

type Error struct {
	Kind    ErrorKind
	Path    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf classifies err. Context deadlines map to KindTimeout and
// filesystem permission failures to KindPermission.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, fs.ErrPermission):
		return KindPermission
	case errors.Is(err, fs.ErrNotExist):
		return KindInvalidPath
	}
	return KindInternal
}

func invalidPath(path, format string) *Error {
	return &Error{Kind: KindInvalidPath, Path: path, Message: fmt.Sprintf(format, path)}
}

func timeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Message: "scan timed out", Err: err}
}
