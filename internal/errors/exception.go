package errors

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidOperation
	KindUnauthorized
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf reports KindInternal for anything that is not an *Exception.
func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsNotFound(err error) bool         { return KindOf(err) == KindNotFound }
func IsInvalidOperation(err error) bool { return KindOf(err) == KindInvalidOperation }
func IsUnauthorized(err error) bool     { return KindOf(err) == KindUnauthorized }
