package apiclient

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a backend rejection. Message is the server's error string as sent,
// so it can be shown to the user verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

func newError(status int, errMsg, msg string) *Error {
	if status < http.StatusMultipleChoices {
		status = http.StatusUnprocessableEntity
	}

	message := errMsg
	if message == "" {
		message = msg
	}
	if message == "" {
		message = "request failed: " + http.StatusText(status)
	}

	return &Error{Status: status, Message: message}
}
