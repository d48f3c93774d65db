// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the ledger, config and command layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError pairs an error with the message a command prints for it.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.UserMessage
	}
	return e.UserMessage + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error { return e.Err }

// NewUserError wraps err behind a message meant for the terminal.
func NewUserError(userMessage string, err error) error {
	return &UserError{UserMessage: userMessage, Err: err}
}

// UserErrorf is NewUserError with a formatted message.
func UserErrorf(err error, format string, args ...any) error {
	return NewUserError(fmt.Sprintf(format, args...), err)
}

// UserMessage returns the message of the outermost UserError in err's chain, or
// err's own text when there is none.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
