package service

import (
	"errors"
	"strings"
)

var (
	ErrMissingParameter   = errors.New("missing parameter")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrStoreUnavailable   = errors.New("user store unavailable")
)

// ValidationError carries every message a rejected signup produced.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "\n")
}
