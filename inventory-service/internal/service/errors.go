package service

import "errors"

var (
	ErrMissingParameter = errors.New("missing required parameter")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrStoreUnavailable = errors.New("product store unavailable")
)
