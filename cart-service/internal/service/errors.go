package service

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrEmptyCart        = errors.New("cart is empty, nothing to checkout")
	ErrStoreUnavailable = errors.New("product store unavailable")
)
