package services

import "errors"

// The three error kinds every service returns. Handlers map them onto
// HTTP statuses: ErrInvalid -> 400, ErrForbidden -> 403, ErrNotFound -> 404,
// anything else -> 500.
var (
	ErrInvalid   = errors.New("invalid request")
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)
