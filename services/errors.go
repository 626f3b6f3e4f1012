package services

import "errors"

// Sentinel errors returned by the service layer. Controllers match these
// with errors.Is and map them to HTTP statuses.
var (
	ErrNotFound      = errors.New("record not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidState  = errors.New("operation not valid for current status")
	ErrSelfClaim     = errors.New("cannot claim your own report")
	ErrValidation    = errors.New("invalid input")
)
