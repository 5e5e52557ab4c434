package core

import "errors"

// Service-level errors. Handlers map these onto HTTP status codes with
// errors.Is: missing/invalid input -> 400, not found -> 404, duplicate
// email -> 409, upstream upload failure -> 500.
var (
	ErrMissingEmail    = errors.New("email is required")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidID       = errors.New("invalid record id")
	ErrProfileNotFound = errors.New("profile not found")
	ErrRecordNotFound  = errors.New("record not found")
	ErrDuplicateEmail  = errors.New("a profile with this email already exists")
	ErrNoFile          = errors.New("no file provided")
	ErrUploadFailed    = errors.New("upload failed")
)
