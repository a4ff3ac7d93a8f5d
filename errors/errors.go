package errors

import "fmt"

// Gated operations
var (
	ErrUnauthenticated  = fmt.Errorf("unauthenticated")
	ErrPermissionDenied = fmt.Errorf("permission denied")
)

// Records
var (
	ErrNotFound        = fmt.Errorf("not found")
	ErrAlreadyExists   = fmt.Errorf("already exists")
	ErrAmbiguousResult = fmt.Errorf("ambiguous result")
	ErrSelfReference   = fmt.Errorf("cannot reference yourself")
)

// Input preconditions
var (
	ErrEmptyBody            = fmt.Errorf("message cannot be empty")
	ErrValidation           = fmt.Errorf("validation failed")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
)

// Backend
var (
	ErrWrite              = fmt.Errorf("write failed")
	ErrQuery              = fmt.Errorf("query failed")
	ErrSubscriptionClosed = fmt.Errorf("subscription closed")
	ErrUpload             = fmt.Errorf("upload failed")
)

// Authentication provider
var (
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrUserAlreadyExists  = fmt.Errorf("an account already exists for this email")
	ErrInvalidPassword    = fmt.Errorf("password does not meet the requirements")
	ErrTokenGeneration    = fmt.Errorf("session token could not be generated")
	ErrInvalidToken       = fmt.Errorf("invalid session token")
)
