package domain

import "errors"

// Validation and lookup errors
var (
	ErrValidation        = errors.New("invalid input")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("username or email already exists")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// Catalog errors
var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductLineNotFound = errors.New("product line not found")
	ErrSaleNotFound        = errors.New("sale not found")
)

// Infrastructure errors
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
)
