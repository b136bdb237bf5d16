package core

import "errors"

// Validation errors (client input)
var (
	ErrInvalidUsername    = errors.New("invalid username")                   // 400
	ErrInvalidPassword    = errors.New("invalid password")                   // 400
	ErrInvalidEmail       = errors.New("invalid email")                      // 400
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")  // 400
	ErrInvalidWorkoutName = errors.New("invalid workout name")               // 400
	ErrInvalidDuration    = errors.New("duration must be a positive number") // 400
)

// Uniqueness conflicts (checked at registration time only)
var (
	ErrUsernameExists = errors.New("username already exists") // 409 Conflict
	ErrEmailExists    = errors.New("email already exists")    // 409 Conflict
)

// Authorization errors
var (
	ErrLoginRequired = errors.New("login required") // 401 Unauthorized
)

// Lookup errors
var (
	ErrAccountNotFound = errors.New("account not found") // 404 Not Found
)

// Config errors (server-side configuration)
var (
	ErrMembershipRequired  = errors.New("membership directory is required") // 500
	ErrHTTPAdapterRequired = errors.New("adapter is required")              // 500
)

// Cache errors
var (
	ErrCacheNotFound = errors.New("message not found in cache")
)
