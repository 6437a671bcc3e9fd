package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers match
// them with errors.Is; implementations may wrap them with extra context.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)
