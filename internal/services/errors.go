package services

import "errors"

var (
	// ErrEmailTaken is returned by RegisterUser when the email is already
	// registered.
	ErrEmailTaken = errors.New("user already exists with this email")
	// ErrInvalidCredentials is returned by LoginUser for both an unknown
	// email and a wrong password, so callers cannot tell which emails are
	// registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
