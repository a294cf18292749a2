package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for a bad username/password pair.
	// Unknown username and wrong password produce this same error so the
	// response cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserExists       = errors.New("username exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrForbidden        = errors.New("admin only")
)
