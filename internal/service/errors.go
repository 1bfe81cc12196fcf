package service

import "errors"

// Credential errors are kept distinct so the handler can report an unknown
// email and a wrong password with different envelope codes, matching what
// the mobile app already expects.
var (
	ErrEmailTaken    = errors.New("email already registered")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)
