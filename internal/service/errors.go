package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFoodNotFound       = errors.New("food not found")
	ErrConflict           = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	// ErrPredictionFailed covers undecodable uploads and classifier failures.
	ErrPredictionFailed = errors.New("model prediction failed")
)
