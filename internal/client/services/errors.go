package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already exists, please choose another one")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
