package utils

import "errors"

var (
	ErrNoDestination          = errors.New("no destination city provided")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnknownVendorCategory  = errors.New("unknown vendor category")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI behavior")
)
