package domain

import (
	"errors"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnparseable   = errors.New("unparseable article")
	ErrUnavailable   = errors.New("store unavailable")
)
