package repository

import "errors"

// ErrInvalidInput is returned when a snapshot violates a storage constraint
var ErrInvalidInput = errors.New("invalid input")
