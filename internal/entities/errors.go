package entities

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("order status changed concurrently")
	ErrValidation        = errors.New("validation failed")
)
