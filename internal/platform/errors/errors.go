package apperrors

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrNotStarted   = errors.New("progress engine not started")
	ErrStorage      = errors.New("storage failure")
)
