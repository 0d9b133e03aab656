package service

import "errors"

// Sentinel errors wrapped by services so controllers can map them to HTTP
// status codes with errors.Is. Anything else surfaces as a processing error.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
