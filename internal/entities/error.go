package entities

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrUpstream         = errors.New("rate provider unavailable")
)
