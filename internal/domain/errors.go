package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrUnknownDishType    = errors.New("unknown dish type")
	ErrMalformedRecord    = errors.New("malformed record")
	ErrInvalidDish        = errors.New("invalid dish")
	ErrUnknownDietaryFlag = errors.New("unknown dietary flag")
	ErrUnknownProfile     = errors.New("unknown dietary profile")
)
