package contract

import "errors"

var (
	ErrProviderTimeout = errors.New("provider call timed out")
	ErrProvider        = errors.New("provider call failed")
	ErrComposition     = errors.New("prompt composition failed")
	ErrValidation      = errors.New("validation failed")
)
