package models

import (
	"errors"
)

var (
	ErrValidation = errors.New("validation error")

	// ErrUnknownSuggestionType is a programmer error: the type set is closed.
	ErrUnknownSuggestionType = errors.New("unknown suggestion type")
)
