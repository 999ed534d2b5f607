package translate

import "errors"

var (
	// ErrInvalidLanguage is returned when a language tag cannot be parsed.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrLoadFailed is returned when a message file cannot be loaded.
	ErrLoadFailed = errors.New("failed to load message file")
)
