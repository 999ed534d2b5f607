package dispatch

import "errors"

var (
	// ErrSearchFuncRequired is returned when a search function is not provided.
	ErrSearchFuncRequired = errors.New("search function required")

	// ErrHandlerRequired is returned when a result handler is not provided.
	ErrHandlerRequired = errors.New("result handler required")

	// ErrInvalidDelay is returned when a negative quiet period is configured.
	ErrInvalidDelay = errors.New("invalid debounce delay")

	// ErrDispatcherClosed is returned when submitting to a closed dispatcher.
	ErrDispatcherClosed = errors.New("dispatcher closed")
)
