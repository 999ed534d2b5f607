package loader

import "errors"

var (
	// ErrRecordRepositoryRequired is returned when a record repository is not provided.
	ErrRecordRepositoryRequired = errors.New("record repository required")

	// ErrCategoryRepositoryRequired is returned when a category repository is not provided.
	ErrCategoryRepositoryRequired = errors.New("category repository required")

	// ErrSnapshotRequired is returned when Import is called with a nil snapshot.
	ErrSnapshotRequired = errors.New("snapshot required")

	// ErrInvalidSnapshot is returned when a snapshot cannot be decoded or validated.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrInvalidBatchSize is returned when batch size is less than 1.
	ErrInvalidBatchSize = errors.New("batch size must be at least 1")

	// ErrInvalidMaxAttempts is returned when max attempts is less than 1.
	ErrInvalidMaxAttempts = errors.New("max attempts must be at least 1")
)
