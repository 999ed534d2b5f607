package storage

import (
	"context"

	"github.com/poiesic/certsearch/core"
)

// RecordRepository stores certification records in corpus order.
// Implementations must be thread-safe and support concurrent access.
type RecordRepository interface {
	// AddRecords appends records after any already stored.
	// Returns ErrDuplicateKey if a record id is already present.
	AddRecords(ctx context.Context, records ...core.Record) error

	// GetRecord retrieves a single record by its id.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id string) (*core.Record, error)

	// ListRecords returns every record in the order it was added.
	ListRecords(ctx context.Context) ([]core.Record, error)

	// DeleteRecords removes records by id.
	// Returns ErrNotFound if any record doesn't exist.
	DeleteRecords(ctx context.Context, ids ...string) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}

// CategoryRepository stores the record id to category mapping.
type CategoryRepository interface {
	// SetCategories stores or replaces the categories of the given record ids.
	SetCategories(ctx context.Context, index core.CategoryIndex) error

	// GetCategory returns the category of a record.
	// Returns ErrNotFound if the record has no category.
	GetCategory(ctx context.Context, id string) (core.CategoryEntry, error)

	// CategoryIndex returns the full mapping.
	CategoryIndex(ctx context.Context) (core.CategoryIndex, error)

	// ClearCategories removes every stored category.
	// Returns the number of entries removed.
	ClearCategories(ctx context.Context) (int, error)

	Close() error
}
