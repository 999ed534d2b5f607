package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/storage"
)

// Import defaults.
const (
	DefaultBatchSize      = 100
	DefaultMaxAttempts    = 3
	DefaultRetryBaseDelay = 50 * time.Millisecond
)

// Stats summarises a completed import.
type Stats struct {
	Records    int
	Batches    int
	Categories int
	Replaced   int
	Elapsed    time.Duration
}

// Importer writes snapshots into record and category repositories.
type Importer struct {
	recordRepository   storage.RecordRepository
	categoryRepository storage.CategoryRepository
	batchSize          int
	maxAttempts        int
	retryBaseDelay     time.Duration
	replace            bool
	progress           io.Writer
	logger             *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithBatchSize sets how many records are written per transaction.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(i *Importer) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		i.batchSize = size
		return nil
	}
}

// WithRetry sets the attempts and base backoff delay for batch writes.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(i *Importer) error {
		if maxAttempts < 1 {
			return ErrInvalidMaxAttempts
		}
		i.maxAttempts = maxAttempts
		i.retryBaseDelay = baseDelay
		return nil
	}
}

// WithReplace removes every stored record and category before importing.
func WithReplace(replace bool) Option {
	return func(i *Importer) error {
		i.replace = replace
		return nil
	}
}

// WithProgress reports import progress to w. Nil disables reporting.
func WithProgress(w io.Writer) Option {
	return func(i *Importer) error {
		i.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(i *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// NewImporter creates a new importer.
func NewImporter(
	recordRepository storage.RecordRepository,
	categoryRepository storage.CategoryRepository,
	opts ...Option,
) (*Importer, error) {
	if recordRepository == nil {
		return nil, ErrRecordRepositoryRequired
	}
	if categoryRepository == nil {
		return nil, ErrCategoryRepositoryRequired
	}

	i := &Importer{
		recordRepository:   recordRepository,
		categoryRepository: categoryRepository,
		batchSize:          DefaultBatchSize,
		maxAttempts:        DefaultMaxAttempts,
		retryBaseDelay:     DefaultRetryBaseDelay,
		logger:             slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}

	return i, nil
}

// Import validates snap and writes its records and categories.
// Records keep their snapshot order.
func (i *Importer) Import(ctx context.Context, snap *Snapshot) (Stats, error) {
	var stats Stats
	if snap == nil {
		return stats, ErrSnapshotRequired
	}
	if err := snap.Validate(); err != nil {
		return stats, err
	}

	start := time.Now()

	if i.replace {
		replaced, err := i.clear(ctx)
		if err != nil {
			return stats, err
		}
		stats.Replaced = replaced
	}

	var tracker *ProgressTracker
	if i.progress != nil {
		tracker = NewProgressTracker(i.progress, "Importing", len(snap.Records), i.batchSize)
		tracker.Start()
	}

	for from := 0; from < len(snap.Records); from += i.batchSize {
		to := min(from+i.batchSize, len(snap.Records))
		batch := snap.Records[from:to]

		err := retryWithBackoff(ctx, func() error {
			return i.recordRepository.AddRecords(ctx, batch...)
		}, isTransient, i.maxAttempts, i.retryBaseDelay)
		if err != nil {
			i.logger.Error("error writing batch", "first", batch[0].ID, "size", len(batch), "err", err)
			return stats, fmt.Errorf("failed to import records %d-%d: %w", from, to-1, err)
		}

		stats.Records += len(batch)
		stats.Batches++
		if tracker != nil {
			tracker.Increment(len(batch))
		}
	}
	if tracker != nil {
		tracker.Finish()
	}

	if len(snap.Categories) > 0 {
		if err := i.categoryRepository.SetCategories(ctx, snap.Categories); err != nil {
			return stats, fmt.Errorf("failed to import categories: %w", err)
		}
		stats.Categories = len(snap.Categories)
	}

	stats.Elapsed = time.Since(start)
	i.logger.Info("import complete",
		"records", stats.Records,
		"batches", stats.Batches,
		"categories", stats.Categories,
		"replaced", stats.Replaced,
		"elapsed", stats.Elapsed)

	return stats, nil
}

func (i *Importer) clear(ctx context.Context) (int, error) {
	categories, err := i.categoryRepository.ClearCategories(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to remove existing categories: %w", err)
	}
	i.logger.Debug("cleared categories", "count", categories)

	existing, err := i.recordRepository.ListRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list existing records: %w", err)
	}
	if len(existing) == 0 {
		return 0, nil
	}

	ids := make([]string, len(existing))
	for n, record := range existing {
		ids[n] = record.ID
	}
	if err := i.recordRepository.DeleteRecords(ctx, ids...); err != nil {
		return 0, fmt.Errorf("failed to remove existing records: %w", err)
	}
	return len(ids), nil
}

// isTransient reports whether a write error may succeed on retry.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, storage.ErrDuplicateKey),
		errors.Is(err, storage.ErrStorageClosed),
		errors.Is(err, storage.ErrSerializationFailed),
		errors.Is(err, core.ErrInvalidRecord),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
