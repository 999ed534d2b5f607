package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/storage"
)

// Searcher runs the suggestion pipeline over the records and categories held
// in storage.
type Searcher struct {
	recordRepository   storage.RecordRepository
	categoryRepository storage.CategoryRepository
	semantics          *SemanticMap
	translate          core.TranslateFunc
	basePath           string
	language           string
	keyPrefix          string
	limit              int
	logger             *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithSemanticMap replaces the built-in semantic vocabulary.
func WithSemanticMap(m *SemanticMap) Option {
	return func(s *Searcher) error {
		if m == nil {
			return ErrSemanticMapRequired
		}
		s.semantics = m
		return nil
	}
}

// WithTranslator sets the function used to resolve description and category
// keys. Default is core.IdentityTranslate.
func WithTranslator(fn core.TranslateFunc) Option {
	return func(s *Searcher) error {
		if fn == nil {
			fn = core.IdentityTranslate
		}
		s.translate = fn
		return nil
	}
}

// WithLanguage sets the language segment prepended to suggestion URLs.
func WithLanguage(lang string) Option {
	return func(s *Searcher) error {
		s.language = lang
		return nil
	}
}

// WithBasePath sets the URL segment certification pages live under.
// Default is DefaultBasePath.
func WithBasePath(basePath string) Option {
	return func(s *Searcher) error {
		s.basePath = basePath
		return nil
	}
}

// WithKeyPrefix sets the prefix that marks translatable descriptions.
// Default is DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Searcher) error {
		s.keyPrefix = prefix
		return nil
	}
}

// WithLimit caps the number of suggestions returned.
// Must be between 1 and core.MaxSuggestions. Default is core.MaxSuggestions.
func WithLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit < 1 || limit > core.MaxSuggestions {
			return ErrInvalidLimit
		}
		s.limit = limit
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	recordRepository storage.RecordRepository,
	categoryRepository storage.CategoryRepository,
	opts ...Option,
) (*Searcher, error) {
	if recordRepository == nil {
		return nil, ErrRecordRepositoryRequired
	}
	if categoryRepository == nil {
		return nil, ErrCategoryRepositoryRequired
	}

	s := &Searcher{
		recordRepository:   recordRepository,
		categoryRepository: categoryRepository,
		semantics:          DefaultSemanticMap(),
		translate:          core.IdentityTranslate,
		basePath:           DefaultBasePath,
		keyPrefix:          DefaultKeyPrefix,
		limit:              core.MaxSuggestions,
		logger:             slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search returns ranked suggestions for query.
func (s *Searcher) Search(ctx context.Context, query string) ([]core.Suggestion, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor returns ranked suggestions for query with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) ([]core.Suggestion, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	if NormalizeQuery(query) == "" {
		results := []core.Suggestion{}
		monitor.Finish(results)
		return results, nil
	}

	corpus, err := s.recordRepository.ListRecords(ctx)
	if err != nil {
		s.logger.Error("error listing records", "err", err)
		return nil, err
	}
	categories, err := s.categoryRepository.CategoryIndex(ctx)
	if err != nil {
		s.logger.Error("error loading category index", "err", err)
		return nil, err
	}

	results := suggest(query, corpus, s.environment(categories), monitor)
	s.logger.Debug("search complete", "query", query, "records", len(corpus), "results", len(results))

	monitor.Finish(results)
	return results, nil
}

// DidYouMean returns the stored acronym closest to query, if any is similar
// enough to be worth suggesting.
func (s *Searcher) DidYouMean(ctx context.Context, query string) (string, bool, error) {
	corpus, err := s.recordRepository.ListRecords(ctx)
	if err != nil {
		return "", false, err
	}
	acronym, ok := ClosestAcronym(query, corpus, DefaultHintSimilarity)
	return acronym, ok, nil
}

func (s *Searcher) environment(categories core.CategoryIndex) Environment {
	return Environment{
		Semantics: s.semantics,
		Builder: Builder{
			Translate:  s.translate,
			Categories: categories,
			BasePath:   s.basePath,
			Language:   s.language,
			KeyPrefix:  s.keyPrefix,
		},
		Limit: s.limit,
	}
}
