// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package certsearch

import (
	"context"
	"log/slog"

	"github.com/poiesic/certsearch/dispatch"
	"github.com/poiesic/certsearch/loader"
	"github.com/poiesic/certsearch/search"
	"github.com/poiesic/certsearch/storage"
	"github.com/poiesic/certsearch/storage/badger"
)

// Catalog owns the storage backing a certification corpus and hands out the
// components that work on it.
type Catalog struct {
	backend      *badger.Backend
	recordRepo   storage.RecordRepository
	categoryRepo storage.CategoryRepository
	logger       *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the catalog and its storage.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		o.logger = logger
	}
}

// OpenCatalog opens a catalog stored in the directory at filePath.
// An empty filePath keeps the catalog in memory.
func OpenCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	// Apply options
	options := &catalogOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	// Open backend
	backend, err := badger.OpenBackendWithLogger(filePath, filePath == "", options.logger)
	if err != nil {
		return nil, err
	}

	// Create record repository
	recordRepo, err := badger.NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create category repository
	categoryRepo := badger.NewCategoryRepository(backend)

	return &Catalog{
		backend:      backend,
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
		logger:       options.logger,
	}, nil
}

func (c *Catalog) Close() error {
	// Close repositories
	if err := c.categoryRepo.Close(); err != nil {
		c.logger.Error("error closing category repository", "err", err)
		return err
	}
	if err := c.recordRepo.Close(); err != nil {
		c.logger.Error("error closing record repository", "err", err)
		return err
	}

	// Close backend
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (c *Catalog) RecordRepository() storage.RecordRepository {
	return c.recordRepo
}

func (c *Catalog) CategoryRepository() storage.CategoryRepository {
	return c.categoryRepo
}

// Count returns the number of stored records.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	return c.recordRepo.Count(ctx)
}

// Import writes snap into the catalog.
func (c *Catalog) Import(ctx context.Context, snap *loader.Snapshot, opts ...loader.Option) (loader.Stats, error) {
	opts = append([]loader.Option{loader.WithLogger(c.logger)}, opts...)
	importer, err := loader.NewImporter(c.recordRepo, c.categoryRepo, opts...)
	if err != nil {
		return loader.Stats{}, err
	}
	return importer.Import(ctx, snap)
}

func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(c.logger)}, opts...)
	return search.NewSearcher(c.recordRepo, c.categoryRepo, opts...)
}

// NewDispatcher creates a dispatcher that runs searcher for every settled
// query and reports results to handler.
func (c *Catalog) NewDispatcher(searcher *search.Searcher, handler dispatch.ResultHandler, opts ...dispatch.Option) (*dispatch.Dispatcher, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}
	opts = append([]dispatch.Option{dispatch.WithLogger(c.logger)}, opts...)
	return dispatch.NewDispatcher(searcher.Search, handler, opts...)
}
