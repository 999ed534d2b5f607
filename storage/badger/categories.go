package badger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/storage"
)

// CategoryRepository implements storage.CategoryRepository for BadgerDB.
type CategoryRepository struct {
	backend *Backend
}

var _ storage.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(backend *Backend) *CategoryRepository {
	return &CategoryRepository{
		backend: backend,
	}
}

// Close releases resources. CategoryRepository has no resources to release.
func (r *CategoryRepository) Close() error {
	return nil
}

// SetCategories stores the given entries, replacing existing ones for the same ids.
func (r *CategoryRepository) SetCategories(ctx context.Context, index core.CategoryIndex) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range slices.Sorted(maps.Keys(index)) {
			if err := tx.Set(makeCategoryKey(id), storage.MarshalCategory(index[id])); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCategory returns the category of a record id.
func (r *CategoryRepository) GetCategory(ctx context.Context, id string) (core.CategoryEntry, error) {
	var entry core.CategoryEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCategoryKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: category for %q", storage.ErrNotFound, id)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err = storage.UnmarshalCategory(val)
			return err
		})
	}, false)
	return entry, err
}

// CategoryIndex returns every stored category keyed by record id.
func (r *CategoryRepository) CategoryIndex(ctx context.Context) (core.CategoryIndex, error) {
	index := make(core.CategoryIndex)
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return iteratePrefix(tx, []byte(categoryPrefix), true, func(item *badger.Item) error {
			id := strings.TrimPrefix(string(item.Key()), categoryPrefix)
			return item.Value(func(val []byte) error {
				entry, err := storage.UnmarshalCategory(val)
				if err != nil {
					return err
				}
				index[id] = entry
				return nil
			})
		})
	}, false)
	return index, err
}

// ClearCategories deletes every category entry.
func (r *CategoryRepository) ClearCategories(ctx context.Context) (int, error) {
	var keys [][]byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return iteratePrefix(tx, []byte(categoryPrefix), false, func(item *badger.Item) error {
			keys = append(keys, item.KeyCopy(nil))
			return nil
		})
	}, false)
	if err != nil || len(keys) == 0 {
		return 0, err
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		for _, key := range keys {
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}
