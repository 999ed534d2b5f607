package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
type RecordRepository struct {
	backend *Backend
	posSeq  *badger.Sequence
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(backend *Backend) (*RecordRepository, error) {
	posSeq, err := backend.GetSequence(recordPosSeq)
	if err != nil {
		return nil, err
	}

	return &RecordRepository{
		backend: backend,
		posSeq:  posSeq,
	}, nil
}

// Close releases the position sequence.
func (r *RecordRepository) Close() error {
	return r.posSeq.Release()
}

// AddRecords appends records to the corpus.
func (r *RecordRepository) AddRecords(ctx context.Context, records ...core.Record) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for i := range records {
			record := &records[i]
			idKey := makeRecordIDKey(record.ID)

			_, err := tx.Get(idKey)
			if err == nil {
				return fmt.Errorf("%w: record %q", storage.ErrDuplicateKey, record.ID)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			pos, err := r.nextPosition()
			if err != nil {
				return err
			}

			if err := tx.Set(makeRecordKey(pos), storage.MarshalRecord(record)); err != nil {
				return err
			}
			if err := tx.Set(idKey, storage.MarshalID(core.ID(pos))); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecord retrieves a single record by id.
func (r *RecordRepository) GetRecord(ctx context.Context, id string) (*core.Record, error) {
	var result *core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		pos, err := r.lookupPosition(tx, id)
		if err != nil {
			return err
		}
		result, err = readRecord(tx, makeRecordKey(pos))
		if err != nil {
			return err
		}
		// Guard against a hash collision in the id index
		if result == nil || result.ID != id {
			result = nil
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListRecords returns all records in corpus order.
func (r *RecordRepository) ListRecords(ctx context.Context) ([]core.Record, error) {
	var result []core.Record
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return iteratePrefix(tx, []byte(recordPrefix), true, func(item *badger.Item) error {
			return item.Value(func(val []byte) error {
				record, err := storage.UnmarshalRecord(val)
				if err != nil {
					return err
				}
				result = append(result, *record)
				return nil
			})
		})
	}, false)
	return result, err
}

// DeleteRecords removes records by id.
func (r *RecordRepository) DeleteRecords(ctx context.Context, ids ...string) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			pos, err := r.lookupPosition(tx, id)
			if err != nil {
				return err
			}
			if err := tx.Delete(makeRecordKey(pos)); err != nil {
				return err
			}
			if err := tx.Delete(makeRecordIDKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of stored records.
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		return iteratePrefix(tx, []byte(recordPrefix), false, func(*badger.Item) error {
			count++
			return nil
		})
	}, false)
	return count, err
}

// nextPosition returns the next corpus position.
func (r *RecordRepository) nextPosition() (uint64, error) {
	pos, err := r.posSeq.Next()
	if err != nil {
		return 0, err
	}
	// BadgerDB sequences can return 0 on first call, so we skip it
	if pos == 0 {
		return r.posSeq.Next()
	}
	return pos, nil
}

func (r *RecordRepository) lookupPosition(tx *badger.Txn, id string) (uint64, error) {
	item, err := tx.Get(makeRecordIDKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, fmt.Errorf("%w: record %q", storage.ErrNotFound, id)
		}
		return 0, err
	}

	var pos core.ID
	err = item.Value(func(val []byte) error {
		pos, err = storage.UnmarshalID(val)
		return err
	})
	return uint64(pos), err
}

func readRecord(tx *badger.Txn, key []byte) (*core.Record, error) {
	item, err := tx.Get(key)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var record *core.Record
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	return record, err
}
