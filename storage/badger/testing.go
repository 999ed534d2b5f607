package badger

import "github.com/poiesic/certsearch/storage"

// NewMemoryRepositories creates in-memory record and category repositories for testing.
// Returns recordRepo, categoryRepo, backend, and error.
// Caller must close both repos and backend when done.
func NewMemoryRepositories() (storage.RecordRepository, storage.CategoryRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	recordRepo, err := NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	return recordRepo, NewCategoryRepository(backend), backend, nil
}
