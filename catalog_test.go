package certsearch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/dispatch"
	"github.com/poiesic/certsearch/loader"
	"github.com/poiesic/certsearch/search"
)

func loadTestSnapshot(t *testing.T) *loader.Snapshot {
	t.Helper()
	snap, err := loader.LoadSnapshot(filepath.Join("loader", "testdata", "catalog.yaml"))
	require.NoError(t, err)
	return snap
}

func TestOpenCatalog(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		catalog, err := OpenCatalog("")
		require.NoError(t, err)
		require.NotNil(t, catalog)
		defer catalog.Close()

		assert.NotNil(t, catalog.RecordRepository())
		assert.NotNil(t, catalog.CategoryRepository())
		assert.NotNil(t, catalog.logger)
	})

	t.Run("on disk", func(t *testing.T) {
		catalog, err := OpenCatalog(filepath.Join(t.TempDir(), "catalog"))
		require.NoError(t, err)
		assert.NoError(t, catalog.Close())
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to open a catalog at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		catalog, err := OpenCatalog(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, catalog)
	})
}

func TestCatalog_ImportAndSearch(t *testing.T) {
	catalog, err := OpenCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	ctx := context.Background()
	stats, err := catalog.Import(ctx, loadTestSnapshot(t), loader.WithBatchSize(2))
	require.NoError(t, err)
	assert.Equal(t, 9, stats.Records)
	assert.Equal(t, 5, stats.Batches)

	count, err := catalog.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, count)

	searcher, err := catalog.NewSearcher(search.WithLanguage("en"))
	require.NoError(t, err)

	results, err := searcher.Search(ctx, "cka")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "cka", results[0].ID)
	assert.Equal(t, 100, results[0].Score)
	assert.Equal(t, core.MatchExact, results[0].MatchType)
	assert.Equal(t, "/en/certifications/cka", results[0].URL)
	assert.Equal(t, []string{"intermediate", "cloud-native", "certification"}, results[0].Tags)
}

func TestCatalog_Reopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	ctx := context.Background()
	snap := loadTestSnapshot(t)

	catalog, err := OpenCatalog(dir)
	require.NoError(t, err)
	_, err = catalog.Import(ctx, snap)
	require.NoError(t, err)
	require.NoError(t, catalog.Close())

	reopened, err := OpenCatalog(dir)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.RecordRepository().ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, len(snap.Records))
	for i := range records {
		assert.Equal(t, snap.Records[i].ID, records[i].ID)
	}
}

func TestCatalog_NewDispatcher(t *testing.T) {
	catalog, err := OpenCatalog("")
	require.NoError(t, err)
	defer catalog.Close()

	ctx := context.Background()
	_, err = catalog.Import(ctx, loadTestSnapshot(t))
	require.NoError(t, err)

	searcher, err := catalog.NewSearcher()
	require.NoError(t, err)

	t.Run("searcher required", func(t *testing.T) {
		_, err := catalog.NewDispatcher(nil, func(dispatch.Result) {})
		assert.ErrorIs(t, err, ErrSearcherRequired)
	})

	t.Run("latest query wins", func(t *testing.T) {
		var mu sync.Mutex
		var last dispatch.Result
		d, err := catalog.NewDispatcher(searcher, func(r dispatch.Result) {
			mu.Lock()
			last = r
			mu.Unlock()
		}, dispatch.WithDelay(10*time.Millisecond))
		require.NoError(t, err)
		defer d.Close()

		for _, q := range []string{"c", "ci", "cis", "ciss"} {
			_, err := d.Submit(q)
			require.NoError(t, err)
		}
		d.Flush()

		mu.Lock()
		defer mu.Unlock()
		require.NoError(t, last.Err)
		assert.Equal(t, "ciss", last.Query)
		require.NotEmpty(t, last.Suggestions)
		assert.Equal(t, "cissp", last.Suggestions[0].ID)
	})
}
