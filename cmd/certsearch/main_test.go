package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/certsearch/config"
)

var testCatalog = filepath.Join("..", "..", "loader", "testdata", "catalog.yaml")

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"certsearch"}, args...))
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	t.Run("acronym query", func(t *testing.T) {
		out, err := run(t, "", "search", "--catalog", testCatalog, "cka")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.NotEmpty(t, lines)
		assert.Equal(t, "1. [CKA] - Certified Kubernetes Administrator (exact, 100) /certifications/cka", lines[0])
	})

	t.Run("language and translations", func(t *testing.T) {
		locales := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(locales, "de.yaml"),
			[]byte(`"categories.security": "Sicherheit"`+"\n"), 0o644))

		out, err := run(t, "", "search", "--catalog", testCatalog, "--language", "de", "--locales", locales, "cissp")
		require.NoError(t, err)
		assert.Contains(t, out, "/de/certifications/cissp")
		assert.Contains(t, out, "Sicherheit")
	})

	t.Run("no matches without a close acronym", func(t *testing.T) {
		out, err := run(t, "", "search", "--catalog", testCatalog, "--limit", "1", "qzv")
		require.NoError(t, err)
		assert.Equal(t, "No matches.\n", out)
	})

	t.Run("query is required", func(t *testing.T) {
		_, err := run(t, "", "search", "--catalog", testCatalog)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("catalog is required without cache", func(t *testing.T) {
		_, err := run(t, "", "search", "cka")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, err := run(t, "", "search", "--catalog", testCatalog, "--limit", "9", "cka")
		require.Error(t, err)
	})
}

func TestImportCommand(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "cache")

	out, err := run(t, "", "import", "--catalog", testCatalog, "--cache", cache, "--batch-size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 9 records (8 categories) in 3 batches")

	t.Run("search from cache", func(t *testing.T) {
		out, err := run(t, "", "search", "--cache", cache, "ccna")
		require.NoError(t, err)
		assert.Contains(t, out, "1. [CCNA] - Cisco Certified Network Associate")
	})

	t.Run("second import needs replace", func(t *testing.T) {
		_, err := run(t, "", "import", "--catalog", testCatalog, "--cache", cache)
		require.Error(t, err)

		_, err = run(t, "", "import", "--catalog", testCatalog, "--cache", cache, "--replace")
		require.NoError(t, err)
	})

	t.Run("populated cache wins over catalog", func(t *testing.T) {
		var logs bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
		defer slog.SetDefault(previous)

		cfg := config.NewConfig(config.WithCache(cache), config.WithCatalog(testCatalog))
		env, err := openEnvironment(context.Background(), cfg)
		require.NoError(t, err)
		defer env.Close()

		assert.Contains(t, logs.String(), "level=WARN")
		assert.Contains(t, logs.String(), "catalog records not loaded")
	})

	t.Run("cache is required", func(t *testing.T) {
		_, err := run(t, "", "import", "--catalog", testCatalog)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cache")
	})
}

func TestInteractiveCommand(t *testing.T) {
	out, err := run(t, "c\nci\ncis\ncissp\n", "interactive", "--catalog", testCatalog, "--debounce", "1h")
	require.NoError(t, err)

	assert.Contains(t, out, `"cissp":`, "final query runs on flush")
	assert.NotContains(t, out, `"ci":`, "superseded query must not run")
	assert.NotContains(t, out, `"cis":`, "superseded query must not run")
	assert.Contains(t, out, "[CISSP] - Certified Information Systems Security Professional")
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certsearch.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"de\"\nlimit = 3\n"), 0o644))

	out, err := run(t, "", "--config", path, "config", "--base-path", "zertifikate")
	require.NoError(t, err)
	assert.Regexp(t, `language = ['"]de['"]`, out)
	assert.Contains(t, out, "limit = 3")
	assert.Regexp(t, `base_path = ['"]zertifikate['"]`, out)
}

func TestSetupLogger(t *testing.T) {
	t.Run("invalid log level", func(t *testing.T) {
		_, err := run(t, "", "--log-level", "loud", "config")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("valid log level", func(t *testing.T) {
		_, err := run(t, "", "--log-level", "DEBUG", "config")
		assert.NoError(t, err)
	})
}
