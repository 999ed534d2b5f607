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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/certsearch"
	"github.com/poiesic/certsearch/config"
	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/dispatch"
	"github.com/poiesic/certsearch/loader"
	"github.com/poiesic/certsearch/search"
	"github.com/poiesic/certsearch/translate"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	catalogFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "catalog",
			Usage: "Path to the YAML catalog snapshot",
		},
		&cli.StringFlag{
			Name:  "cache",
			Usage: "Directory of an on-disk catalog cache (optional)",
		},
		&cli.StringFlag{
			Name:  "language",
			Usage: "Preferred language for translations and URLs",
		},
		&cli.StringFlag{
			Name:  "locales",
			Usage: "Directory of YAML message files",
		},
		&cli.StringFlag{
			Name:  "base-path",
			Usage: "URL segment certification pages live under",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of suggestions (1-5)",
		},
	}

	return &cli.App{
		Name:   "certsearch",
		Usage:  "Fuzzy search over certification catalogs",
		Reader: stdin,
		Writer: stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML configuration file",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Print ranked suggestions for a query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     catalogFlags,
			},
			{
				Name:   "import",
				Usage:  "Load a YAML catalog into an on-disk cache",
				Action: importCommand,
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records written per transaction",
						Value: loader.DefaultBatchSize,
					},
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "Remove cached records before importing",
					},
				}, catalogFlags...),
			},
			{
				Name:   "interactive",
				Usage:  "Treat each stdin line as the search box contents after a keystroke",
				Action: interactiveCommand,
				Flags: append([]cli.Flag{
					&cli.DurationFlag{
						Name:  "debounce",
						Usage: "Quiet period before a query runs",
					},
				}, catalogFlags...),
			},
			{
				Name:   "config",
				Usage:  "Print the effective configuration as TOML",
				Action: configCommand,
				Flags:  catalogFlags,
			},
		},
	}
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	env, err := openEnvironment(ctx, cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	results, err := env.searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := c.App.Writer
	if len(results) == 0 {
		fmt.Fprintln(out, "No matches.")
		if acronym, ok, err := env.searcher.DidYouMean(ctx, query); err == nil && ok {
			fmt.Fprintf(out, "Did you mean %s?\n", acronym)
		}
		return nil
	}

	printSuggestions(out, results)
	return nil
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.Catalog == "" {
		return fmt.Errorf("catalog path is required")
	}
	if cfg.Cache == "" {
		return fmt.Errorf("cache directory is required")
	}

	snap, err := loader.LoadSnapshot(cfg.Catalog)
	if err != nil {
		return err
	}

	catalog, err := certsearch.OpenCatalog(cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer catalog.Close()

	fmt.Fprintf(os.Stderr, "Catalog: %s\n", cfg.Catalog)
	fmt.Fprintf(os.Stderr, "Cache: %s\n", cfg.Cache)
	fmt.Fprintln(os.Stderr)

	stats, err := catalog.Import(ctx, snap,
		loader.WithBatchSize(c.Int("batch-size")),
		loader.WithReplace(c.Bool("replace")),
		loader.WithProgress(os.Stderr),
	)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Imported %d records (%d categories) in %d batches\n",
		stats.Records, stats.Categories, stats.Batches)
	return nil
}

func interactiveCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("debounce") {
		cfg.Debounce = c.Duration("debounce")
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	env, err := openEnvironment(ctx, cfg)
	if err != nil {
		return err
	}
	defer env.Close()

	out := c.App.Writer
	d, err := env.catalog.NewDispatcher(env.searcher, func(r dispatch.Result) {
		if r.Err != nil {
			fmt.Fprintf(out, "#%d %q: error: %v\n", r.Seq, r.Query, r.Err)
			return
		}
		fmt.Fprintf(out, "#%d %q: %d suggestions\n", r.Seq, r.Query, len(r.Suggestions))
		printSuggestions(out, r.Suggestions)
	}, cfg.DispatchOptions()...)
	if err != nil {
		return err
	}
	defer d.Close()

	scanner := bufio.NewScanner(c.App.Reader)
	for scanner.Scan() {
		if _, err := d.Submit(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	d.Flush()
	return nil
}

func configCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(data)
	return err
}

// loadConfig merges the config file, if any, with command flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.IsSet("catalog") {
		cfg.Catalog = c.String("catalog")
	}
	if c.IsSet("cache") {
		cfg.Cache = c.String("cache")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}
	if c.IsSet("locales") {
		cfg.LocalesDir = c.String("locales")
	}
	if c.IsSet("base-path") {
		cfg.BasePath = c.String("base-path")
	}
	if c.IsSet("limit") {
		cfg.Limit = c.Int("limit")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environment bundles an open catalog and a searcher configured for it.
type environment struct {
	catalog  *certsearch.Catalog
	searcher *search.Searcher
}

func (e *environment) Close() error {
	return e.catalog.Close()
}

// openEnvironment opens the cache named in cfg, or an in-memory catalog, and
// imports the snapshot when the catalog is empty.
func openEnvironment(ctx context.Context, cfg *config.Config) (*environment, error) {
	var snap *loader.Snapshot
	if cfg.Catalog != "" {
		var err error
		if snap, err = loader.LoadSnapshot(cfg.Catalog); err != nil {
			return nil, err
		}
	}

	catalog, err := certsearch.OpenCatalog(cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}

	count, err := catalog.Count(ctx)
	if err != nil {
		catalog.Close()
		return nil, err
	}
	if count == 0 {
		if snap == nil {
			catalog.Close()
			return nil, fmt.Errorf("catalog path is required when the cache is empty")
		}
		start := time.Now()
		if _, err := catalog.Import(ctx, snap); err != nil {
			catalog.Close()
			return nil, fmt.Errorf("import failed: %w", err)
		}
		slog.Debug("catalog loaded", "records", len(snap.Records), "elapsed", time.Since(start))
	} else if snap != nil {
		slog.Warn("cache already populated, catalog records not loaded (use import --replace to refresh it)",
			"cache", cfg.Cache, "catalog", cfg.Catalog, "records", count)
	}

	tr, err := translator(cfg)
	if err != nil {
		catalog.Close()
		return nil, err
	}

	opts := append(cfg.SearchOptions(), search.WithTranslator(tr))
	if snap != nil {
		opts = append(opts, search.WithSemanticMap(snap.SemanticMap()))
	}
	searcher, err := catalog.NewSearcher(opts...)
	if err != nil {
		catalog.Close()
		return nil, err
	}

	return &environment{catalog: catalog, searcher: searcher}, nil
}

func translator(cfg *config.Config) (core.TranslateFunc, error) {
	if cfg.LocalesDir == "" {
		return core.IdentityTranslate, nil
	}

	bundle, err := translate.NewBundle(translate.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	loaded, err := bundle.LoadDir(cfg.LocalesDir)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded translations", "files", loaded, "languages", bundle.Languages())

	if cfg.Language == "" {
		return bundle.Func(), nil
	}
	return bundle.Func(cfg.Language), nil
}

func printSuggestions(w io.Writer, results []core.Suggestion) {
	for i, s := range results {
		title := search.Highlight(s.Title, s.Query, "[", "]")
		fmt.Fprintf(w, "%d. %s (%s, %d) %s\n", i+1, title, s.MatchType, s.Score, s.URL)
		if s.Category != "" {
			fmt.Fprintf(w, "   %s\n", s.Category)
		}
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
