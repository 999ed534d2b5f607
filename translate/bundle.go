// Package translate resolves description and category keys to display text
// using go-i18n message files.
//
// Message files are YAML documents named after their language, e.g.
// "de.yaml" or "active.de.yaml", mapping flat dotted keys to text:
//
//	"certifications.cka.description": "Kubernetes-Cluster administrieren."
//	"categories.cloud-native": "Cloud Native"
package translate

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/poiesic/certsearch/core"
)

// DefaultLanguage is the bundle language used when none is configured.
const DefaultLanguage = "en"

// Bundle holds translations for every loaded language.
type Bundle struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	logger          *slog.Logger
}

// Option configures a Bundle.
type Option func(*Bundle) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBundle creates an empty bundle whose fallback language is defaultLang.
func NewBundle(defaultLang string, opts ...Option) (*Bundle, error) {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}
	tag, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, defaultLang, err)
	}

	b := &Bundle{
		bundle:          i18n.NewBundle(tag),
		defaultLanguage: tag,
		logger:          slog.Default(),
	}
	b.bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	b.bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	// Apply options
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// LoadFile loads one message file. The language comes from the file name.
func (b *Bundle) LoadFile(path string) error {
	if _, err := b.bundle.LoadMessageFile(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
	}
	b.logger.Debug("loaded message file", "path", path)
	return nil
}

// LoadDir loads every *.yaml and *.yml file in dir and returns how many
// were loaded.
func (b *Bundle) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
		default:
			continue
		}
		if err := b.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return loaded, err
		}
		loaded++
	}
	return loaded, nil
}

// AddMessages registers messages for lang directly.
func (b *Bundle) AddMessages(lang string, messages map[string]string) error {
	tag, err := language.Parse(lang)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidLanguage, lang, err)
	}

	msgs := make([]*i18n.Message, 0, len(messages))
	for _, id := range slices.Sorted(maps.Keys(messages)) {
		msgs = append(msgs, &i18n.Message{ID: id, Other: messages[id]})
	}
	return b.bundle.AddMessages(tag, msgs...)
}

// Languages returns the tags of every language with messages, as strings.
func (b *Bundle) Languages() []string {
	tags := b.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// Func returns a translation function for the preferred languages, best
// first. Keys missing in the matched language fall back to the bundle's
// default language, then to the key itself, so the function never fails.
func (b *Bundle) Func(langs ...string) core.TranslateFunc {
	preferred := i18n.NewLocalizer(b.bundle, langs...)
	fallback := i18n.NewLocalizer(b.bundle, b.defaultLanguage.String())

	return func(key string) string {
		if key == "" {
			return key
		}
		msg, err := preferred.Localize(&i18n.LocalizeConfig{MessageID: key})
		if err == nil {
			return msg
		}
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			b.logger.Debug("translation failed", "key", key, "err", err)
		}
		if msg, err := fallback.Localize(&i18n.LocalizeConfig{MessageID: key}); err == nil {
			return msg
		}
		return key
	}
}
