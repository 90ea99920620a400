package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ppiankov/casecalc/internal/cache"
	"github.com/ppiankov/casecalc/internal/logging"
)

// Registry resolves rule books by source and memoizes parsed results.
// An empty path selects the embedded book.
type Registry struct {
	cache  cache.Cache
	logger logging.Logger
}

// NewRegistry creates a registry backed by c
func NewRegistry(c cache.Cache, logger logging.Logger) *Registry {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Registry{cache: c, logger: logger}
}

// Book returns the rule book for path, parsing it at most once per file version
func (r *Registry) Book(path string) (*Book, error) {
	if path == "" {
		r.logger.Debug("using embedded rule book")
		return Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve rule book path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat rule book: %w", err)
	}

	// Keyed on modification time so edits between batch cases are picked up.
	key := cache.Key("rules", abs, strconv.FormatInt(info.ModTime().UnixNano(), 10))
	if v, ok := r.cache.Get(key); ok {
		r.logger.Debug("rule book cache hit", "path", abs)
		return v.(*Book), nil
	}

	b, err := LoadFile(abs)
	if err != nil {
		return nil, err
	}
	r.cache.Set(key, b, 0)
	r.logger.Debug("loaded rule book", "path", abs, "version", b.Version, "jurisdictions", len(b.PersonalInjurySOL), "cached_books", r.cache.Len())

	return b, nil
}
