package dict

import (
	"log/slog"
	"math/rand/v2"
	"sort"
)

// Store caches loaded categories. Each category is read from disk at
// most once and is read-only afterwards. The program is single
// threaded, so the cache needs no locking.
type Store struct {
	dir    string
	cache  map[Category]map[string]string
	logger *slog.Logger
}

// NewStore creates a store over the given dictionary directory.
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		dir:    dir,
		cache:  make(map[Category]map[string]string),
		logger: logger,
	}
}

// Dir returns the dictionary directory the store reads from.
func (s *Store) Dir() string {
	return s.dir
}

// Entries returns the mapping for a category, loading it on first use.
func (s *Store) Entries(cat Category) (map[string]string, error) {
	if entries, ok := s.cache[cat]; ok {
		return entries, nil
	}
	entries, err := Load(s.dir, cat)
	if err != nil {
		s.logger.Error("dictionary load failed", "category", cat, "error", err)
		return nil, err
	}
	s.logger.Info("dictionary loaded", "category", cat, "entries", len(entries))
	s.cache[cat] = entries
	return entries, nil
}

// Pick returns a random entry from the category.
func (s *Store) Pick(cat Category) (Entry, error) {
	entries, err := s.Entries(cat)
	if err != nil {
		return Entry{}, err
	}
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)
	word := words[rand.IntN(len(words))]
	return Entry{Word: word, Definition: entries[word]}, nil
}
