package api

import (
	"Go2FlowDigest/internal/model"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/golang-lru/v2"
)

// ErrNotFound is returned when no digest matches the request.
var ErrNotFound = errors.New("digest not found")

// Store serves digest documents out of the engine's output directory.
// Parsed documents are held in an LRU cache; digest files are written once
// and never rewritten, so cached entries cannot go stale.
type Store struct {
	dir   string
	cache *lru.Cache[string, *model.Digest]
}

// NewStore creates a store over the given digest directory.
func NewStore(dir string, cacheSize int) (*Store, error) {
	cache, err := lru.New[string, *model.Digest](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{dir: dir, cache: cache}, nil
}

// List returns the digest file names in the store directory. File names
// embed the generation timestamp, so lexical order is generation order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read digest directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// Load returns the parsed digest with the given file name. Only bare file
// names are accepted; anything path-like is treated as not found.
func (s *Store) Load(name string) (*model.Digest, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, ErrNotFound
	}

	if doc, ok := s.cache.Get(name); ok {
		return doc, nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read digest file: %w", err)
	}

	var doc model.Digest
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse digest file: %w", err)
	}

	s.cache.Add(name, &doc)
	return &doc, nil
}

// Latest returns the newest digest and its file name.
func (s *Store) Latest() (string, *model.Digest, error) {
	names, err := s.List()
	if err != nil {
		return "", nil, err
	}
	if len(names) == 0 {
		return "", nil, ErrNotFound
	}

	name := names[len(names)-1]
	doc, err := s.Load(name)
	return name, doc, err
}
