package level

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	ErrNoDocument = errors.New("level: no document")
	ErrNotFound   = errors.New("level: not found")
)

// FileStore persists documents as JSON files under Dir.
type FileStore struct {
	Dir string
}

// NewFileStore returns a store rooted at dir ("levels" when empty).
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "levels"
	}
	return &FileStore{Dir: dir}
}

// Path resolves a level name to its file path, appending ".json" when the
// name has no extension.
func (s *FileStore) Path(name string) string {
	base := filepath.Base(name)
	if filepath.Ext(base) == "" {
		base += ".json"
	}
	return filepath.Join(s.Dir, base)
}

func (s *FileStore) Load(name string) (*Document, error) {
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level: load %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("level: load %s: %w", path, err)
	}
	return Unmarshal(data)
}

// Save writes the document and marks it clean.
func (s *FileStore) Save(name string, d *Document) error {
	if d == nil {
		return ErrNoDocument
	}
	data, err := Marshal(d)
	if err != nil {
		return fmt.Errorf("level: marshal %s: %w", name, err)
	}
	path := s.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("level: save %s: %w", path, err)
	}
	d.MarkClean()
	log.Printf("Saved level: %s", path)
	return nil
}

// Create saves a new empty document under name and returns it.
func (s *FileStore) Create(name string) (*Document, error) {
	d := New()
	if err := s.Save(name, d); err != nil {
		return nil, err
	}
	log.Printf("Created level: %s", s.Path(name))
	return d, nil
}

// LoadOrCreate loads name, creating a default document when it does not exist.
func (s *FileStore) LoadOrCreate(name string) (*Document, error) {
	d, err := s.Load(name)
	if errors.Is(err, ErrNotFound) {
		return s.Create(name)
	}
	return d, err
}

// List returns the sorted level names (without extension) in Dir.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("level: list %s: %w", s.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// SaveAll saves every dirty document in docs, keyed by name. It keeps going
// after a failure and returns the joined errors.
func (s *FileStore) SaveAll(docs map[string]*Document) error {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		d := docs[name]
		if !d.Dirty() {
			continue
		}
		if err := s.Save(name, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
