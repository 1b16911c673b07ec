// Package session tracks the level being edited: its name, its document,
// and the authoring surface bound to it.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/gridpaint/authoring"
	"github.com/milk9111/gridpaint/level"
)

const DefaultName = "untitled"

var ErrDirty = errors.New("session: unsaved changes")

// Session owns the open document. Swapping documents rebinds the surface
// and notifies OnSwap.
type Session struct {
	Store   *level.FileStore
	Surface *authoring.Surface

	// OnSwap runs after the open document is replaced.
	OnSwap func(doc *level.Document)

	name string
	doc  *level.Document
}

func New(store *level.FileStore) *Session {
	if store == nil {
		store = level.NewFileStore("")
	}
	return &Session{Store: store, Surface: authoring.NewSurface(nil), name: DefaultName}
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Document() *level.Document {
	return s.doc
}

// Adopt makes doc the open document under name.
func (s *Session) Adopt(name string, doc *level.Document) {
	s.name = cleanName(name)
	s.doc = doc
	s.Surface.SetDocument(doc)
	if s.OnSwap != nil {
		s.OnSwap(doc)
	}
}

// Open loads name from the store, creating it when missing.
func (s *Session) Open(name string) error {
	name = cleanName(name)
	doc, err := s.Store.LoadOrCreate(name)
	if err != nil {
		return fmt.Errorf("session: open %s: %w", name, err)
	}
	s.Adopt(name, doc)
	log.Printf("Opened level %s (%d tiles)", name, doc.Len())
	return nil
}

// OpenSeeded opens name from the store. When the file does not exist and
// seed knows the name, the seeded document is written into the store first.
// Files that exist but fail to load are reported, never replaced.
func (s *Session) OpenSeeded(name string, seed func(name string) (*level.Document, error)) error {
	name = cleanName(name)
	doc, err := s.Store.Load(name)
	switch {
	case err == nil:
		s.Adopt(name, doc)
		log.Printf("Opened level %s (%d tiles)", name, doc.Len())
		return nil
	case !errors.Is(err, level.ErrNotFound):
		return fmt.Errorf("session: open %s: %w", name, err)
	}
	if seed != nil {
		if doc, serr := seed(name); serr == nil && doc != nil {
			s.Adopt(name, doc)
			log.Printf("Copied sample level %s into %s", name, s.Store.Dir)
			return s.Save("")
		}
	}
	return s.Open(name)
}

// Apply runs fn against a copy of the open document and adopts the copy only
// when fn succeeds.
func (s *Session) Apply(fn func(doc *level.Document) error) error {
	if s.doc == nil {
		return fmt.Errorf("session: apply: %w", level.ErrNoDocument)
	}
	work := s.doc.Clone()
	if s.doc.Dirty() {
		work.MarkDirty()
	}
	if err := fn(work); err != nil {
		return err
	}
	s.Adopt(s.name, work)
	return nil
}

// NewLevel replaces the open document with an empty one. It is not written
// until Save.
func (s *Session) NewLevel(name string) {
	doc := level.New()
	doc.MarkDirty()
	s.Adopt(name, doc)
}

// Save writes the open document. A non-empty name renames the session first.
func (s *Session) Save(name string) error {
	if s.doc == nil {
		return fmt.Errorf("session: save: %w", level.ErrNoDocument)
	}
	if strings.TrimSpace(name) != "" {
		s.name = cleanName(name)
	}
	return s.Store.Save(s.name, s.doc)
}

// Matches reports whether path is the open level's file.
func (s *Session) Matches(path string) bool {
	return filepath.Base(path) == filepath.Base(s.Store.Path(s.name))
}

// Reload re-reads the open level from disk and reports whether it differed
// from the open document. It refuses with ErrDirty when local edits would be
// lost.
func (s *Session) Reload() (bool, error) {
	if s.doc != nil && s.doc.Dirty() {
		return false, ErrDirty
	}
	doc, err := s.Store.Load(s.name)
	if err != nil {
		return false, fmt.Errorf("session: reload %s: %w", s.name, err)
	}
	if s.doc != nil && sameContent(s.doc, doc) {
		return false, nil
	}
	s.Adopt(s.name, doc)
	return true, nil
}

func sameContent(a, b *level.Document) bool {
	da, errA := level.Marshal(a)
	db, errB := level.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(da, db)
}

// Copy returns the open document in its JSON file format.
func (s *Session) Copy() ([]byte, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("session: copy: %w", level.ErrNoDocument)
	}
	return level.Marshal(s.doc)
}

// Paste replaces the open document with one decoded from data. The result is
// dirty so it has to be saved explicitly.
func (s *Session) Paste(data []byte) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("session: paste: empty clipboard")
	}
	doc, err := level.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("session: paste: %w", err)
	}
	doc.MarkDirty()
	s.Adopt(s.name, doc)
	return nil
}

// Import converts a Tiled map and opens it under the map's base name.
func (s *Session) Import(fsys fs.FS, tmxPath string) error {
	doc, err := level.ImportTMX(fsys, tmxPath)
	if err != nil {
		return fmt.Errorf("session: import: %w", err)
	}
	doc.MarkDirty()
	s.Adopt(strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)), doc)
	log.Printf("Imported %s (%d tiles)", tmxPath, doc.Len())
	return nil
}

func cleanName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(filepath.Base(name), ".json")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return DefaultName
	}
	return name
}
