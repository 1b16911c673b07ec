// Package settings persists editor preferences in the per-user data
// directory through gdata.
package settings

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	AppName    = "gridpaint"
	editorItem = "editor"
)

// Editor holds the preferences restored on editor start-up.
type Editor struct {
	LastLevel   string `json:"lastLevel"`
	LastKind    string `json:"lastKind"`
	Interpolate bool   `json:"interpolate"`
	ShowGrid    bool   `json:"showGrid"`
}

// Defaults returns the preferences used when nothing was saved.
func Defaults() Editor {
	return Editor{LastLevel: "demo", ShowGrid: true}
}

// ItemStore is the subset of *gdata.Manager this package uses.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes Editor preferences.
type Store struct {
	items ItemStore
}

// Open opens the gdata manager for the app. On failure it logs and returns
// a Store that keeps defaults and drops saves.
func Open() *Store {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("Warning: Could not initialize settings: %v", err)
		return &Store{}
	}
	return &Store{items: m}
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns saved preferences, or Defaults when none exist or they
// cannot be read.
func (s *Store) Load() Editor {
	prefs := Defaults()
	if s == nil || s.items == nil {
		return prefs
	}
	data, err := s.items.LoadItem(editorItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return prefs
	}
	if data == nil {
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return Defaults()
	}
	return prefs
}

// Save writes prefs. It is a no-op when the store never opened.
func (s *Store) Save(prefs Editor) error {
	if s == nil || s.items == nil {
		return nil
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}
	if err := s.items.SaveItem(editorItem, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}
