package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/gridpaint/level"
)

//go:embed *.json
var LevelsFS embed.FS

// Load reads a level by name, preferring levels/<name> on disk over the
// embedded copy so edits show up without a rebuild.
func Load(name string) (*level.Document, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
		if err != nil {
			return nil, fmt.Errorf("read level: %w", err)
		}
	}
	doc, err := level.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", clean, err)
	}
	return doc, nil
}

// Names lists the embedded level names without extension.
func Names() []string {
	matches, _ := fs.Glob(LevelsFS, "*.json")
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".json"))
	}
	sort.Strings(names)
	return names
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
