package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnknownTemplate = errors.New("prefabs: unknown template")

type ColliderKind string

const (
	ColliderNone   ColliderKind = "none"
	ColliderSolid  ColliderKind = "solid"
	ColliderSensor ColliderKind = "sensor"
)

// TileTemplate describes how an instantiated tile looks and collides.
type TileTemplate struct {
	Name        string       `yaml:"name"`
	Color       string       `yaml:"color"`
	Size        float64      `yaml:"size"`
	Collider    ColliderKind `yaml:"collider"`
	RenderLayer int          `yaml:"render_layer"`
}

// RGBA parses Color, defaulting to opaque magenta when it is malformed.
func (t TileTemplate) RGBA() color.RGBA {
	return ParseHexColor(t.Color)
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTemplate loads one tile template, filling defaults.
func LoadTemplate(name string) (*TileTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrUnknownTemplate
	}
	spec, err := LoadSpec[TileTemplate](name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownTemplate, err)
	}
	if spec.Name == "" {
		spec.Name = strings.TrimSuffix(cleanPrefabPath(name), ".yaml")
	}
	if spec.Size <= 0 {
		spec.Size = 1
	}
	switch spec.Collider {
	case ColliderSolid, ColliderSensor, ColliderNone:
	case "":
		spec.Collider = ColliderNone
	default:
		return nil, fmt.Errorf("prefabs: %s: unknown collider %q", name, spec.Collider)
	}
	return &spec, nil
}

// LoadTemplates loads every embedded template keyed by name.
func LoadTemplates() (map[string]*TileTemplate, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	out := make(map[string]*TileTemplate, len(names))
	for _, n := range names {
		t, err := LoadTemplate(n)
		if err != nil {
			return nil, err
		}
		out[t.Name] = t
	}
	return out, nil
}

// ParseHexColor parses #rrggbb or #rrggbbaa.
func ParseHexColor(s string) color.RGBA {
	fallback := color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	var r, g, b, a uint32
	a = 0xff
	switch {
	case len(s) == 7 && s[0] == '#':
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return fallback
		}
	case len(s) == 9 && s[0] == '#':
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fallback
		}
	default:
		return fallback
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}
