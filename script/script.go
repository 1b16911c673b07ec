// Package script runs tengo level-generation scripts against a document.
package script

import (
	"context"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/prefabs"
)

// Stats counts what a script changed.
type Stats struct {
	Placed  int
	Removed int
}

// Run compiles and runs src with the level builtins bound to doc.
//
// Scripts see place(x, y, id), remove(x, y), tile(x, y), grid(), the
// variable name and set_name(s).
func Run(ctx context.Context, doc *level.Document, src []byte) (Stats, error) {
	var stats Stats
	if doc == nil {
		return stats, fmt.Errorf("script: run: %w", level.ErrNoDocument)
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, fn := range builtins(doc, &stats) {
		if err := s.Add(name, fn); err != nil {
			return stats, fmt.Errorf("script: bind %s: %w", name, err)
		}
	}
	if err := s.Add("name", doc.Name); err != nil {
		return stats, fmt.Errorf("script: bind name: %w", err)
	}

	if _, err := s.RunContext(ctx); err != nil {
		return stats, fmt.Errorf("script: run: %w", err)
	}
	return stats, nil
}

// RunFile loads a script through prefabs.LoadScript and runs it.
func RunFile(ctx context.Context, doc *level.Document, name string) (Stats, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return Stats{}, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Run(ctx, doc, src)
}

func builtins(doc *level.Document, stats *Stats) map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"place": {Name: "place", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 3 {
				return nil, tengo.ErrWrongNumArguments
			}
			cell, err := cellArg("place", args[0], args[1])
			if err != nil {
				return nil, err
			}
			id, ok := tengo.ToString(args[2])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "id", Expected: "string", Found: args[2].TypeName()}
			}
			doc.PlaceTile(cell, strings.TrimSpace(id))
			stats.Placed++
			return tengo.UndefinedValue, nil
		}},
		"remove": {Name: "remove", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			cell, err := cellArg("remove", args[0], args[1])
			if err != nil {
				return nil, err
			}
			if doc.RemoveTile(cell) {
				stats.Removed++
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
		"tile": {Name: "tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			cell, err := cellArg("tile", args[0], args[1])
			if err != nil {
				return nil, err
			}
			t, ok := doc.FindTileAt(cell)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return &tengo.String{Value: t.TileID}, nil
		}},
		"grid": {Name: "grid", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			w, h := doc.GridSize()
			return &tengo.Array{Value: []tengo.Object{
				&tengo.Int{Value: int64(w)},
				&tengo.Int{Value: int64(h)},
			}}, nil
		}},
		"set_name": {Name: "set_name", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, ok := tengo.ToString(args[0])
			if !ok || strings.TrimSpace(name) == "" {
				return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "non-empty string", Found: args[0].TypeName()}
			}
			if doc.Name != name {
				doc.Name = name
				doc.MarkDirty()
			}
			return tengo.UndefinedValue, nil
		}},
	}
}

func cellArg(fn string, xo, yo tengo.Object) (level.Cell, error) {
	x, ok := tengo.ToInt(xo)
	if !ok {
		return level.Cell{}, tengo.ErrInvalidArgumentType{Name: fn + " x", Expected: "int", Found: xo.TypeName()}
	}
	y, ok := tengo.ToInt(yo)
	if !ok {
		return level.Cell{}, tengo.ErrInvalidArgumentType{Name: fn + " y", Expected: "int", Found: yo.TypeName()}
	}
	return level.Cell{X: x, Y: y}, nil
}
