package playback

import (
	"errors"
	"image/color"
	"testing"

	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/palette"
)

type fakeInstance struct {
	template  string
	pos       Vec2
	destroyed int
}

func (f *fakeInstance) Destroy() { f.destroyed++ }

type fakeSpawner struct {
	spawned []*fakeInstance
	fail    map[string]bool
}

func (s *fakeSpawner) Spawn(template string, pos Vec2) (Instance, error) {
	if s.fail[template] {
		return nil, errors.New("boom")
	}
	inst := &fakeInstance{template: template, pos: pos}
	s.spawned = append(s.spawned, inst)
	return inst, nil
}

func sampleDoc() *level.Document {
	d := level.New()
	d.PlaceTile(level.Cell{X: 0, Y: 0}, "ground")
	d.PlaceTile(level.Cell{X: 1, Y: 0}, "WALL")
	d.PlaceTile(level.Cell{X: 2, Y: 3}, "coin")
	d.PlaceTile(level.Cell{X: 3, Y: 3}, "lava")
	d.PlaceTile(level.Cell{X: 4, Y: 3}, "")
	return d
}

func TestInstantiatorLoad(t *testing.T) {
	sp := &fakeSpawner{}
	in := NewInstantiator(sampleDoc(), sp)
	if err := in.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if in.Count() != 3 || len(sp.spawned) != 3 {
		t.Fatalf("expected 3 instances, got count=%d spawned=%d", in.Count(), len(sp.spawned))
	}

	want := []struct {
		template string
		pos      Vec2
	}{
		{"ground_tile", Vec2{0.5, 0.5}},
		{"wall_tile", Vec2{1.5, 0.5}},
		{"coin", Vec2{2.5, 3.5}},
	}
	for i, w := range want {
		got := sp.spawned[i]
		if got.template != w.template || got.pos != w.pos {
			t.Fatalf("instance %d: expected %s at %v, got %s at %v", i, w.template, w.pos, got.template, got.pos)
		}
	}
}

func TestInstantiatorClearOwnsOnlyItsInstances(t *testing.T) {
	doc := sampleDoc()
	sp := &fakeSpawner{}
	in := NewInstantiator(doc, sp)
	if err := in.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	first := append([]*fakeInstance(nil), sp.spawned...)

	// edits after loading must not change what Clear tears down
	doc.RemoveTile(level.Cell{X: 0, Y: 0})
	doc.PlaceTile(level.Cell{X: 9, Y: 9}, "wall")

	in.Clear()
	if in.Count() != 0 {
		t.Fatalf("expected no instances after clear, got %d", in.Count())
	}
	for i, inst := range first {
		if inst.destroyed != 1 {
			t.Fatalf("instance %d destroyed %d times", i, inst.destroyed)
		}
	}
	in.Clear()
	for i, inst := range first {
		if inst.destroyed != 1 {
			t.Fatalf("second clear destroyed instance %d again", i)
		}
	}
}

func TestInstantiatorReloadReleasesPreviousBatch(t *testing.T) {
	sp := &fakeSpawner{}
	in := NewInstantiator(sampleDoc(), sp)
	_ = in.Load()
	first := append([]*fakeInstance(nil), sp.spawned...)
	if err := in.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	for _, inst := range first {
		if inst.destroyed != 1 {
			t.Fatalf("previous batch not released before repopulating")
		}
	}
	if in.Count() != 3 {
		t.Fatalf("expected 3 fresh instances, got %d", in.Count())
	}

	in.ClearPrevious = false
	_ = in.Load()
	if in.Count() != 6 {
		t.Fatalf("expected instances to accumulate without ClearPrevious, got %d", in.Count())
	}
}

func TestInstantiatorErrors(t *testing.T) {
	t.Run("no_document", func(t *testing.T) {
		in := NewInstantiator(nil, &fakeSpawner{})
		if err := in.Load(); !errors.Is(err, level.ErrNoDocument) {
			t.Fatalf("expected ErrNoDocument, got %v", err)
		}
	})
	t.Run("no_spawner", func(t *testing.T) {
		in := NewInstantiator(level.New(), nil)
		if err := in.Load(); !errors.Is(err, ErrNoSpawner) {
			t.Fatalf("expected ErrNoSpawner, got %v", err)
		}
	})
	t.Run("spawn_failure_skipped", func(t *testing.T) {
		sp := &fakeSpawner{fail: map[string]bool{"wall_tile": true}}
		in := NewInstantiator(sampleDoc(), sp)
		if err := in.Load(); err != nil {
			t.Fatalf("load: %v", err)
		}
		if in.Count() != 2 {
			t.Fatalf("expected 2 instances, got %d", in.Count())
		}
	})
}

type drawCall struct {
	kind  string
	a, b  Vec2
	size  float64
	color color.Color
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawLine(a, b Vec2, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "line", a: a, b: b, color: c})
}

func (r *recordingRenderer) DrawCube(center Vec2, size float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "cube", a: center, size: size, color: c})
}

func (r *recordingRenderer) DrawWireCube(center Vec2, size float64, c color.Color) {
	r.calls = append(r.calls, drawCall{kind: "wire", a: center, size: size, color: c})
}

func (r *recordingRenderer) count(kind string) int {
	n := 0
	for _, c := range r.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

func TestOverlayDraw(t *testing.T) {
	doc := sampleDoc()
	o := NewOverlay(doc)
	r := &recordingRenderer{}
	o.Draw(r)

	// 20x10 grid: 21 vertical + 11 horizontal lines
	if got := r.count("line"); got != 32 {
		t.Fatalf("expected 32 grid lines, got %d", got)
	}
	if r.count("cube") != doc.Len() || r.count("wire") != doc.Len() {
		t.Fatalf("expected one cube and one wire cube per tile, got %d/%d", r.count("cube"), r.count("wire"))
	}

	var cubes []drawCall
	for _, c := range r.calls {
		if c.kind == "cube" {
			cubes = append(cubes, c)
		}
	}
	if cubes[0].a != (Vec2{0.5, 0.5}) || cubes[0].size != tileFillSize {
		t.Fatalf("unexpected first cube %+v", cubes[0])
	}
	if cubes[1].color != palette.ColorFor("wall") {
		t.Fatalf("expected wall color for upper-case id")
	}
	if cubes[3].color != palette.FallbackColor || cubes[4].color != palette.FallbackColor {
		t.Fatalf("unknown ids should use the fallback color")
	}
}

func TestOverlayFlags(t *testing.T) {
	t.Run("gizmos_off", func(t *testing.T) {
		o := NewOverlay(sampleDoc())
		o.ShowGizmos = false
		r := &recordingRenderer{}
		o.Draw(r)
		if len(r.calls) != 0 {
			t.Fatalf("expected nothing drawn, got %d calls", len(r.calls))
		}
	})
	t.Run("grid_off", func(t *testing.T) {
		o := NewOverlay(sampleDoc())
		o.ShowGrid = false
		r := &recordingRenderer{}
		o.Draw(r)
		if r.count("line") != 0 {
			t.Fatalf("expected no grid lines")
		}
	})
	t.Run("no_document", func(t *testing.T) {
		o := NewOverlay(nil)
		r := &recordingRenderer{}
		o.Draw(r)
		if len(r.calls) != 0 || o.HasTileAt(level.Cell{}) {
			t.Fatalf("nil document should draw and find nothing")
		}
	})
}

func TestDrawGridExtents(t *testing.T) {
	r := &recordingRenderer{}
	DrawGrid(r, 3, 2, nil)
	if len(r.calls) != 7 {
		t.Fatalf("expected 7 lines, got %d", len(r.calls))
	}
	last := r.calls[len(r.calls)-1]
	if last.a != (Vec2{0, 2}) || last.b != (Vec2{3, 2}) {
		t.Fatalf("unexpected last line %+v", last)
	}
	if r.calls[0].color != DefaultGridColor {
		t.Fatalf("expected default grid color")
	}
}
