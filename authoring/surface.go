// Package authoring turns pointer gestures into paint and erase edits on a
// level document.
package authoring

import (
	"image/color"
	"log"
	"math"

	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/palette"
)

type Mode int

const (
	ModePaint Mode = iota
	ModeErase
)

func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "Paint"
	case ModeErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// State is the effective session state. Paint without a selected kind is Idle.
type State int

const (
	StateIdle State = iota
	StatePaint
	StateErase
)

func (s State) String() string {
	switch s {
	case StatePaint:
		return "PAINTING"
	case StateErase:
		return "ERASING"
	default:
		return "SELECT"
	}
}

// Result describes what a gesture sample did to the document.
type Result int

const (
	ResultNone Result = iota
	ResultPlaced
	ResultRemoved
	ResultNoDocument
)

var (
	previewPaint = color.RGBA{G: 0xff, A: 0xff}
	previewErase = color.RGBA{R: 0xff, A: 0xff}
	previewIdle  = color.RGBA{B: 0xff, A: 0xff}
)

// Surface is an interactive paint/erase session over one document.
type Surface struct {
	doc  *level.Document
	kind palette.Kind
	mode Mode

	// Interpolate fills the cells between consecutive drag samples. Off by
	// default: fast drags then skip cells, one edit per sample.
	Interpolate bool

	// OnChange runs after every edit that changed the document.
	OnChange func()

	last     *level.Cell
	hover    level.Cell
	hovering bool
}

// NewSurface starts a session in Paint mode with no kind selected.
func NewSurface(doc *level.Document) *Surface {
	return &Surface{doc: doc, mode: ModePaint}
}

func (s *Surface) Document() *level.Document {
	return s.doc
}

// SetDocument swaps the edited document and resets the gesture.
func (s *Surface) SetDocument(doc *level.Document) {
	s.doc = doc
	s.last = nil
}

func (s *Surface) Kind() palette.Kind {
	return s.kind
}

func (s *Surface) Mode() Mode {
	return s.mode
}

// SelectKind selects a tile kind and forces Paint mode.
func (s *Surface) SelectKind(k palette.Kind) {
	s.kind = k
	s.mode = ModePaint
}

// SelectPaint switches to Paint mode keeping the selected kind.
func (s *Surface) SelectPaint() {
	s.mode = ModePaint
}

// SelectErase clears the selected kind and forces Erase mode.
func (s *Surface) SelectErase() {
	s.kind = palette.KindUnknown
	s.mode = ModeErase
}

func (s *Surface) State() State {
	switch {
	case s.mode == ModeErase:
		return StateErase
	case s.kind.Known():
		return StatePaint
	default:
		return StateIdle
	}
}

// WorldToCell rounds world coordinates to the nearest cell, halves to even.
func WorldToCell(x, y float64) level.Cell {
	return level.Cell{X: int(math.RoundToEven(x)), Y: int(math.RoundToEven(y))}
}

// GridPoint maps a point on the drawn grid, where cell c covers the square
// [c, c+1), to the integer point WorldToCell resolves to c.
func GridPoint(x, y float64) (float64, float64) {
	return math.Floor(x), math.Floor(y)
}

// Press starts a gesture at the world position.
func (s *Surface) Press(x, y float64) Result {
	cell := WorldToCell(x, y)
	res := s.apply(cell)
	s.last = &cell
	return res
}

// Drag continues a gesture. Without Interpolate only the sampled cell is edited.
func (s *Surface) Drag(x, y float64) Result {
	cell := WorldToCell(x, y)
	if !s.Interpolate || s.last == nil || *s.last == cell {
		res := s.apply(cell)
		s.last = &cell
		return res
	}

	res := ResultNone
	for _, pt := range bresenhamLine(s.last.X, s.last.Y, cell.X, cell.Y)[1:] {
		if r := s.apply(level.Cell{X: pt[0], Y: pt[1]}); r != ResultNone {
			res = r
		}
		if res == ResultNoDocument {
			break
		}
	}
	s.last = &cell
	return res
}

// Release ends the current gesture.
func (s *Surface) Release() {
	s.last = nil
}

// Hover records the cell under the pointer for preview drawing.
func (s *Surface) Hover(x, y float64) {
	s.hover = WorldToCell(x, y)
	s.hovering = true
}

func (s *Surface) ClearHover() {
	s.hovering = false
}

func (s *Surface) HoverCell() (level.Cell, bool) {
	return s.hover, s.hovering
}

// PreviewColor is green while painting, red while erasing, blue otherwise.
func (s *Surface) PreviewColor() color.RGBA {
	switch s.State() {
	case StatePaint:
		return previewPaint
	case StateErase:
		return previewErase
	default:
		return previewIdle
	}
}

func (s *Surface) apply(cell level.Cell) Result {
	state := s.State()
	if state == StateIdle {
		return ResultNone
	}
	if s.doc == nil {
		log.Println("authoring: no level document selected")
		return ResultNoDocument
	}

	switch state {
	case StatePaint:
		if !s.doc.InBounds(cell) {
			return ResultNone
		}
		s.doc.PlaceTile(cell, s.kind.ID())
		s.changed()
		return ResultPlaced
	case StateErase:
		if !s.doc.RemoveTile(cell) {
			return ResultNone
		}
		s.changed()
		return ResultRemoved
	}
	return ResultNone
}

func (s *Surface) changed() {
	if s.OnChange != nil {
		s.OnChange()
	}
}
