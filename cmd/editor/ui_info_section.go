package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridpaint/authoring"
	"github.com/milk9111/gridpaint/level"
)

// InfoSection shows the open level's name, size and the authoring state.
type InfoSection struct {
	name  *widget.Text
	tiles *widget.Text
	grid  *widget.Text
	mode  *widget.Text
	kind  *widget.Text
	saved *widget.Text
}

func addInfoSection(parent *widget.Container, fontFace *text.Face) *InfoSection {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Level", fontFace, labelColor)))

	line := func() *widget.Text {
		t := widget.NewText(widget.TextOpts.Text("", fontFace, color.RGBA{210, 210, 210, 255}))
		parent.AddChild(t)
		return t
	}
	return &InfoSection{
		name:  line(),
		tiles: line(),
		grid:  line(),
		mode:  line(),
		kind:  line(),
		saved: line(),
	}
}

func (s *InfoSection) Refresh(file string, doc *level.Document, surface *authoring.Surface) {
	if s == nil {
		return
	}
	if doc == nil {
		s.name.Label = "Name: (none)"
		s.tiles.Label = "Tiles: 0"
		s.grid.Label = "Grid: -"
		s.saved.Label = ""
	} else {
		w, h := doc.GridSize()
		s.name.Label = fmt.Sprintf("Name: %s", doc.Name)
		s.tiles.Label = fmt.Sprintf("Tiles: %d", doc.Len())
		s.grid.Label = fmt.Sprintf("Grid: %d x %d", w, h)
		if doc.Dirty() {
			s.saved.Label = fmt.Sprintf("%s.json *", file)
		} else {
			s.saved.Label = fmt.Sprintf("%s.json", file)
		}
	}
	s.mode.Label = fmt.Sprintf("Mode: %s", surface.State())
	s.kind.Label = fmt.Sprintf("Selected: %s", surface.Kind().Label())
}
