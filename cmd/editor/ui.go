package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridpaint/palette"
	"golang.org/x/image/font/gofont/goregular"
)

const leftPanelWidth = 220

// EditorUI is the left panel and the widgets the editor updates each frame.
type EditorUI struct {
	UI            *ebitenui.UI
	ToolBar       *ToolBar
	FileNameInput *widget.TextInput
	Info          *InfoSection
}

func BuildEditorUI(
	files fileActions,
	onToolSelected func(tool Tool),
	onKindSelected func(k palette.Kind),
) *EditorUI {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Left: 16, Right: 16, Bottom: 12}),
			),
		),
	)

	fileNameInput := addFileNameSection(leftPanel, ui.PrimaryTheme, &fontFace, files)
	addPaletteSection(leftPanel, &fontFace, onKindSelected)
	toolBar := addToolSection(leftPanel, ui.PrimaryTheme, &fontFace, onToolSelected)
	info := addInfoSection(leftPanel, &fontFace)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(leftPanel)
	ui.Container = root

	return &EditorUI{
		UI:            ui,
		ToolBar:       toolBar,
		FileNameInput: fileNameInput,
		Info:          info,
	}
}
