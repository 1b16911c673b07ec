package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type fileActions struct {
	New  func(name string)
	Save func(name string)
	Load func(name string)
}

func addFileNameSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, actions fileActions) *widget.TextInput {
	fileLabel := widget.NewLabel(
		widget.LabelOpts.Text("File", fontFace, labelColor),
	)
	fileNameInput := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(188, 28),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 120},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
	)
	parent.AddChild(fileLabel)
	parent.AddChild(fileNameInput)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)
	button := func(label string, fn func(name string)) {
		row.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(58, 28),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn(fileNameInput.GetText())
				}
			}),
		))
	}
	button("New", actions.New)
	button("Save", actions.Save)
	button("Load", actions.Load)
	parent.AddChild(row)

	return fileNameInput
}
