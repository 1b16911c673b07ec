package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gridpaint/palette"
)

type Tool int

const (
	ToolPaint Tool = iota
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolPaint:
		return "Paint (P)"
	case ToolErase:
		return "Erase (E)"
	default:
		return "Unknown"
	}
}

// ToolBar contains the radio-group state for the tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (tb *ToolBar) SetTool(t Tool) {
	idx := int(t)
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	if tb.group.Active() == tb.buttons[idx] {
		return
	}
	tb.group.SetActive(tb.buttons[idx])
}

func addToolSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, onToolSelected func(tool Tool)) *ToolBar {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Tools", fontFace, labelColor)))

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)

	tools := []Tool{ToolPaint, ToolErase}
	var toolButtons []*widget.Button
	for _, tool := range tools {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(tool.String(), fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(90, 32),
			),
		)
		toolButtons = append(toolButtons, btn)
		row.AddChild(btn)
	}
	parent.AddChild(row)

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}

	tb := &ToolBar{buttons: toolButtons}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(tools[idx])
					return
				}
			}
		}),
	)
	return tb
}

// addPaletteSection adds one swatch button per paintable tile kind.
func addPaletteSection(parent *widget.Container, fontFace *text.Face, onKindSelected func(k palette.Kind)) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Tiles", fontFace, labelColor)))

	textColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.Black,
		Disabled: color.Gray{Y: 128},
	}
	for i, k := range palette.Kinds() {
		kind := k
		label := kind.Label()
		if i < 9 {
			label = string(rune('1'+i)) + "  " + label
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(swatchImage(kind.Color())),
			widget.ButtonOpts.Text(label, fontFace, textColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(188, 30),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onKindSelected != nil {
					onKindSelected(kind)
				}
			}),
		)
		parent.AddChild(btn)
	}
}
