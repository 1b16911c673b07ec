package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelBackground = color.RGBA{40, 40, 40, 255}
	labelColor      = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Hover:    color.Black,
				Pressed:  color.RGBA{0, 0, 200, 255},
				Disabled: color.Gray{Y: 128},
			},
		},
	}
}

// swatchImage is a palette button background tinted with the tile color.
func swatchImage(c color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    solidNineSlice(c),
		Hover:   solidNineSlice(lighten(c)),
		Pressed: solidNineSlice(color.RGBA{255, 255, 255, 255}),
	}
}

func lighten(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	up := func(v uint32) uint8 {
		v8 := v >> 8
		return uint8(v8 + (255-v8)/3)
	}
	return color.RGBA{up(r), up(g), up(b), uint8(a >> 8)}
}
