package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridpaint/canvas"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/levels"
	"github.com/milk9111/gridpaint/playback"
	"github.com/milk9111/gridpaint/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var background = color.RGBA{16, 18, 24, 255}

// Game shows an instantiated level with an optional overlay.
type Game struct {
	name    string
	doc     *level.Document
	scene   *scene.Scene
	overlay *playback.Overlay
	camera  *canvas.Camera

	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(levelName string, autoload, gizmos bool) (*Game, error) {
	doc, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelName, err)
	}

	g := &Game{
		name:    levelName,
		doc:     doc,
		scene:   scene.New(doc),
		overlay: playback.NewOverlay(doc),
		camera:  canvas.NewCamera(0),
	}
	g.overlay.ShowGizmos = gizmos
	w, h := doc.GridSize()
	g.camera.Fit(w, h, baseWidth, baseHeight)
	g.pauseUI = NewPauseUI(g)

	if autoload {
		if err := g.scene.Load(); err != nil {
			log.Printf("instantiate %s: %v", levelName, err)
		}
	}
	return g, nil
}

// reload re-reads the level from disk or the embedded copy and respawns it.
func (g *Game) reload() {
	doc, err := levels.Load(g.name)
	if err != nil {
		log.Printf("reload %s: %v", g.name, err)
		doc = g.doc
	}
	g.doc = doc
	g.overlay.Doc = doc
	g.scene.SetDocument(doc)
	if err := g.scene.Refresh(); err != nil {
		log.Printf("refresh %s: %v", g.name, err)
	}
}

func (g *Game) clear() {
	g.scene.Clear()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.overlay.ShowGizmos = !g.overlay.ShowGizmos
	}

	mx, my := ebiten.CursorPosition()
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomAt(float64(mx), float64(my), wy)
	}
	g.camera.DragPan(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight), float64(mx), float64(my))

	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.scene.Draw(screen, g.camera)
	g.overlay.Draw(canvas.NewRenderer(screen, g.camera))

	mx, my := ebiten.CursorPosition()
	wx, wy := g.camera.ScreenToWorld(float64(mx), float64(my))
	hud := fmt.Sprintf("%s  instances: %d  FPS: %.0f\nR refresh  C clear  O overlay  Esc menu", g.doc.Name, g.scene.Count(), ebiten.ActualFPS())
	switch {
	case g.scene.Space.SolidAt(wx, wy):
		hud += "\ncursor: solid"
	case g.scene.Space.SensorAt(wx, wy):
		hud += "\ncursor: pickup"
	}
	ebitenutil.DebugPrint(screen, hud)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
