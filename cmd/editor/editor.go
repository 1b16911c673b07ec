package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gridpaint/authoring"
	"github.com/milk9111/gridpaint/canvas"
	"github.com/milk9111/gridpaint/level"
	"github.com/milk9111/gridpaint/palette"
	"github.com/milk9111/gridpaint/playback"
	"github.com/milk9111/gridpaint/prefabs"
	"github.com/milk9111/gridpaint/scene"
	"github.com/milk9111/gridpaint/session"
	"github.com/milk9111/gridpaint/settings"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	statusTTL    = 3 * time.Second
)

var sceneBackground = color.RGBA{24, 26, 32, 255}

// Editor is the ebiten game for the level editor.
type Editor struct {
	ui        *EditorUI
	session   *session.Session
	camera    *canvas.Camera
	scene     *scene.Scene
	watcher   *prefabs.Watcher
	clipboard *systemClipboard
	prefs     *settings.Store

	showGrid bool
	preview  bool
	painting bool

	status     string
	statusTime time.Time
}

func NewEditor(sess *session.Session, prefs *settings.Store, watcher *prefabs.Watcher) *Editor {
	g := &Editor{
		session:   sess,
		camera:    canvas.NewCamera(leftPanelWidth),
		scene:     scene.New(sess.Document()),
		watcher:   watcher,
		clipboard: newSystemClipboard(),
		prefs:     prefs,
		showGrid:  true,
	}

	g.ui = BuildEditorUI(
		fileActions{New: g.newLevel, Save: g.save, Load: g.load},
		g.selectTool,
		g.selectKind,
	)

	sess.OnSwap = g.documentSwapped
	g.documentSwapped(sess.Document())
	return g
}

// applyPrefs restores the last session's toggles and palette choice.
func (g *Editor) applyPrefs(p settings.Editor) {
	g.showGrid = p.ShowGrid
	g.session.Surface.Interpolate = g.session.Surface.Interpolate || p.Interpolate
	if k := palette.ParseKind(p.LastKind); k.Known() {
		g.selectKind(k)
	}
}

func (g *Editor) savePrefs() {
	if g.prefs == nil {
		return
	}
	err := g.prefs.Save(settings.Editor{
		LastLevel:   g.session.Name(),
		LastKind:    g.session.Surface.Kind().ID(),
		Interpolate: g.session.Surface.Interpolate,
		ShowGrid:    g.showGrid,
	})
	if err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
}

func (g *Editor) documentSwapped(doc *level.Document) {
	g.scene.SetDocument(doc)
	if g.preview {
		if err := g.scene.Refresh(); err != nil {
			g.setStatus("Preview failed: %v", err)
		}
	}
	if g.ui != nil {
		g.ui.FileNameInput.SetText(g.session.Name())
	}
	if doc != nil {
		w, h := doc.GridSize()
		g.camera.Fit(w, h, screenWidth, screenHeight)
	}
}

func (g *Editor) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusTime = time.Now()
	log.Println(g.status)
}

func (g *Editor) selectTool(t Tool) {
	switch t {
	case ToolPaint:
		g.session.Surface.SelectPaint()
	case ToolErase:
		g.session.Surface.SelectErase()
	}
}

func (g *Editor) selectKind(k palette.Kind) {
	g.session.Surface.SelectKind(k)
	g.ui.ToolBar.SetTool(ToolPaint)
}

func (g *Editor) newLevel(name string) {
	g.session.NewLevel(name)
	g.setStatus("New level %s", g.session.Name())
}

func (g *Editor) save(name string) {
	if err := g.session.Save(name); err != nil {
		g.setStatus("Save failed: %v", err)
		return
	}
	g.ui.FileNameInput.SetText(g.session.Name())
	g.savePrefs()
	g.setStatus("Saved %s", g.session.Store.Path(g.session.Name()))
}

func (g *Editor) load(name string) {
	if err := g.session.Open(name); err != nil {
		g.setStatus("Load failed: %v", err)
		return
	}
	g.savePrefs()
	g.setStatus("Loaded %s", g.session.Name())
}

func (g *Editor) copyLevel() {
	data, err := g.session.Copy()
	if err != nil {
		g.setStatus("Copy failed: %v", err)
		return
	}
	if !g.clipboard.Write(data) {
		g.setStatus("Clipboard unavailable")
		return
	}
	g.setStatus("Copied %d tiles", g.session.Document().Len())
}

func (g *Editor) pasteLevel() {
	if err := g.session.Paste(g.clipboard.Read()); err != nil {
		g.setStatus("Paste failed: %v", err)
		return
	}
	g.setStatus("Pasted %d tiles", g.session.Document().Len())
}

func (g *Editor) togglePreview() {
	g.preview = !g.preview
	if !g.preview {
		g.scene.Clear()
		g.setStatus("Preview off")
		return
	}
	if err := g.scene.Load(); err != nil {
		g.preview = false
		g.setStatus("Preview failed: %v", err)
		return
	}
	g.setStatus("Preview: %d instances", g.scene.Count())
}

// handleFileChanges reacts to template and level edits made outside the editor.
func (g *Editor) handleFileChanges() {
	for _, name := range g.watcher.Drain() {
		switch {
		case prefabs.IsTemplateFile(name):
			if err := g.scene.ReloadTemplates(); err != nil {
				g.setStatus("Template reload failed: %v", err)
				continue
			}
			g.setStatus("Reloaded template %s", filepath.Base(name))
		case prefabs.IsLevelFile(name) && g.session.Matches(name):
			changed, err := g.session.Reload()
			switch {
			case errors.Is(err, session.ErrDirty):
				g.setStatus("%s changed on disk; keeping unsaved edits", filepath.Base(name))
			case err != nil:
				g.setStatus("Reload failed: %v", err)
			case changed:
				g.setStatus("Reloaded %s", filepath.Base(name))
			}
		}
	}
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *Editor) handleHotkeys() {
	// If the UI has a focused text widget (user is typing), suppress hotkeys.
	if fw := g.ui.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return
		}
	}

	if ctrlPressed() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyS):
			g.save(g.ui.FileNameInput.GetText())
		case inpututil.IsKeyJustPressed(ebiten.KeyN):
			g.newLevel(g.ui.FileNameInput.GetText())
		case inpututil.IsKeyJustPressed(ebiten.KeyC):
			g.copyLevel()
		case inpututil.IsKeyJustPressed(ebiten.KeyV):
			g.pasteLevel()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ui.ToolBar.SetTool(ToolPaint)
		g.selectTool(ToolPaint)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.ui.ToolBar.SetTool(ToolErase)
		g.selectTool(ToolErase)
	}
	for i, k := range palette.Kinds() {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.selectKind(k)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.session.Surface.Interpolate = !g.session.Surface.Interpolate
		g.setStatus("Drag interpolation: %v", g.session.Surface.Interpolate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.togglePreview()
	}
}

// cellPoint converts a screen position to the point the surface edits: the
// cell whose drawn square is under the cursor.
func (g *Editor) cellPoint(mx, my int) (float64, float64) {
	return authoring.GridPoint(g.camera.ScreenToWorld(float64(mx), float64(my)))
}

func (g *Editor) handlePointer() {
	mx, my := ebiten.CursorPosition()
	surface := g.session.Surface

	if !g.camera.InScene(float64(mx)) {
		surface.ClearHover()
		if g.painting && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			surface.Release()
			g.painting = false
		}
		return
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.camera.ZoomAt(float64(mx), float64(my), wy)
	}
	g.camera.DragPan(ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle), float64(mx), float64(my))

	x, y := g.cellPoint(mx, my)
	surface.Hover(x, y)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		surface.Press(x, y)
		g.painting = true
	case g.painting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		surface.Drag(x, y)
	case g.painting:
		surface.Release()
		g.painting = false
	}
}

func (g *Editor) Update() error {
	g.ui.UI.Update()
	g.handleFileChanges()
	g.handleHotkeys()
	g.handlePointer()

	if g.preview {
		g.scene.Update()
	}
	g.ui.Info.Refresh(g.session.Name(), g.session.Document(), g.session.Surface)
	return nil
}

func (g *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(sceneBackground)
	r := canvas.NewRenderer(screen, g.camera)
	doc := g.session.Document()

	if doc != nil && g.showGrid {
		w, h := doc.GridSize()
		playback.DrawGrid(r, w, h, playback.DefaultGridColor)
	}
	if g.preview {
		g.scene.Draw(screen, g.camera)
	} else if doc != nil {
		for _, t := range doc.Tiles {
			playback.DrawTile(r, t)
		}
	}
	if cell, ok := g.session.Surface.HoverCell(); ok {
		r.DrawWireCube(playback.CellCenter(cell), 1, g.session.Surface.PreviewColor())
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("cell %d,%d", cell.X, cell.Y), leftPanelWidth+8, screenHeight-40)
	}

	g.ui.UI.Draw(screen)

	if g.status != "" && time.Since(g.statusTime) < statusTTL {
		ebitenutil.DebugPrintAt(screen, g.status, leftPanelWidth+8, screenHeight-20)
	}
	if g.preview {
		ebitenutil.DebugPrintAt(screen, "PREVIEW (F5)", screenWidth-100, 8)
	}
}

func (g *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Close flushes preferences and stops the file watcher.
func (g *Editor) Close() {
	g.savePrefs()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
