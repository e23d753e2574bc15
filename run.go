package gesturepad

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Controller and View to the Ebitengine game interface. It
// collects platform touches every tick, emulates gestures from mouse and
// keyboard on desktop, and forwards viewport changes to the controller.
type Game struct {
	// ScreenshotDir is where S-key captures are written. Empty means
	// DefaultScreenshotDir.
	ScreenshotDir string

	pad    *Controller
	view   *View
	script *ScriptRunner

	updateFunc func()

	touchIDs []ebiten.TouchID
	touchBuf []TouchPoint

	screenshotQueue []string

	lastW, lastH int

	mouseDown                 bool
	mouseX, mouseY            int
	undoKey, redoKey, shotKey bool
}

// NewGame creates a game wrapping the controller with a fresh View.
func NewGame(pad *Controller, cfg Config) *Game {
	return &Game{
		pad:  pad,
		view: NewView(pad, cfg),
	}
}

// SetScript attaches a gesture script replayed one step per tick.
func (g *Game) SetScript(script *ScriptRunner) {
	g.script = script
}

// SetUpdateFunc registers a callback invoked at the start of every tick,
// before input processing. Useful for config hot-reload polling.
func (g *Game) SetUpdateFunc(fn func()) {
	g.updateFunc = fn
}

// View returns the renderer, for tweaking after construction.
func (g *Game) View() *View {
	return g.view
}

// Update runs one tick: script step, touch collection, desktop emulation,
// gesture advance, and indicator tweens.
func (g *Game) Update() error {
	if g.updateFunc != nil {
		g.updateFunc()
	}
	if g.script != nil && !g.script.Done() {
		g.script.Step(g.pad)
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.touchBuf = g.touchBuf[:0]
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.touchBuf = append(g.touchBuf, TouchPoint{
			ID: int64(id),
			X:  float64(x),
			Y:  float64(y),
		})
	}

	g.emulateDesktop()
	g.pad.Advance(g.touchBuf)
	g.view.Update()
	return nil
}

// emulateDesktop maps mouse and keyboard input onto the gesture entry
// points: wheel zooms about the cursor, left-drag pans, U and R trigger
// undo and redo taps.
func (g *Game) emulateDesktop() {
	mx, my := ebiten.CursorPosition()

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.pad.Pinch(Vec2{X: float64(mx), Y: float64(my)}, math.Pow(1.1, wy))
	}

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if pressed && g.mouseDown && (mx != g.mouseX || my != g.mouseY) {
		g.pad.Pan(float64(mx-g.mouseX), float64(my-g.mouseY))
	}
	g.mouseDown = pressed
	g.mouseX, g.mouseY = mx, my

	undo := ebiten.IsKeyPressed(ebiten.KeyU)
	if undo && !g.undoKey {
		g.pad.Undo()
	}
	g.undoKey = undo

	redo := ebiten.IsKeyPressed(ebiten.KeyR)
	if redo && !g.redoKey {
		g.pad.Redo()
	}
	g.redoKey = redo

	shot := ebiten.IsKeyPressed(ebiten.KeyS)
	if shot && !g.shotKey {
		g.Screenshot("capture")
	}
	g.shotKey = shot
}

// Draw renders the current frame and flushes any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	g.flushScreenshots(screen)
}

// Layout reports the logical screen size and resets the surface placement
// whenever it changes, including the first call.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW, g.lastH = outsideWidth, outsideHeight
		g.pad.Resize(Size{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the controller until the window closes.
// This is the all-in-one entry point; use NewGame plus RunGame to attach
// a script or an update hook first.
func Run(pad *Controller, cfg Config) error {
	return RunGame(NewGame(pad, cfg), cfg)
}

// RunGame opens a window for an already-constructed Game and runs it
// until the window closes.
func RunGame(game *Game, cfg Config) error {
	cfg.applyDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(game)
}
