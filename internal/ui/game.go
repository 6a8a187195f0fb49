package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/ingyamilmolinar/chaikin/core/editor"
	applog "github.com/ingyamilmolinar/chaikin/internal/log"
)

// Game adapts the editor to Ebiten's Update/Draw loop. All state lives in
// the editor; this layer only translates device input into editor events
// and level sequences into line segments, so it stays as thin as the
// contract demands.
type Game struct {
	ed     *editor.Editor
	logger *applog.Logger

	// now is swapped out in tests to step playback deterministically.
	now func() time.Time

	/* previous-frame button/key state for edge detection */
	leftPrev  bool
	rightPrev bool
	enterPrev bool
	clearPrev bool

	hud string
}

func New(ed *editor.Editor, logger *applog.Logger) *Game {
	hud := "left: add  right: drag  enter: play/pause  c: clear  esc: quit"
	if ed.Binding() == editor.BindingLeftOnly {
		hud = "left: add or drag  enter: play/pause  c: clear  esc: quit"
	}
	return &Game{ed: ed, logger: logger, now: time.Now, hud: hud}
}

func (g *Game) Layout(w, h int) (int, int) {
	return editor.Width, editor.Height
}

func (g *Game) Update() error {
	x, y := cursorPosition()
	g.ed.PointerMoved(float64(x), float64(y))

	left := isMouseButtonPressed(ebiten.MouseButtonLeft)
	right := isMouseButtonPressed(ebiten.MouseButtonRight)

	if left && !g.leftPrev {
		g.ed.ButtonPressed(editor.ButtonPrimary, float64(x), float64(y))
	}
	if !left && g.leftPrev {
		g.ed.ButtonReleased(editor.ButtonPrimary)
	}
	if right && !g.rightPrev {
		g.ed.ButtonPressed(editor.ButtonSecondary, float64(x), float64(y))
	}
	if !right && g.rightPrev {
		g.ed.ButtonReleased(editor.ButtonSecondary)
	}
	g.leftPrev, g.rightPrev = left, right

	if sig := g.handleKeys(); sig == editor.SignalQuit {
		g.logger.Infof("[UI] terminating event loop")
		return ebiten.Termination
	}
	return nil
}

// handleKeys edge-detects the command keys and forwards them as editor
// events.
func (g *Game) handleKeys() editor.Signal {
	enter := isKeyPressed(ebiten.KeyEnter) || isKeyPressed(ebiten.KeyNumpadEnter)
	if enter && !g.enterPrev {
		g.ed.KeyPressed(editor.KeyToggle, g.now())
	}
	g.enterPrev = enter

	clearKey := isKeyPressed(ebiten.KeyC)
	if clearKey && !g.clearPrev {
		g.ed.KeyPressed(editor.KeyClear, g.now())
	}
	g.clearPrev = clearKey

	if isKeyPressed(ebiten.KeyEscape) {
		return g.ed.KeyPressed(editor.KeyQuit, g.now())
	}
	return editor.SignalContinue
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ed.Frame(g.now())

	screen.Fill(colBackground)

	// Context outline and curve only show while the animation runs; the
	// markers are always visible so the user can keep editing while paused.
	if f.Running {
		if len(f.Control) >= 3 {
			drawPolyline(screen, f.Control, f.Closed, colContext, 1)
		}
		drawPolyline(screen, f.Curve, f.Closed, colCurve, 2)
	}

	for _, p := range f.Control {
		drawMarker(screen, p)
	}

	ebitenutil.DebugPrint(screen, g.hud)
}
