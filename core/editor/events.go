package editor

import (
	"time"

	"github.com/ingyamilmolinar/chaikin/core/curve"
	"github.com/ingyamilmolinar/chaikin/core/geom"
)

// Signal tells the outer event loop what to do after an input event. The
// quit key yields SignalQuit instead of terminating the process, so the
// core stays testable.
type Signal int

const (
	SignalContinue Signal = iota
	SignalQuit
)

// Button identifies a pointer button, decoupled from any UI toolkit.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// Key identifies the command keys.
type Key int

const (
	KeyToggle Key = iota // start/pause the level animation
	KeyClear             // drop all control points
	KeyQuit
)

// PointerMoved updates the cursor and, mid-drag, moves the grabbed point.
// The drag index is re-validated against the current length: a clear
// between the grab and this event leaves a stale index, which silently ends
// the drag instead of writing out of range.
func (e *Editor) PointerMoved(x, y float64) {
	e.cursor = geom.Pt(x, y).Clamp(Width, Height)
	if e.drag == noDrag {
		return
	}
	if e.drag >= len(e.points) {
		e.logger.Debugf("[EDITOR] drag index %d stale, ending drag", e.drag)
		e.drag = noDrag
		return
	}
	e.ReplaceAt(e.drag, e.cursor)
}

// ButtonPressed applies the configured binding at the event position.
func (e *Editor) ButtonPressed(b Button, x, y float64) {
	e.cursor = geom.Pt(x, y).Clamp(Width, Height)

	if e.binding == BindingLeftOnly {
		if b != ButtonPrimary {
			return
		}
		if i, ok := e.FindNear(e.cursor, curve.ClickRadius); ok {
			e.beginDrag(i)
			return
		}
		e.Append(e.cursor)
		return
	}

	switch b {
	case ButtonPrimary:
		e.Append(e.cursor)
	case ButtonSecondary:
		if i, ok := e.FindNear(e.cursor, curve.ClickRadius); ok {
			e.beginDrag(i)
		}
	}
}

// ButtonReleased ends a drag begun by the matching button.
func (e *Editor) ButtonReleased(b Button) {
	switch e.binding {
	case BindingLeftOnly:
		if b == ButtonPrimary {
			e.endDrag()
		}
	default:
		if b == ButtonSecondary {
			e.endDrag()
		}
	}
}

// KeyPressed runs a command key and reports whether the loop should keep
// running.
func (e *Editor) KeyPressed(k Key, now time.Time) Signal {
	switch k {
	case KeyToggle:
		e.Toggle(now)
	case KeyClear:
		e.Clear()
	case KeyQuit:
		e.logger.Infof("[EDITOR] quit requested")
		return SignalQuit
	}
	return SignalContinue
}

func (e *Editor) beginDrag(i int) {
	e.drag = i
	e.logger.Debugf("[EDITOR] begin drag of point %d", i)
}

func (e *Editor) endDrag() {
	if e.drag != noDrag {
		e.logger.Debugf("[EDITOR] end drag of point %d", e.drag)
	}
	e.drag = noDrag
}
