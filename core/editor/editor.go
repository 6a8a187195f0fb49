// Package editor owns the application state of the curve tool: the control
// points, the precomputed subdivision levels, the drag in progress and the
// playback position. A single event-processing goroutine owns one Editor
// and drives it with input events and render ticks strictly sequentially,
// so there is exactly one writer and no locking anywhere.
package editor

import (
	"time"

	"github.com/ingyamilmolinar/chaikin/core/curve"
	"github.com/ingyamilmolinar/chaikin/core/geom"
	applog "github.com/ingyamilmolinar/chaikin/internal/log"
)

// Canvas bounds in world units (= screen pixels at scale 1). Pointer
// coordinates are clamped into this rectangle at input translation, before
// they ever reach the point store.
const (
	Width  = 1024
	Height = 860
)

// Binding selects which pointer button does what. BindingRightDrag is the
// canonical scheme: primary adds a point, secondary drags one. In
// BindingLeftOnly the primary button drags when it hits a point and adds
// otherwise.
type Binding int

const (
	BindingRightDrag Binding = iota
	BindingLeftOnly
)

const noDrag = -1

// Editor is the single mutable application state.
type Editor struct {
	points []geom.Point
	cache  [][]geom.Point

	binding  Binding
	interval time.Duration
	logger   *applog.Logger

	cursor geom.Point
	drag   int

	running     bool
	level       int
	lastAdvance time.Time
}

func New(binding Binding, interval time.Duration, logger *applog.Logger) *Editor {
	e := &Editor{
		binding:  binding,
		interval: interval,
		logger:   logger,
		drag:     noDrag,
	}
	e.rebuild()
	return e
}

/* ───────────────────────── point store ───────────────────────── */

// Append adds a control point at the end of the sequence.
func (e *Editor) Append(p geom.Point) {
	e.points = append(e.points, p)
	e.logger.Debugf("[EDITOR] append %v (n=%d)", p, len(e.points))
	e.rebuild()
}

// FindNear returns the index of the first control point within radius of p.
// The scan runs in insertion order and stops at the first hit, so ties go to
// the lowest index, not the closest point.
func (e *Editor) FindNear(p geom.Point, radius float64) (int, bool) {
	r2 := radius * radius
	for i, q := range e.points {
		if geom.Dist2(p, q) <= r2 {
			return i, true
		}
	}
	return 0, false
}

// ReplaceAt moves the control point at index i. The index must be in range;
// the event handlers re-validate stale drag indices before calling.
func (e *Editor) ReplaceAt(i int, p geom.Point) {
	e.points[i] = p
	e.rebuild()
}

// Clear drops every control point and resets playback and drag state
// unconditionally.
func (e *Editor) Clear() {
	e.points = nil
	e.drag = noDrag
	e.running = false
	e.level = 0
	e.logger.Debugf("[EDITOR] clear")
	e.rebuild()
}

// rebuild recomputes the full level cache after any structural change. The
// cache length is constant at MaxSteps+1 today; the range check guards a
// future variable-length cache from leaving the level dangling.
func (e *Editor) rebuild() {
	e.cache = curve.BuildCache(e.points, curve.MaxSteps)
	if e.level >= len(e.cache) {
		e.level = 0
	}
}

/* ───────────────────────── playback ───────────────────────── */

// Toggle starts or pauses the level animation. With no control points it is
// a no-op. Starting rewinds to level 0 and restarts the advance timer.
func (e *Editor) Toggle(now time.Time) {
	if len(e.points) == 0 {
		return
	}
	e.running = !e.running
	if e.running {
		e.level = 0
		e.lastAdvance = now
	}
	e.logger.Infof("[EDITOR] animation running=%t", e.running)
}

// Frame is what one render pass needs from the editor: the raw control
// points for markers and the faint context outline, the curve at the
// current playback level, and whether both should be drawn closed.
type Frame struct {
	Control []geom.Point
	Curve   []geom.Point
	Closed  bool
	Running bool
}

// Frame advances the playback clock and reports what to draw. It is called
// once per render tick. While paused, or with fewer than three points, the
// displayed level is pinned to 0 without touching the running flag; with
// fewer than three points the raw control points stand in for the curve.
func (e *Editor) Frame(now time.Time) Frame {
	if e.running && len(e.points) >= 3 {
		if now.Sub(e.lastAdvance) >= e.interval {
			e.lastAdvance = now
			e.level = (e.level + 1) % len(e.cache)
		}
	} else {
		e.level = 0
	}

	cur := e.points
	if len(e.points) >= 3 {
		cur = e.cache[e.level]
	}
	return Frame{
		Control: e.points,
		Curve:   cur,
		Closed:  curve.Closed(e.points),
		Running: e.running,
	}
}

/* ───────────────────────── accessors ───────────────────────── */

func (e *Editor) Points() []geom.Point { return e.points }
func (e *Editor) Level() int           { return e.level }
func (e *Editor) Running() bool        { return e.running }
func (e *Editor) Dragging() bool       { return e.drag != noDrag }
func (e *Editor) Binding() Binding     { return e.binding }
