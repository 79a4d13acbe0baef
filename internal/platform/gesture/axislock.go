// Package gesture implements axis-locked scrolling for 2-D containers: once
// a touch gesture commits to an axis, every subsequent move in that gesture
// scrolls only along it.
package gesture

import "math"

type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

const DefaultLockThreshold = 5.0

// Viewport describes the scrollable extent of the container at gesture time.
// An axis with MaxScroll <= 0 has nothing to scroll; moves along it pass
// through to the enclosing page.
type Viewport struct {
	MaxScrollX float64
	MaxScrollY float64
}

// Move is the outcome of one touch-move event.
type Move struct {
	DeltaX float64
	DeltaY float64
	// PassThrough is set when the locked axis has no scrollable extent and
	// the event should not be consumed.
	PassThrough bool
}

// Controller is a per-gesture state machine: Idle until a touch starts,
// Locking until the first move exceeds the threshold, then Horizontal or
// Vertical for the remainder of the gesture.
type Controller struct {
	threshold float64

	active bool
	lock   Axis
	lastX  float64
	lastY  float64
}

func NewController(threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultLockThreshold
	}
	return &Controller{threshold: threshold}
}

func (c *Controller) Lock() Axis {
	return c.lock
}

func (c *Controller) TouchStart(x, y float64) {
	c.active = true
	c.lock = AxisNone
	c.lastX = x
	c.lastY = y
}

func (c *Controller) TouchMove(x, y float64, vp Viewport) Move {
	if !c.active {
		return Move{PassThrough: true}
	}

	dx := c.lastX - x
	dy := c.lastY - y
	c.lastX = x
	c.lastY = y

	if c.lock == AxisNone {
		adx, ady := math.Abs(dx), math.Abs(dy)
		if max(adx, ady) <= c.threshold {
			return Move{PassThrough: true}
		}
		if adx >= ady {
			c.lock = AxisHorizontal
		} else {
			c.lock = AxisVertical
		}
	}

	switch c.lock {
	case AxisHorizontal:
		if vp.MaxScrollX <= 0 {
			return Move{PassThrough: true}
		}
		return Move{DeltaX: dx}
	case AxisVertical:
		if vp.MaxScrollY <= 0 {
			return Move{PassThrough: true}
		}
		return Move{DeltaY: dy}
	}

	return Move{PassThrough: true}
}

func (c *Controller) TouchEnd() {
	c.active = false
	c.lock = AxisNone
}

