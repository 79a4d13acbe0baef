package gesture

import "testing"

func TestController_LocksDominantAxis(t *testing.T) {
	c := NewController(5)
	vp := Viewport{MaxScrollX: 100, MaxScrollY: 100}

	c.TouchStart(100, 100)

	move := c.TouchMove(90, 98, vp)
	if c.Lock() != AxisHorizontal {
		t.Fatalf("lock got=%s want=%s", c.Lock(), AxisHorizontal)
	}
	if move.PassThrough {
		t.Fatal("expected move to be consumed")
	}
	if move.DeltaX != 10 || move.DeltaY != 0 {
		t.Fatalf("delta got=(%v,%v) want=(10,0)", move.DeltaX, move.DeltaY)
	}
}

func TestController_LockedAxisIgnoresCrossMovement(t *testing.T) {
	c := NewController(5)
	vp := Viewport{MaxScrollX: 100, MaxScrollY: 100}

	c.TouchStart(100, 100)
	c.TouchMove(100, 90, vp)
	if c.Lock() != AxisVertical {
		t.Fatalf("lock got=%s want=%s", c.Lock(), AxisVertical)
	}

	// A later diagonal move stays on the locked axis.
	move := c.TouchMove(60, 85, vp)
	if move.DeltaX != 0 {
		t.Fatalf("cross-axis delta got=%v want=0", move.DeltaX)
	}
	if move.DeltaY != 5 {
		t.Fatalf("locked-axis delta got=%v want=5", move.DeltaY)
	}
}

func TestController_SmallMovesStayUnlocked(t *testing.T) {
	c := NewController(5)
	vp := Viewport{MaxScrollX: 100, MaxScrollY: 100}

	c.TouchStart(100, 100)
	move := c.TouchMove(97, 98, vp)

	if c.Lock() != AxisNone {
		t.Fatalf("lock got=%s want=%s", c.Lock(), AxisNone)
	}
	if !move.PassThrough {
		t.Fatal("expected sub-threshold move to pass through")
	}
}

func TestController_PassThroughWhenAxisNotScrollable(t *testing.T) {
	c := NewController(5)
	vp := Viewport{MaxScrollX: 0, MaxScrollY: 100}

	c.TouchStart(100, 100)
	move := c.TouchMove(80, 100, vp)

	if c.Lock() != AxisHorizontal {
		t.Fatalf("lock got=%s want=%s", c.Lock(), AxisHorizontal)
	}
	if !move.PassThrough {
		t.Fatal("expected pass-through when locked axis has no extent")
	}
	if move.DeltaX != 0 || move.DeltaY != 0 {
		t.Fatalf("delta got=(%v,%v) want=(0,0)", move.DeltaX, move.DeltaY)
	}
}

func TestController_TouchEndResetsLock(t *testing.T) {
	c := NewController(5)
	vp := Viewport{MaxScrollX: 100, MaxScrollY: 100}

	c.TouchStart(100, 100)
	c.TouchMove(80, 100, vp)
	c.TouchEnd()

	if c.Lock() != AxisNone {
		t.Fatalf("lock after end got=%s want=%s", c.Lock(), AxisNone)
	}

	// The next gesture can lock the other axis.
	c.TouchStart(100, 100)
	c.TouchMove(100, 80, vp)
	if c.Lock() != AxisVertical {
		t.Fatalf("lock got=%s want=%s", c.Lock(), AxisVertical)
	}
}

func TestController_MoveWithoutStartPassesThrough(t *testing.T) {
	c := NewController(5)
	move := c.TouchMove(50, 50, Viewport{MaxScrollX: 100, MaxScrollY: 100})
	if !move.PassThrough {
		t.Fatal("expected pass-through before touch start")
	}
}
