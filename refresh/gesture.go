package refresh

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ============================================================================
// Gesture State Machine
//
// Idle -> ArmedDown (pointer down) -> Dragging (past touch slop)
//      -> Releasing(trigger | cancel) -> Idle
// ============================================================================

// controllerSnapshot is the state restored when event handling faults.
type controllerSnapshot struct {
	session          gestureSession
	offsets          offsetState
	direction        Direction
	refreshing       bool
	notify           bool
	returningToStart bool
}

func (c *Controller) snapshot() controllerSnapshot {
	return controllerSnapshot{
		session:          c.session,
		offsets:          c.offsets,
		direction:        c.direction,
		refreshing:       c.refreshing,
		notify:           c.notify,
		returningToStart: c.returningToStart,
	}
}

func (c *Controller) restore(s controllerSnapshot) {
	c.session = s.session
	c.offsets = s.offsets
	c.direction = s.direction
	c.refreshing = s.refreshing
	c.notify = s.notify
	c.returningToStart = s.returningToStart
	c.indicator.SetPosition(s.offsets.current)
}

// recoverEvent downgrades a fault during event handling to "not handled".
func (c *Controller) recoverEvent(stage string, ev *TouchEvent, s controllerSnapshot, handled *bool) {
	r := recover()
	if r == nil {
		return
	}
	c.restore(s)
	*handled = false
	c.logger.Error("touch handling failed",
		"stage", stage,
		"action", ev.Action.String(),
		"session", c.session.id,
		"direction", c.direction.String(),
		"error", fmt.Sprint(r),
	)
}

// swipeBlocked reports whether no swipe can start right now.
// autoDetect skips the child-scroll test while the edge is still unresolved.
func (c *Controller) swipeBlocked(autoDetect bool) bool {
	return !c.enabled || c.returningToStart || (!autoDetect && c.canChildScroll(c.direction)) || c.refreshing
}

// pointerY returns the Y of pointer id in ev.
func pointerY(ev *TouchEvent, id int) (float64, bool) {
	index := ev.FindPointerIndex(id)
	if index < 0 {
		return 0, false
	}
	return float64(ev.Y(index)), true
}

// OnInterceptTouch decides whether the container steals the gesture from
// its child. Returns true once the drag has passed the touch slop.
func (c *Controller) OnInterceptTouch(ev *TouchEvent) (intercepted bool) {
	defer c.recoverEvent("intercept", ev, c.snapshot(), &intercepted)

	c.ensureTarget()
	if c.returningToStart && ev.Action == ActionDown {
		c.returningToStart = false
	}
	if c.swipeBlocked(c.bothDirection) {
		return false
	}
	if c.offsets.totalDragDistance <= 0 {
		// Not laid out yet.
		return false
	}

	switch ev.Action {
	case ActionDown:
		c.moveIndicator(c.offsets.original - c.indicator.Position())
		c.session = gestureSession{
			id:            uuid.NewString(),
			activePointer: ev.PointerID(0),
		}
		y, ok := pointerY(ev, c.session.activePointer)
		if !ok {
			return false
		}
		c.session.initialDownY = y
		if !c.armDrag(y) {
			return false
		}

	case ActionMove:
		if c.session.activePointer == InvalidPointer {
			return false
		}
		y, ok := pointerY(ev, c.session.activePointer)
		if !ok {
			return false
		}
		if !c.armDrag(y) {
			return false
		}

	case ActionPointerUp:
		c.onSecondaryPointerUp(ev)

	case ActionUp, ActionCancel:
		c.session.dragging = false
		c.session.activePointer = InvalidPointer
	}

	return c.session.dragging
}

// armDrag resolves the edge (auto-detect only) and starts dragging once the
// finger passed the touch slop. Returns false when the resolved edge can't
// take the gesture; the down point is then re-armed at y.
func (c *Controller) armDrag(y float64) bool {
	if c.bothDirection && !c.session.dragging {
		if y > c.session.initialDownY {
			c.setRawDirection(DirectionTop)
		} else if y < c.session.initialDownY {
			c.setRawDirection(DirectionBottom)
		}
		if c.canChildScroll(c.direction) {
			c.session.initialDownY = y
			return false
		}
	}

	slop := c.cfg.TouchSlop()
	if RawDelta(c.direction, y, c.session.initialDownY) > slop && !c.session.dragging {
		if c.direction == DirectionBottom {
			c.session.initialMotionY = c.session.initialDownY - slop
		} else {
			c.session.initialMotionY = c.session.initialDownY + slop
		}
		c.session.dragging = true
		// A settling return animation must not fight the finger, but a
		// scale-out after SetRefreshing(false) still owes its reset.
		owesReset := !c.refreshing && c.anims.Pending(CompleteRefresh)
		c.anims.CancelAll()
		if owesReset {
			c.finishRefreshTransition()
		}
		c.indicator.SetAlpha(c.cfg.StartingAlpha)
		c.logger.Debug("drag started", "session", c.session.id, "direction", c.direction.String())
	}
	return true
}

// OnTouch handles a gesture the container owns. Returns false when the event
// was not handled.
func (c *Controller) OnTouch(ev *TouchEvent) (handled bool) {
	defer c.recoverEvent("touch", ev, c.snapshot(), &handled)

	if c.returningToStart && ev.Action == ActionDown {
		c.returningToStart = false
	}
	if c.swipeBlocked(false) {
		return false
	}

	switch ev.Action {
	case ActionDown:
		c.session.activePointer = ev.PointerID(0)
		c.session.dragging = false

	case ActionMove:
		y, ok := pointerY(ev, c.session.activePointer)
		if !ok {
			return false
		}
		if c.session.dragging {
			overscroll := Overscroll(c.direction, y, c.session.initialMotionY, c.cfg.DragRate)
			if !c.applyDrag(overscroll) {
				return false
			}
		}

	case ActionPointerDown:
		c.session.activePointer = ev.PointerID(ev.ActionIndex)

	case ActionPointerUp:
		c.onSecondaryPointerUp(ev)

	case ActionUp, ActionCancel:
		if c.session.activePointer == InvalidPointer {
			return false
		}
		y, ok := pointerY(ev, c.session.activePointer)
		wasDragging := c.session.dragging
		c.session.dragging = false
		c.session.activePointer = InvalidPointer
		if !ok || !wasDragging {
			return false
		}
		c.release(Overscroll(c.direction, y, c.session.initialMotionY, c.cfg.DragRate))
		return false
	}

	return true
}

// applyDrag pushes one drag sample to the indicator. Samples where the
// finger is back behind the initial motion point are ignored.
func (c *Controller) applyDrag(overscroll float64) bool {
	total := c.offsets.totalDragDistance
	dragPercent, ok := DragPercent(overscroll, total)
	if !ok {
		return false
	}
	c.indicator.SetArrowVisible(true)

	adjusted := AdjustedPercent(dragPercent, c.cfg.DeadZone)
	slingshot := c.offsets.spinnerFinalOffset
	tension := TensionPercent(overscroll, total, slingshot)
	target := TargetOffset(c.direction, c.offsets.original, slingshot, dragPercent, tension)

	if !c.indicator.Visible() {
		c.indicator.SetVisible(true)
	}
	if !c.cfg.ScaleMode {
		c.indicator.SetScale(1)
	}

	if overscroll < total {
		if c.cfg.ScaleMode {
			c.indicator.SetScale(overscroll / total)
		}
		if c.indicator.Alpha() > c.cfg.StartingAlpha && !c.anims.Running(KindAlphaStart) {
			c.startAlphaAnimation(KindAlphaStart, c.cfg.StartingAlpha)
		}
		c.indicator.SetArcSweep(ArcSweep(adjusted, c.cfg.MaxProgressAngle))
		c.indicator.SetArrowScale(math.Min(1, adjusted))
	} else if c.indicator.Alpha() < c.cfg.MaxAlpha && !c.anims.Running(KindAlphaMax) {
		c.startAlphaAnimation(KindAlphaMax, c.cfg.MaxAlpha)
	}

	c.indicator.SetRotation(Rotation(adjusted, tension))
	c.moveIndicator(target - c.offsets.current)
	return true
}

// release resolves a finished drag. Only travel strictly beyond the trigger
// distance refreshes.
func (c *Controller) release(overscroll float64) {
	if overscroll > c.offsets.totalDragDistance {
		c.setRefreshing(true, true)
		return
	}

	c.logger.Debug("drag cancelled", "session", c.session.id, "overscroll", overscroll)
	c.SetRefreshing(false)
	c.indicator.SetArcSweep(0)
	completion := CompleteNone
	if !c.cfg.ScaleMode {
		completion = CompleteScaleDown
	}
	c.returningToStart = true
	c.animateOffsetToStart(c.offsets.current, completion)
	c.indicator.SetArrowVisible(false)
}

// onSecondaryPointerUp adopts another pointer when the active one lifts.
func (c *Controller) onSecondaryPointerUp(ev *TouchEvent) {
	index := ev.ActionIndex
	if ev.PointerID(index) != c.session.activePointer {
		return
	}
	newIndex := 0
	if index == 0 {
		newIndex = 1
	}
	c.session.activePointer = ev.PointerID(newIndex)
}
