package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTouchEventPointerLookup(t *testing.T) {
	ev := NewTouchEvent(ActionPointerDown, 1, Pointer{ID: 3, Y: 10}, Pointer{ID: 7, Y: 20})
	defer ev.Release()

	assert.Equal(t, 2, ev.PointerCount())
	assert.Equal(t, 3, ev.PointerID(0))
	assert.Equal(t, 7, ev.PointerID(ev.ActionIndex))
	assert.Equal(t, InvalidPointer, ev.PointerID(5))
	assert.Equal(t, 1, ev.FindPointerIndex(7))
	assert.Equal(t, -1, ev.FindPointerIndex(9))
	assert.Equal(t, -1, ev.FindPointerIndex(InvalidPointer))
	assert.Equal(t, float32(20), ev.Y(1))
}

func TestTouchEventPoolResetsPointers(t *testing.T) {
	ev := NewTouchEvent(ActionMove, 0, Pointer{ID: 1}, Pointer{ID: 2})
	ev.Release()

	ev = NewTouchEvent(ActionUp, 0, Pointer{ID: 4, Y: 1})
	defer ev.Release()
	assert.Equal(t, 1, ev.PointerCount())
	assert.Equal(t, ActionUp, ev.Action)
}

func TestTouchActionString(t *testing.T) {
	assert.Equal(t, "down", ActionDown.String())
	assert.Equal(t, "cancel", ActionCancel.String())
	assert.Equal(t, "pointer-up", ActionPointerUp.String())
	assert.Equal(t, "unknown", TouchAction(0).String())
}
