package refresh

import "sync"

// ============================================================================
// Touch Events
// ============================================================================

// TouchAction identifies what happened to the pointers of a TouchEvent.
type TouchAction uint8

const (
	// ActionDown - the first pointer touched down.
	ActionDown TouchAction = iota + 1
	// ActionMove - one or more pointers moved.
	ActionMove
	// ActionUp - the last pointer lifted.
	ActionUp
	// ActionCancel - the host aborted the gesture. Handled like ActionUp.
	ActionCancel
	// ActionPointerDown - an additional pointer touched down at ActionIndex.
	ActionPointerDown
	// ActionPointerUp - a non-final pointer lifted at ActionIndex.
	ActionPointerUp
)

// InvalidPointer marks "no active pointer".
const InvalidPointer = -1

func (a TouchAction) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionPointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// Pointer is one tracked contact.
type Pointer struct {
	ID   int
	X, Y float32
}

// TouchEvent is a snapshot of every pointer currently down.
type TouchEvent struct {
	Action TouchAction

	// Index into Pointers of the pointer that went down or up
	// (ActionPointerDown / ActionPointerUp only).
	ActionIndex int

	Pointers []Pointer
}

// NewTouchEvent creates a touch event. Uses object pool for high-frequency events.
func NewTouchEvent(action TouchAction, actionIndex int, pointers ...Pointer) *TouchEvent {
	e := touchEventPool.Get().(*TouchEvent)
	e.Action = action
	e.ActionIndex = actionIndex
	e.Pointers = append(e.Pointers[:0], pointers...)
	return e
}

// Release returns the event to the pool. Call when done processing.
func (e *TouchEvent) Release() {
	touchEventPool.Put(e)
}

var touchEventPool = sync.Pool{
	New: func() any {
		return &TouchEvent{}
	},
}

// PointerCount returns how many pointers are down.
func (e *TouchEvent) PointerCount() int {
	return len(e.Pointers)
}

// PointerID returns the id of the pointer at index, or InvalidPointer.
func (e *TouchEvent) PointerID(index int) int {
	if index < 0 || index >= len(e.Pointers) {
		return InvalidPointer
	}
	return e.Pointers[index].ID
}

// FindPointerIndex returns the index of the pointer with id, or -1.
func (e *TouchEvent) FindPointerIndex(id int) int {
	if id == InvalidPointer {
		return -1
	}
	for i, p := range e.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Y returns the vertical position of the pointer at index.
// Panics on an out-of-range index, like a slice access.
func (e *TouchEvent) Y(index int) float32 {
	return e.Pointers[index].Y
}
