package refresh

import "math"

// ============================================================================
// Drag Math
//
// Pure functions that turn finger travel into indicator geometry. Nothing here
// reads controller state; every knob arrives as a parameter.
// ============================================================================

// RawDelta is the signed travel used for the touch slop test.
// Positive values mean the finger moved away from the gesture's edge.
func RawDelta(dir Direction, currentY, referenceY float64) float64 {
	if dir == DirectionBottom {
		return referenceY - currentY
	}
	return currentY - referenceY
}

// Overscroll is the drag-rate scaled travel since the initial motion point.
func Overscroll(dir Direction, currentY, initialMotionY, dragRate float64) float64 {
	return RawDelta(dir, currentY, initialMotionY) * dragRate
}

// DragPercent normalizes overscroll against the trigger distance, clamped to
// [0, 1]. ok is false before the trigger distance is known or when the finger
// has moved back past the initial motion point; such samples must be ignored.
func DragPercent(overscroll, totalDragDistance float64) (percent float64, ok bool) {
	if totalDragDistance <= 0 {
		return 0, false
	}
	raw := overscroll / totalDragDistance
	if raw < 0 {
		return 0, false
	}
	return math.Min(1, math.Abs(raw)), true
}

// AdjustedPercent applies the dead zone: nothing moves until dragPercent
// passes deadZone, then the remainder is rescaled back to [0, 1].
func AdjustedPercent(dragPercent, deadZone float64) float64 {
	return math.Max(dragPercent-deadZone, 0) / (1 - deadZone)
}

// TensionPercent eases the travel beyond the trigger distance so the
// indicator slows down the further it is pulled. Extra travel is capped at
// twice the slingshot distance.
func TensionPercent(overscroll, totalDragDistance, slingshot float64) float64 {
	if slingshot <= 0 {
		return 0
	}
	extra := math.Abs(overscroll) - totalDragDistance
	x := math.Max(0, math.Min(extra, slingshot*2)/slingshot)
	q := x / 4
	return (q - q*q) * 2
}

// TargetOffset is the indicator position for the current drag.
func TargetOffset(dir Direction, originalOffset int, slingshot, dragPercent, tension float64) int {
	extraMove := slingshot * tension * 2
	move := int(slingshot*dragPercent + extraMove)
	if dir == DirectionTop {
		return originalOffset + move
	}
	return originalOffset - move
}

// ArcSweep is the share of a full circle drawn by the progress arc.
func ArcSweep(adjustedPercent, maxAngle float64) float64 {
	return math.Min(maxAngle, adjustedPercent*maxAngle)
}

// Rotation is the indicator rotation, in turns, for the current drag.
func Rotation(adjustedPercent, tension float64) float64 {
	return (-0.25 + 0.4*adjustedPercent + tension*2) * 0.5
}

// TriggerDistance derives the refresh threshold from the container height.
func TriggerDistance(containerHeight, factor, maxDistance float64) float64 {
	return math.Min(containerHeight*factor, maxDistance)
}
