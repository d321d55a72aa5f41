package refresh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawDeltaSign(t *testing.T) {
	assert.Equal(t, 20.0, RawDelta(DirectionTop, 120, 100))
	assert.Equal(t, 20.0, RawDelta(DirectionBoth, 120, 100))
	assert.Equal(t, -20.0, RawDelta(DirectionBottom, 120, 100))
	assert.Equal(t, 20.0, RawDelta(DirectionBottom, 80, 100))
}

func TestOverscrollAppliesDragRate(t *testing.T) {
	assert.Equal(t, 50.0, Overscroll(DirectionTop, 200, 100, 0.5))
	assert.Equal(t, 50.0, Overscroll(DirectionBottom, 0, 100, 0.5))
	assert.Equal(t, -50.0, Overscroll(DirectionBottom, 200, 100, 0.5))
}

func TestDragPercent(t *testing.T) {
	tests := []struct {
		name       string
		overscroll float64
		total      float64
		want       float64
		wantOK     bool
	}{
		{"zero", 0, 120, 0, true},
		{"half", 60, 120, 0.5, true},
		{"at threshold", 120, 120, 1, true},
		{"far past threshold", 1200 * 10, 120, 1, true},
		{"wrong way", -10, 120, 0, false},
		{"unsized", 10, -1, 0, false},
		{"zero distance", 10, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DragPercent(tt.overscroll, tt.total)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestAdjustedPercentDeadZone(t *testing.T) {
	for p := 0.0; p <= 0.4; p += 0.05 {
		assert.Zero(t, AdjustedPercent(p, 0.4), "p=%v", p)
	}
	assert.InDelta(t, 1.0, AdjustedPercent(1.0, 0.4), 1e-9)
	assert.InDelta(t, 0.5, AdjustedPercent(0.7, 0.4), 1e-9)
	// Same curve as max(p-0.4, 0) * 5/3.
	assert.InDelta(t, (0.9-0.4)*5/3, AdjustedPercent(0.9, 0.4), 1e-9)
}

func TestArcSweepBoundedAndMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 100; i++ {
		p := float64(i) / 100
		sweep := ArcSweep(AdjustedPercent(p, 0.4), 0.8)
		assert.LessOrEqual(t, sweep, 0.8)
		if p >= 0.4 {
			assert.GreaterOrEqual(t, sweep, prev, "p=%v", p)
		}
		prev = sweep
	}
	assert.InDelta(t, 0.8, ArcSweep(AdjustedPercent(1, 0.4), 0.8), 1e-9)
}

func TestTensionPercent(t *testing.T) {
	// Below the trigger distance there is no tension.
	assert.Zero(t, TensionPercent(60, 120, 64))
	assert.Zero(t, TensionPercent(120, 120, 64))

	// Capped at twice the slingshot: x = 2, (0.5 - 0.25) * 2 = 0.5.
	assert.InDelta(t, 0.5, TensionPercent(120+128, 120, 64), 1e-9)
	assert.InDelta(t, 0.5, TensionPercent(120+10000, 120, 64), 1e-9)

	// Diminishing returns as the pull grows.
	a := TensionPercent(120+32, 120, 64)
	b := TensionPercent(120+64, 120, 64)
	c := TensionPercent(120+96, 120, 64)
	assert.Greater(t, b-a, 0.0)
	assert.Greater(t, b-a, c-b)

	assert.Zero(t, TensionPercent(500, 120, 0))
}

func TestTargetOffset(t *testing.T) {
	assert.Equal(t, -40+32, TargetOffset(DirectionTop, -40, 64, 0.5, 0))
	assert.Equal(t, 1000-32, TargetOffset(DirectionBottom, 1000, 64, 0.5, 0))
	// extraMove = 64 * 0.5 * 2 = 64
	assert.Equal(t, -40+64+64, TargetOffset(DirectionTop, -40, 64, 1, 0.5))
	assert.Equal(t, 1000-128, TargetOffset(DirectionBottom, 1000, 64, 1, 0.5))
}

func TestRotation(t *testing.T) {
	assert.InDelta(t, -0.125, Rotation(0, 0), 1e-9)
	assert.InDelta(t, (-0.25+0.4)*0.5, Rotation(1, 0), 1e-9)
	assert.InDelta(t, (-0.25+0.4+1)*0.5, Rotation(1, 0.5), 1e-9)
}

func TestTriggerDistance(t *testing.T) {
	assert.Equal(t, 120.0, TriggerDistance(1000, 0.6, 120))
	assert.Equal(t, 60.0, TriggerDistance(100, 0.6, 120))
}
