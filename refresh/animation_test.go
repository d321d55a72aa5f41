package refresh

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]EasingFunc{
		"linear":                EaseLinear,
		"ease-out":              EaseOutQuad,
		"cubic":                 EaseOutCubic,
		"ease-in-out":           EaseInOutCubic,
		"accelerate-decelerate": EaseAccelerateDecelerate,
		"decelerate(2)":         EaseDecelerate(2),
	}
	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, fn(0), 1e-9)
			assert.InDelta(t, 1, fn(1), 1e-9)
		})
	}
}

func TestEaseDecelerateIsFastFirst(t *testing.T) {
	fn := EaseDecelerate(2)
	assert.InDelta(t, 1-0.0625, fn(0.5), 1e-9)
	assert.Greater(t, fn(0.25), EaseLinear(0.25))
}

func TestEasingByName(t *testing.T) {
	assert.NotNil(t, EasingByName("decelerate"))
	assert.NotNil(t, EasingByName("accelerate-decelerate"))
	assert.Nil(t, EasingByName("wobble"))
}

func TestAnimationKindSlots(t *testing.T) {
	assert.Equal(t, SlotScale, KindScaleUp.Slot())
	assert.Equal(t, SlotScale, KindScaleDown.Slot())
	assert.Equal(t, SlotAlpha, KindAlphaStart.Slot())
	assert.Equal(t, SlotAlpha, KindAlphaMax.Slot())
	assert.Equal(t, SlotOffset, KindOffsetToCorrectPosition.Slot())
	assert.Equal(t, SlotOffset, KindOffsetToStart.Slot())
	assert.Equal(t, SlotOffset, KindScaleDownToStart.Slot())
}

func TestRegistryTickProgress(t *testing.T) {
	r := NewAnimationRegistry()
	var seen []float64
	anim := NewAnimation(KindScaleUp, 100*time.Millisecond, EaseLinear, CompleteRefresh, func(p float64) {
		seen = append(seen, p)
	})
	r.Start(anim)
	assert.False(t, anim.Running(), "clock starts on first tick")

	start := time.Unix(0, 0)
	assert.Empty(t, r.Tick(start))
	assert.True(t, r.Running(KindScaleUp))

	assert.Empty(t, r.Tick(start.Add(50*time.Millisecond)))
	done := r.Tick(start.Add(150 * time.Millisecond))
	require.Len(t, done, 1)
	assert.Same(t, anim, done[0])
	assert.Equal(t, CompleteRefresh, done[0].Completion())

	assert.Equal(t, []float64{0, 0.5, 1}, seen)
	assert.False(t, r.HasActive())
	assert.False(t, r.Running(KindScaleUp))
}

func TestRegistryReplacesSameSlot(t *testing.T) {
	r := NewAnimationRegistry()
	first := NewAnimation(KindAlphaStart, time.Second, nil, CompleteNone, nil)
	second := NewAnimation(KindAlphaMax, time.Second, nil, CompleteNone, nil)
	r.Start(first)
	r.Start(second)

	assert.True(t, first.IsCancelled())
	assert.Same(t, second, r.Current(SlotAlpha))
	assert.Equal(t, 1, r.Count())
}

func TestRegistryPrimarySlotsExcludeEachOther(t *testing.T) {
	r := NewAnimationRegistry()
	alpha := NewAnimation(KindAlphaMax, time.Second, nil, CompleteNone, nil)
	offset := NewAnimation(KindOffsetToCorrectPosition, time.Second, nil, CompleteRefresh, nil)
	scale := NewAnimation(KindScaleDown, time.Second, nil, CompleteRefresh, nil)

	r.Start(alpha)
	r.Start(offset)
	assert.Equal(t, 2, r.Count())

	r.Start(scale)
	assert.True(t, offset.IsCancelled(), "scale start must drop the pending offset completion")
	assert.False(t, alpha.IsCancelled())
	assert.Nil(t, r.Current(SlotOffset))
	assert.Equal(t, 2, r.Count())

	// A cancelled animation never reports completion.
	now := time.Unix(0, 0)
	r.Tick(now)
	done := r.Tick(now.Add(2 * time.Second))
	require.Len(t, done, 2)
	assert.Same(t, alpha, done[0])
	assert.Same(t, scale, done[1])
}

func TestRegistryZeroDurationCompletesOnFirstTick(t *testing.T) {
	r := NewAnimationRegistry()
	var last float64
	r.Start(NewAnimation(KindScaleDown, 0, nil, CompleteNone, func(p float64) { last = p }))
	done := r.Tick(time.Unix(0, 0))
	assert.Len(t, done, 1)
	assert.Equal(t, 1.0, last)
}

func TestRegistryCancelAll(t *testing.T) {
	r := NewAnimationRegistry()
	r.Start(NewAnimation(KindAlphaMax, time.Second, nil, CompleteNone, nil))
	r.Start(NewAnimation(KindOffsetToStart, time.Second, nil, CompleteScaleDown, nil))
	r.CancelAll()
	assert.False(t, r.HasActive())
	assert.Empty(t, r.Tick(time.Unix(10, 0)))
}

func TestRegistryOnActiveChange(t *testing.T) {
	r := NewAnimationRegistry()
	var changes []bool
	r.OnActiveChange(func(active bool) { changes = append(changes, active) })

	now := time.Unix(0, 0)
	r.Start(NewAnimation(KindScaleUp, 100*time.Millisecond, EaseLinear, CompleteNone, nil))
	r.Start(NewAnimation(KindAlphaMax, 100*time.Millisecond, EaseLinear, CompleteNone, nil))
	r.Tick(now)
	r.Tick(now.Add(100 * time.Millisecond))
	assert.Equal(t, []bool{true, false}, changes)

	r.Start(NewAnimation(KindScaleDown, time.Second, EaseLinear, CompleteNone, nil))
	r.CancelAll()
	assert.Equal(t, []bool{true, false, true, false}, changes)
}

func TestRegistryPending(t *testing.T) {
	r := NewAnimationRegistry()
	assert.False(t, r.Pending(CompleteRefresh))

	r.Start(NewAnimation(KindScaleDown, time.Second, EaseLinear, CompleteRefresh, nil))
	r.Start(NewAnimation(KindAlphaMax, time.Second, EaseLinear, CompleteNone, nil))
	assert.True(t, r.Pending(CompleteRefresh))
	assert.False(t, r.Pending(CompleteScaleDown))

	r.CancelAll()
	assert.False(t, r.Pending(CompleteRefresh))
}
