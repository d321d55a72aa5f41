package refresh

import (
	"math"
	"sort"
	"time"
)

// EasingFunc defines how animation progress maps to value progress.
// Input t is 0-1 (time progress), output is 0-1 (value progress).
type EasingFunc func(t float64) float64

// Common easing functions
var (
	// EaseLinear - constant speed
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	// EaseOutQuad - decelerate to zero
	EaseOutQuad EasingFunc = func(t float64) float64 { return t * (2 - t) }

	// EaseOutCubic - smooth deceleration
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}

	// EaseInOutCubic - smooth acceleration and deceleration
	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return (t-1)*(2*t-2)*(2*t-2) + 1
	}

	// EaseAccelerateDecelerate - cosine ramp, slow at both ends
	EaseAccelerateDecelerate EasingFunc = func(t float64) float64 {
		return math.Cos((t+1)*math.Pi)/2 + 0.5
	}
)

// EaseDecelerate returns an easing that starts fast and slows down.
// A factor of 1 is a quadratic ease-out; larger factors decelerate harder.
func EaseDecelerate(factor float64) EasingFunc {
	if factor == 1 {
		return EaseOutQuad
	}
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, 2*factor)
	}
}

// EasingByName returns the easing function for a given name.
// Returns nil if the name is unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-out":
		return EaseOutQuad
	case "cubic":
		return EaseOutCubic
	case "ease-in-out", "ease":
		return EaseInOutCubic
	case "accelerate-decelerate":
		return EaseAccelerateDecelerate
	case "decelerate":
		return EaseDecelerate(1)
	default:
		return nil
	}
}

// Slot groups animations that must never run concurrently.
type Slot uint8

const (
	SlotScale Slot = iota
	SlotOffset
	SlotAlpha
	slotCount
)

// primary slots drive the indicator's geometry and carry completions.
func (s Slot) primary() bool {
	return s == SlotScale || s == SlotOffset
}

// AnimationKind names one of the indicator animations.
type AnimationKind uint8

const (
	KindScaleUp AnimationKind = iota + 1
	KindScaleDown
	KindAlphaStart
	KindAlphaMax
	KindOffsetToCorrectPosition
	KindOffsetToStart
	KindScaleDownToStart
)

// Slot returns the slot the kind occupies.
func (k AnimationKind) Slot() Slot {
	switch k {
	case KindScaleUp, KindScaleDown:
		return SlotScale
	case KindAlphaStart, KindAlphaMax:
		return SlotAlpha
	default:
		return SlotOffset
	}
}

func (k AnimationKind) String() string {
	switch k {
	case KindScaleUp:
		return "scale-up"
	case KindScaleDown:
		return "scale-down"
	case KindAlphaStart:
		return "alpha-start"
	case KindAlphaMax:
		return "alpha-max"
	case KindOffsetToCorrectPosition:
		return "offset-to-correct-position"
	case KindOffsetToStart:
		return "offset-to-start"
	case KindScaleDownToStart:
		return "scale-down-to-start"
	default:
		return "unknown"
	}
}

// Completion tags what should happen once an animation finishes.
type Completion uint8

const (
	// CompleteNone - nothing.
	CompleteNone Completion = iota
	// CompleteRefresh - reveal and notify when refreshing, otherwise reset.
	CompleteRefresh
	// CompleteScaleDown - chain into a scale-down with no completion.
	CompleteScaleDown
)

// Animation is one running indicator animation.
type Animation struct {
	seq        uint64 // registration order
	kind       AnimationKind
	startTime  time.Time
	started    bool
	ended      bool
	cancelled  bool
	duration   time.Duration
	easing     EasingFunc
	update     func(progress float64) // Called each frame with eased progress 0-1
	completion Completion
}

// NewAnimation builds an animation. It is registered with AnimationRegistry.Start.
func NewAnimation(kind AnimationKind, duration time.Duration, easing EasingFunc, completion Completion, update func(progress float64)) *Animation {
	if easing == nil {
		easing = EaseLinear
	}
	return &Animation{
		kind:       kind,
		duration:   duration,
		easing:     easing,
		update:     update,
		completion: completion,
	}
}

// Kind returns the animation kind.
func (a *Animation) Kind() AnimationKind { return a.kind }

// Completion returns the completion tag.
func (a *Animation) Completion() Completion { return a.completion }

// Cancel stops the animation. Its completion never runs.
func (a *Animation) Cancel() { a.cancelled = true }

// IsCancelled returns whether the animation was cancelled.
func (a *Animation) IsCancelled() bool { return a.cancelled }

// Running reports whether the animation has received its first frame and
// has not finished or been cancelled.
func (a *Animation) Running() bool {
	return a.started && !a.ended && !a.cancelled
}

// AnimationRegistry holds at most one animation per slot.
//
// The registry is driven from a single UI thread: the host calls Tick once
// per frame and nothing else touches it concurrently.
type AnimationRegistry struct {
	slots   [slotCount]*Animation
	nextSeq uint64

	onActiveChange func(hasActive bool)
}

// NewAnimationRegistry creates a new animation registry.
func NewAnimationRegistry() *AnimationRegistry {
	return &AnimationRegistry{}
}

// OnActiveChange sets the callback for when animations become active/inactive.
func (r *AnimationRegistry) OnActiveChange(fn func(hasActive bool)) {
	r.onActiveChange = fn
}

// notifyActive reports a transition between idle and animating.
func (r *AnimationRegistry) notifyActive(wasActive bool) {
	if r.onActiveChange == nil {
		return
	}
	if isActive := r.HasActive(); isActive != wasActive {
		r.onActiveChange(isActive)
	}
}

// Start registers anim, replacing whatever holds its slot. Starting a scale
// or offset animation also cancels the other geometry animation so that only
// one completion is ever pending.
func (r *AnimationRegistry) Start(anim *Animation) {
	defer r.notifyActive(r.HasActive())

	slot := anim.kind.Slot()
	if slot.primary() {
		r.cancelSlot(SlotScale)
		r.cancelSlot(SlotOffset)
	} else {
		r.cancelSlot(slot)
	}
	r.nextSeq++
	anim.seq = r.nextSeq
	r.slots[slot] = anim
}

func (r *AnimationRegistry) cancelSlot(s Slot) {
	if a := r.slots[s]; a != nil {
		a.Cancel()
		r.slots[s] = nil
	}
}

// CancelAll cancels every registered animation.
func (r *AnimationRegistry) CancelAll() {
	defer r.notifyActive(r.HasActive())
	for s := Slot(0); s < slotCount; s++ {
		r.cancelSlot(s)
	}
}

// Running reports whether an animation of kind is in flight.
func (r *AnimationRegistry) Running(kind AnimationKind) bool {
	a := r.slots[kind.Slot()]
	return a != nil && a.kind == kind && a.Running()
}

// Current returns the animation occupying slot, or nil.
func (r *AnimationRegistry) Current(s Slot) *Animation {
	return r.slots[s]
}

// Pending reports whether a registered, uncancelled animation carries
// completion.
func (r *AnimationRegistry) Pending(completion Completion) bool {
	for _, a := range r.slots {
		if a != nil && !a.cancelled && a.completion == completion {
			return true
		}
	}
	return false
}

// HasActive returns true if there are any registered animations.
func (r *AnimationRegistry) HasActive() bool {
	return r.Count() > 0
}

// Count returns the number of registered animations.
func (r *AnimationRegistry) Count() int {
	n := 0
	for _, a := range r.slots {
		if a != nil {
			n++
		}
	}
	return n
}

// Tick advances every animation to now and returns those that finished on
// this frame, oldest first. An animation's clock starts at the first Tick
// after it was registered; the final frame is always applied at progress 1.
// The caller runs completions after Tick returns, so they may start new
// animations.
func (r *AnimationRegistry) Tick(now time.Time) []*Animation {
	defer r.notifyActive(r.HasActive())

	var active []*Animation
	for _, a := range r.slots {
		if a != nil {
			active = append(active, a)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].seq < active[j].seq })

	var done []*Animation
	for _, a := range active {
		if a.cancelled {
			continue
		}
		if !a.started {
			a.started = true
			a.startTime = now
		}

		t := 1.0
		if a.duration > 0 {
			t = float64(now.Sub(a.startTime)) / float64(a.duration)
		}
		t = clamp(t, 0, 1)

		if a.update != nil {
			a.update(a.easing(t))
		}
		if t >= 1 {
			a.ended = true
			if r.slots[a.kind.Slot()] == a {
				r.slots[a.kind.Slot()] = nil
			}
			done = append(done, a)
		}
	}
	return done
}

// clamp restricts a value to a range.
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
