package refresh

import (
	"log/slog"
	"math"

	"github.com/agiangrant/swipy/internal/log"
)

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

//go:generate mockgen -destination=mocks/collaborators.go -package=mocks github.com/agiangrant/swipy/refresh ScrollQuery,Layout,Indicator

// ScrollQuery answers whether the wrapped scrollable child can still scroll
// toward edge (Top: content above the viewport, Bottom: content below).
type ScrollQuery interface {
	CanScrollFurther(edge Direction) bool
}

// Layout reports measured sizes. It is queried on every layout pass and on
// every frame of the offset-to-correct-position animation.
type Layout interface {
	ContainerSize() Size
	IndicatorSize() Size
}

// Indicator is the progress spinner the controller drives.
// Position is the indicator's top edge relative to the container.
type Indicator interface {
	SetAlpha(alpha int)
	Alpha() int
	SetArcSweep(sweep float64)
	SetArrowVisible(visible bool)
	SetArrowScale(scale float64)
	SetRotation(rotation float64)
	SetScale(scale float64)
	Scale() float64
	SetPosition(offset int)
	Position() int
	SetVisible(visible bool)
	Visible() bool
	Start()
	Stop()
}

// gestureSession lives from pointer-down to pointer-up/cancel.
type gestureSession struct {
	id             string
	activePointer  int
	initialDownY   float64
	initialMotionY float64
	dragging       bool
}

// offsetState outlives sessions.
type offsetState struct {
	original           int
	current            int
	originalCalculated bool
	totalDragDistance  float64 // -1 until known
	spinnerFinalOffset float64
}

// Controller is the swipe-to-refresh gesture and animation controller for
// one container. It is driven from a single UI thread: touch events, layout
// passes and animation ticks must never be delivered concurrently.
//
// Host contract: feed every event to OnInterceptTouch until it returns
// true, then feed the rest of the gesture to OnTouch. Call OnLayout after
// each measure pass and Tick once per animation frame.
type Controller struct {
	cfg    Config
	logger *slog.Logger

	scroll    ScrollQuery
	layout    Layout
	indicator Indicator
	onRefresh func(Direction)

	enabled bool

	// direction is always Top or Bottom; bothDirection remembers auto-detect.
	direction     Direction
	bothDirection bool

	session          gestureSession
	offsets          offsetState
	refreshing       bool
	notify           bool
	returningToStart bool

	anims *AnimationRegistry

	// animation start values
	from          int
	startingScale float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithOnRefresh sets the callback fired when a swipe triggers a refresh.
func WithOnRefresh(fn func(Direction)) Option {
	return func(c *Controller) { c.onRefresh = fn }
}

// New creates a controller for one scrollable child.
func New(scroll ScrollQuery, layout Layout, indicator Indicator, opts ...Option) *Controller {
	c := &Controller{
		cfg:       DefaultConfig(),
		scroll:    scroll,
		layout:    layout,
		indicator: indicator,
		enabled:   true,
		anims:     NewAnimationRegistry(),
		session:   gestureSession{activePointer: InvalidPointer},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.WithComponent("refresh")
	}
	if err := c.cfg.Validate(); err != nil {
		c.logger.Warn("invalid config, using defaults", "error", err)
		c.cfg = DefaultConfig()
	}

	c.offsets.totalDragDistance = -1
	c.offsets.spinnerFinalOffset = c.cfg.SpinnerFinalOffset()

	if dir := DirectionFromInt(c.cfg.Direction); dir == DirectionBoth {
		c.direction = DirectionTop
		c.bothDirection = true
	} else {
		c.direction = dir
	}

	indicator.SetVisible(false)
	return c
}

// Config returns the controller's tuning.
func (c *Controller) Config() Config { return c.cfg }

// SetOnRefresh sets the callback fired when a swipe triggers a refresh.
func (c *Controller) SetOnRefresh(fn func(Direction)) { c.onRefresh = fn }

// SetEnabled turns gesture handling on or off.
func (c *Controller) SetEnabled(enabled bool) { c.enabled = enabled }

// Enabled reports whether gestures are handled.
func (c *Controller) Enabled() bool { return c.enabled }

// Direction returns the configured direction; DirectionBoth iff auto-detect is on.
func (c *Controller) Direction() Direction {
	if c.bothDirection {
		return DirectionBoth
	}
	return c.direction
}

// ActiveDirection returns the edge the current or last gesture resolved to.
func (c *Controller) ActiveDirection() Direction { return c.direction }

// SetDirection configures which edge(s) accept the gesture and moves the
// indicator to the matching resting position.
func (c *Controller) SetDirection(dir Direction) {
	if dir == DirectionBoth {
		c.bothDirection = true
	} else {
		c.bothDirection = false
		c.direction = dir
	}
	c.resetOriginalOffset()
}

// setRawDirection switches the resolved edge of an auto-detecting gesture.
func (c *Controller) setRawDirection(dir Direction) {
	if c.direction == dir {
		return
	}
	c.direction = dir
	c.resetOriginalOffset()
}

// resetOriginalOffset parks the indicator just outside the active edge.
func (c *Controller) resetOriginalOffset() {
	if c.direction == DirectionBottom {
		c.offsets.original = c.layout.ContainerSize().Height
	} else {
		c.offsets.original = -c.layout.IndicatorSize().Height
	}
	c.indicator.SetPosition(c.offsets.original)
	c.offsets.current = c.indicator.Position()
}

// SetDistanceToTriggerSync overrides the computed trigger distance, in pixels.
func (c *Controller) SetDistanceToTriggerSync(distance int) {
	c.offsets.totalDragDistance = float64(distance)
}

// TotalDragDistance returns the trigger distance, or -1 before layout.
func (c *Controller) TotalDragDistance() float64 { return c.offsets.totalDragDistance }

// CurrentOffset returns the indicator's live position.
func (c *Controller) CurrentOffset() int { return c.offsets.current }

// OriginalOffset returns the indicator's resting position.
func (c *Controller) OriginalOffset() int { return c.offsets.original }

// IsDragging reports whether a gesture has passed the touch slop.
func (c *Controller) IsDragging() bool { return c.session.dragging }

// IsReturningToStart reports whether a cancelled gesture is still settling.
func (c *Controller) IsReturningToStart() bool { return c.returningToStart }

// RequestDisallowIntercept is ignored: the container keeps intercept
// priority once armed.
func (c *Controller) RequestDisallowIntercept(bool) {}

// OnLayout is called after the host measured the container.
func (c *Controller) OnLayout() {
	c.ensureTarget()
	if !c.offsets.originalCalculated {
		c.offsets.originalCalculated = true
		c.resetOriginalOffset()
	}
}

// ensureTarget derives the trigger distance once the container has a height.
func (c *Controller) ensureTarget() {
	if c.offsets.totalDragDistance != -1 {
		return
	}
	if h := c.layout.ContainerSize().Height; h > 0 {
		c.offsets.totalDragDistance = TriggerDistance(float64(h), c.cfg.MaxSwipeDistanceFactor, c.cfg.MaxTriggerDistance())
	}
}

// triggeredOffset is where the indicator rests while refreshing. Measured
// sizes are read live because layout may still be settling.
func (c *Controller) triggeredOffset() int {
	if c.direction == DirectionBottom {
		return c.layout.ContainerSize().Height - int(c.offsets.spinnerFinalOffset)
	}
	return int(c.offsets.spinnerFinalOffset - math.Abs(float64(c.offsets.original)))
}

// moveIndicator shifts the indicator by delta and reads the authoritative
// position back.
func (c *Controller) moveIndicator(delta int) {
	c.indicator.SetPosition(c.indicator.Position() + delta)
	c.offsets.current = c.indicator.Position()
}

func (c *Controller) canChildScroll(dir Direction) bool {
	if c.scroll == nil {
		return false
	}
	return c.scroll.CanScrollFurther(dir)
}
