package refresh

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/agiangrant/swipy/internal/log"
)

// fakeIndicator records whatever the controller pushes to it.
type fakeIndicator struct {
	alpha        int
	arcSweep     float64
	arrowVisible bool
	arrowScale   float64
	rotation     float64
	scale        float64
	position     int
	visible      bool
	spinning     bool
	starts       int
	stops        int

	panicOnRotation bool
}

func (f *fakeIndicator) SetAlpha(a int)          { f.alpha = a }
func (f *fakeIndicator) Alpha() int              { return f.alpha }
func (f *fakeIndicator) SetArcSweep(s float64)   { f.arcSweep = s }
func (f *fakeIndicator) SetArrowVisible(v bool)  { f.arrowVisible = v }
func (f *fakeIndicator) SetArrowScale(s float64) { f.arrowScale = s }
func (f *fakeIndicator) SetScale(s float64)      { f.scale = s }
func (f *fakeIndicator) Scale() float64          { return f.scale }
func (f *fakeIndicator) SetPosition(p int)       { f.position = p }
func (f *fakeIndicator) Position() int           { return f.position }
func (f *fakeIndicator) SetVisible(v bool)       { f.visible = v }
func (f *fakeIndicator) Visible() bool           { return f.visible }
func (f *fakeIndicator) Start()                  { f.spinning = true; f.starts++ }
func (f *fakeIndicator) Stop()                   { f.spinning = false; f.stops++ }
func (f *fakeIndicator) SetRotation(r float64) {
	if f.panicOnRotation {
		panic("rotation sink exploded")
	}
	f.rotation = r
}

type fakeLayout struct {
	container Size
	indicator Size
}

func (l *fakeLayout) ContainerSize() Size { return l.container }
func (l *fakeLayout) IndicatorSize() Size { return l.indicator }

// fakeScroll reports whether the child can still scroll toward an edge.
type fakeScroll struct {
	top, bottom bool
	queries     int
}

func (s *fakeScroll) CanScrollFurther(edge Direction) bool {
	s.queries++
	if edge == DirectionBottom {
		return s.bottom
	}
	return s.top
}

type harness struct {
	c         *Controller
	ind       *fakeIndicator
	layout    *fakeLayout
	scroll    *fakeScroll
	refreshes []Direction
	logs      *bytes.Buffer
	now       time.Time
}

// newHarness builds a laid-out controller: 1000px container, 40px indicator,
// density 1, so the trigger distance is 120px and the slop 8px.
func newHarness(cfg Config) *harness {
	h := &harness{
		ind:    &fakeIndicator{},
		layout: &fakeLayout{container: Size{Width: 400, Height: 1000}, indicator: Size{Width: 40, Height: 40}},
		scroll: &fakeScroll{},
		logs:   &bytes.Buffer{},
		now:    time.Unix(1700000000, 0),
	}
	logger := slog.New(slog.NewJSONHandler(h.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	h.c = New(h.scroll, h.layout, h.ind,
		WithConfig(cfg),
		WithLogger(logger),
		WithOnRefresh(func(d Direction) { h.refreshes = append(h.refreshes, d) }),
	)
	h.c.OnLayout()
	return h
}

func touch(action TouchAction, y float32) *TouchEvent {
	return NewTouchEvent(action, 0, Pointer{ID: 0, Y: y})
}

func (h *harness) intercept(action TouchAction, y float32) bool {
	ev := touch(action, y)
	defer ev.Release()
	return h.c.OnInterceptTouch(ev)
}

func (h *harness) touch(action TouchAction, y float32) bool {
	ev := touch(action, y)
	defer ev.Release()
	return h.c.OnTouch(ev)
}

// drag arms a gesture from downY, crossing the slop at slopY, then follows
// with OnTouch moves through ys.
func (h *harness) drag(downY, slopY float32, ys ...float32) bool {
	h.intercept(ActionDown, downY)
	intercepted := h.intercept(ActionMove, slopY)
	for _, y := range ys {
		h.touch(ActionMove, y)
	}
	return intercepted
}

// advance ticks the controller by d.
func (h *harness) advance(d time.Duration) bool {
	h.now = h.now.Add(d)
	return h.c.Tick(h.now)
}

// settle ticks until no animation remains.
func (h *harness) settle() {
	h.c.Tick(h.now)
	for i := 0; i < 20 && h.advance(100*time.Millisecond); i++ {
	}
}

func discardLogger() *slog.Logger { return log.Discard() }
