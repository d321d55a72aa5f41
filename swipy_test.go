package swipy_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/swipy"
	"github.com/agiangrant/swipy/internal/log"
)

type staticLayout struct{}

func (staticLayout) ContainerSize() swipy.Size { return swipy.Size{Width: 400, Height: 1000} }
func (staticLayout) IndicatorSize() swipy.Size { return swipy.Size{Width: 40, Height: 40} }

type atEdge struct{}

func (atEdge) CanScrollFurther(swipy.Direction) bool { return false }

type spinner struct {
	alpha, position int
	scale           float64
	visible, active bool
}

func (s *spinner) SetAlpha(a int)        { s.alpha = a }
func (s *spinner) Alpha() int            { return s.alpha }
func (s *spinner) SetArcSweep(float64)   {}
func (s *spinner) SetArrowVisible(bool)  {}
func (s *spinner) SetArrowScale(float64) {}
func (s *spinner) SetRotation(float64)   {}
func (s *spinner) SetScale(v float64)    { s.scale = v }
func (s *spinner) Scale() float64        { return s.scale }
func (s *spinner) SetPosition(p int)     { s.position = p }
func (s *spinner) Position() int         { return s.position }
func (s *spinner) SetVisible(v bool)     { s.visible = v }
func (s *spinner) Visible() bool         { return s.visible }
func (s *spinner) Start()                { s.active = true }
func (s *spinner) Stop()                 { s.active = false }

func send(c *swipy.Controller, action swipy.TouchAction, y float32, owned bool) bool {
	ev := swipy.NewTouchEvent(action, 0, swipy.Pointer{ID: 0, Y: y})
	defer ev.Release()
	if owned {
		return c.OnTouch(ev)
	}
	return c.OnInterceptTouch(ev)
}

func TestSwipeFromBottomThroughPublicAPI(t *testing.T) {
	cfg := swipy.DefaultConfig()
	cfg.Direction = int(swipy.DirectionBottom)

	var got []swipy.Direction
	ind := &spinner{}
	c := swipy.New(atEdge{}, staticLayout{}, ind,
		swipy.WithConfig(cfg),
		swipy.WithLogger(log.Discard()),
		swipy.WithOnRefresh(func(d swipy.Direction) { got = append(got, d) }),
	)
	c.OnLayout()
	require.Equal(t, 1000, ind.position)

	send(c, swipy.ActionDown, 900, false)
	require.True(t, send(c, swipy.ActionMove, 890, false))
	// initialMotionY is 892; 892-600 = 292px of finger travel is 146px of overscroll.
	send(c, swipy.ActionMove, 600, true)
	send(c, swipy.ActionUp, 600, true)

	now := time.Unix(1700000000, 0)
	c.Tick(now)
	c.Tick(now.Add(time.Second))

	assert.Equal(t, []swipy.Direction{swipy.DirectionBottom}, got)
	assert.True(t, ind.active)
	assert.Equal(t, 1000-64, ind.position)
}
