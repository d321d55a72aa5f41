package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/swipy/refresh"
)

var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

const spinInterval = 80 * time.Millisecond

// termIndicator draws the refresh spinner as a single terminal row.
type termIndicator struct {
	alpha        int
	arcSweep     float64
	arrowVisible bool
	arrowScale   float64
	rotation     float64
	scale        float64
	position     int
	visible      bool
	spinning     bool

	frame    int
	lastSpin time.Time
}

func (i *termIndicator) SetAlpha(alpha int)        { i.alpha = alpha }
func (i *termIndicator) Alpha() int                { return i.alpha }
func (i *termIndicator) SetArcSweep(sweep float64) { i.arcSweep = sweep }
func (i *termIndicator) SetArrowVisible(v bool)    { i.arrowVisible = v }
func (i *termIndicator) SetArrowScale(s float64)   { i.arrowScale = s }
func (i *termIndicator) SetRotation(r float64)     { i.rotation = r }
func (i *termIndicator) SetScale(scale float64)    { i.scale = scale }
func (i *termIndicator) Scale() float64            { return i.scale }
func (i *termIndicator) SetPosition(offset int)    { i.position = offset }
func (i *termIndicator) Position() int             { return i.position }
func (i *termIndicator) SetVisible(visible bool)   { i.visible = visible }
func (i *termIndicator) Visible() bool             { return i.visible }
func (i *termIndicator) Start()                    { i.spinning = true }
func (i *termIndicator) Stop()                     { i.spinning = false }

// advance steps the spinner frame at most once per spinInterval.
func (i *termIndicator) advance(now time.Time) {
	if !i.spinning || now.Sub(i.lastSpin) < spinInterval {
		return
	}
	i.lastSpin = now
	i.frame++
}

// glyph picks the character for the current indicator state.
func (i *termIndicator) glyph(dir refresh.Direction) string {
	switch {
	case i.spinning:
		return spinnerFrames[i.frame%len(spinnerFrames)]
	case i.scale < 0.5:
		return "·"
	case i.arrowVisible && dir == refresh.DirectionBottom:
		if i.arrowScale >= 1 {
			return "⇡"
		}
		return "↑"
	case i.arrowVisible:
		if i.arrowScale >= 1 {
			return "⇣"
		}
		return "↓"
	}
	n := int(i.rotation*float64(len(spinnerFrames))) % len(spinnerFrames)
	if n < 0 {
		n += len(spinnerFrames)
	}
	return spinnerFrames[n]
}

// gauge renders the arc sweep as a short bar.
func (i *termIndicator) gauge(maxAngle float64) string {
	const cells = 6
	filled := 0
	if maxAngle > 0 {
		filled = int(i.arcSweep / maxAngle * cells)
	}
	if i.spinning {
		filled = cells
	}
	filled = min(max(filled, 0), cells)
	return strings.Repeat("━", filled) + strings.Repeat("─", cells-filled)
}

// render returns the styled indicator row content.
func (i *termIndicator) render(dir refresh.Direction, maxAngle float64) string {
	style := indicatorStyle.Foreground(alphaColor(i.alpha))
	if i.alpha >= 255 {
		style = style.Bold(true)
	}
	return style.Render(fmt.Sprintf(" %s %s ", i.glyph(dir), i.gauge(maxAngle)))
}

// alphaColor maps an 8-bit alpha onto the 256-color grayscale ramp.
func alphaColor(alpha int) lipgloss.Color {
	alpha = min(max(alpha, 0), 255)
	return lipgloss.Color(fmt.Sprintf("%d", 232+alpha*23/255))
}
