package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/pelletier/go-toml/v2"

	"github.com/agiangrant/swipy/refresh"
)

const (
	// pxPerRow converts terminal rows into controller pixels.
	pxPerRow = 10

	headerRows = 1
	footerRows = 2

	frameInterval = 16 * time.Millisecond

	// dismissAfter is how long the demo pretends a refresh takes.
	dismissAfter = 2000 * time.Millisecond
)

var rows = []string{
	"Pull down from the top edge",
	"or pull up from the bottom.",
	"Drag with the left button",
	"held down, then let go",
	"once the arrow thickens.",
	"The wheel scrolls the list",
	"when it is taller than",
	"the terminal.",
	"t, b and a pick the edge,",
	"r starts a refresh by hand,",
	"y copies the tuning as TOML.",
	"A refresh settles",
	"by itself after",
	"two seconds.",
	"q quits.",
}

type (
	frameMsg   time.Time
	dismissMsg int
)

type button struct {
	id    string
	label string
}

var buttons = []button{
	{id: "dir-top", label: "Top"},
	{id: "dir-bottom", label: "Bottom"},
	{id: "dir-both", label: "Both"},
	{id: "refresh", label: "Refresh"},
}

// model hosts one refresh controller over a scrollable list.
type model struct {
	cfg    refresh.Config
	logger *slog.Logger

	ctrl *refresh.Controller
	ind  *termIndicator
	list viewport.Model

	width, height int

	// pressed is set while the left button is held inside the list; owned
	// once the controller intercepted that gesture.
	pressed bool
	owned   bool

	animating  bool
	ticking    bool
	dismissGen int
	pending    []tea.Cmd

	status string
}

// newModel builds the demo around logger; components tag their own records.
func newModel(cfg refresh.Config, logger *slog.Logger) *model {
	m := &model{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "swipydemo")),
		ind:    &termIndicator{},
		list:   viewport.New(0, 0),
		status: "idle",
	}
	m.list.SetContent(renderRows())
	m.ctrl = refresh.New(m, m, m.ind,
		refresh.WithConfig(cfg),
		refresh.WithLogger(logger.With(slog.String("component", "refresh"))),
		refresh.WithOnRefresh(m.onRefresh),
	)
	m.ctrl.OnAnimatingChange(func(animating bool) { m.animating = animating })
	return m
}

func renderRows() string {
	out := make([]string, 0, len(rows))
	for i, text := range rows {
		out = append(out, rowStyle.Render(rowNumberStyle.Render(fmt.Sprintf("%2d", i+1))+text))
	}
	return strings.Join(out, "\n")
}

// CanScrollFurther reports whether the list can still scroll toward edge.
func (m *model) CanScrollFurther(edge refresh.Direction) bool {
	if edge == refresh.DirectionBottom {
		return !m.list.AtBottom()
	}
	return !m.list.AtTop()
}

// ContainerSize is the list area in controller pixels.
func (m *model) ContainerSize() refresh.Size {
	return refresh.Size{Width: m.list.Width * pxPerRow, Height: m.list.Height * pxPerRow}
}

// IndicatorSize is the spinner diameter in controller pixels.
func (m *model) IndicatorSize() refresh.Size {
	d := refresh.IndicatorDefault.Diameter(m.cfg.Density)
	return refresh.Size{Width: d, Height: d}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.setDirection(refresh.DirectionTop)
		case "b":
			m.setDirection(refresh.DirectionBottom)
		case "a":
			m.setDirection(refresh.DirectionBoth)
		case "r":
			m.startRefresh()
		case "y":
			m.copyConfig()
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		now := time.Time(msg)
		m.ticking = false
		m.ind.advance(now)
		m.ctrl.Tick(now)

	case dismissMsg:
		if int(msg) == m.dismissGen && m.ctrl.IsRefreshing() {
			m.ctrl.SetRefreshing(false)
			m.status = "idle"
		}
	}

	return m, m.flush()
}

// flush collects commands queued by callbacks and keeps the frame clock
// running while anything moves.
func (m *model) flush() tea.Cmd {
	cmds := m.pending
	m.pending = nil
	if (m.animating || m.ind.spinning) && !m.ticking {
		m.ticking = true
		cmds = append(cmds, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) }))
	}
	return tea.Batch(cmds...)
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.list.Width = width
	m.list.Height = max(height-headerRows-footerRows, 1)
	m.ctrl.OnLayout()
	if !m.ctrl.IsRefreshing() && !m.ctrl.IsDragging() {
		// Re-park the indicator against the resized edge.
		m.ctrl.SetDirection(m.ctrl.Direction())
	}
}

func (m *model) setDirection(dir refresh.Direction) {
	m.ctrl.SetDirection(dir)
	m.logger.Info("direction changed", "direction", dir.String())
}

func (m *model) startRefresh() {
	if m.ctrl.IsRefreshing() {
		return
	}
	m.ctrl.SetRefreshing(true)
	m.status = "refreshing"
	m.scheduleDismiss()
}

func (m *model) onRefresh(dir refresh.Direction) {
	m.logger.Info("refresh triggered", "direction", dir.String())
	m.status = "refreshing from the " + dir.String()
	m.scheduleDismiss()
}

func (m *model) scheduleDismiss() {
	m.dismissGen++
	gen := m.dismissGen
	m.pending = append(m.pending, tea.Tick(dismissAfter, func(time.Time) tea.Msg { return dismissMsg(gen) }))
}

func (m *model) copyConfig() {
	data, err := toml.Marshal(m.cfg)
	if err == nil {
		err = clipboard.WriteAll(string(data))
	}
	if err != nil {
		m.logger.Warn("failed to copy config", "error", err)
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "tuning copied"
}

// handleMouse turns left-button drags inside the list into touch events and
// forwards the wheel to the list.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		m.list, _ = m.list.Update(msg)
		return
	}

	var action refresh.TouchAction
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.inList(msg.Y) {
			return
		}
		m.pressed = true
		action = refresh.ActionDown
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		action = refresh.ActionMove
	case tea.MouseActionRelease:
		if !m.pressed {
			m.clickButton(msg)
			return
		}
		m.pressed = false
		action = refresh.ActionUp
	default:
		return
	}

	ev := refresh.NewTouchEvent(action, 0, refresh.Pointer{
		ID: 0,
		X:  float32(msg.X * pxPerRow),
		Y:  float32((msg.Y - headerRows) * pxPerRow),
	})
	m.dispatch(ev)
}

// dispatch follows the intercept-then-touch host contract.
func (m *model) dispatch(ev *refresh.TouchEvent) {
	defer ev.Release()

	if m.owned {
		m.ctrl.OnTouch(ev)
	} else if m.ctrl.OnInterceptTouch(ev) {
		m.owned = true
	}
	if ev.Action == refresh.ActionUp || ev.Action == refresh.ActionCancel {
		m.owned = false
	}
}

func (m *model) inList(y int) bool {
	return y >= headerRows && y < headerRows+m.list.Height
}

func (m *model) clickButton(msg tea.MouseMsg) {
	for _, b := range buttons {
		if !zone.Get(b.id).InBounds(msg) {
			continue
		}
		switch b.id {
		case "dir-top":
			m.setDirection(refresh.DirectionTop)
		case "dir-bottom":
			m.setDirection(refresh.DirectionBottom)
		case "dir-both":
			m.setDirection(refresh.DirectionBoth)
		case "refresh":
			m.startRefresh()
		}
		return
	}
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := headerStyle.Width(m.width).Render("swipy")

	lines := strings.Split(m.list.View(), "\n")
	if m.ind.visible {
		center := m.ind.position + m.IndicatorSize().Height/2
		if center >= 0 {
			if row := center / pxPerRow; row < len(lines) {
				lines[row] = lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
					m.ind.render(m.ctrl.ActiveDirection(), m.cfg.MaxProgressAngle))
			}
		}
	}
	body := strings.Join(lines, "\n")

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, m.footer()))
}

func (m *model) footer() string {
	current := m.ctrl.Direction()
	views := make([]string, 0, len(buttons)+1)
	for _, b := range buttons {
		style := buttonStyle
		if b.id == "dir-"+current.String() {
			style = buttonActiveStyle
		}
		views = append(views, zone.Mark(b.id, style.Render(b.label)))
	}
	views = append(views, statusStyle.Render(m.status))
	bar := lipgloss.JoinHorizontal(lipgloss.Center, views...)
	help := helpStyle.Render("drag to refresh · wheel scrolls · t/b/a edge · r refresh · y copy tuning · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, bar, help)
}
