// Package swipy is a bidirectional swipe-to-refresh controller. A host
// forwards touch events, layout passes and animation frames to a Controller,
// which drags a progress indicator in from the top or bottom edge and fires
// a refresh callback when the swipe travels past the trigger distance.
package swipy

import "github.com/agiangrant/swipy/refresh"

// Controller is a re-export of refresh.Controller for consumer convenience.
type Controller = refresh.Controller

// Config tunes gesture thresholds and animation timings.
// This is a re-export of refresh.Config for consumer convenience.
type Config = refresh.Config

// Direction selects the edge(s) a swipe may start from.
type Direction = refresh.Direction

const (
	// DirectionTop accepts pull-down swipes only.
	DirectionTop = refresh.DirectionTop

	// DirectionBottom accepts pull-up swipes only.
	DirectionBottom = refresh.DirectionBottom

	// DirectionBoth resolves the edge from the first movement of each gesture.
	DirectionBoth = refresh.DirectionBoth
)

// Collaborators the host implements.
type (
	ScrollQuery = refresh.ScrollQuery
	Layout      = refresh.Layout
	Indicator   = refresh.Indicator
	Size        = refresh.Size
)

// Touch input.
type (
	TouchEvent  = refresh.TouchEvent
	TouchAction = refresh.TouchAction
	Pointer     = refresh.Pointer
)

const (
	ActionDown        = refresh.ActionDown
	ActionMove        = refresh.ActionMove
	ActionUp          = refresh.ActionUp
	ActionCancel      = refresh.ActionCancel
	ActionPointerDown = refresh.ActionPointerDown
	ActionPointerUp   = refresh.ActionPointerUp
)

// Option configures a Controller.
type Option = refresh.Option

// New creates a controller for one scrollable child.
func New(scroll ScrollQuery, layout Layout, indicator Indicator, opts ...Option) *Controller {
	return refresh.New(scroll, layout, indicator, opts...)
}

// NewTouchEvent returns a pooled event; call Release when done with it.
func NewTouchEvent(action TouchAction, actionIndex int, pointers ...Pointer) *TouchEvent {
	return refresh.NewTouchEvent(action, actionIndex, pointers...)
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return refresh.DefaultConfig()
}

// LoadConfig reads a TOML or YAML config file. A missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	return refresh.LoadConfig(path)
}

var (
	WithConfig    = refresh.WithConfig
	WithLogger    = refresh.WithLogger
	WithOnRefresh = refresh.WithOnRefresh
)
