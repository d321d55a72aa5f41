package refresh

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid refresh config")

// Config holds every tuning knob of the controller.
// Zero values are not defaults; start from DefaultConfig.
type Config struct {
	// Direction is 0 (top), 1 (bottom) or 2 (both). Unknown values mean both.
	Direction int `toml:"direction" yaml:"direction"`

	// Density converts dp values to pixels.
	Density float64 `toml:"density" yaml:"density"`

	TouchSlopDP              float64 `toml:"touch_slop_dp" yaml:"touch_slop_dp"`
	MaxSwipeDistanceFactor   float64 `toml:"max_swipe_distance_factor" yaml:"max_swipe_distance_factor"`
	RefreshTriggerDistanceDP float64 `toml:"refresh_trigger_distance_dp" yaml:"refresh_trigger_distance_dp"`
	// Resting distance of the spinner from its edge while refreshing.
	SpinnerTargetDP float64 `toml:"spinner_target_dp" yaml:"spinner_target_dp"`

	DragRate         float64 `toml:"drag_rate" yaml:"drag_rate"`
	DeadZone         float64 `toml:"dead_zone" yaml:"dead_zone"`
	MaxProgressAngle float64 `toml:"max_progress_angle" yaml:"max_progress_angle"`

	MaxAlpha      int `toml:"max_alpha" yaml:"max_alpha"`
	StartingAlpha int `toml:"starting_alpha" yaml:"starting_alpha"`

	// Durations in milliseconds
	MediumAnimationMs  int `toml:"medium_animation_ms" yaml:"medium_animation_ms"`
	ScaleDownMs        int `toml:"scale_down_ms" yaml:"scale_down_ms"`
	AlphaAnimationMs   int `toml:"alpha_animation_ms" yaml:"alpha_animation_ms"`
	AnimateToTriggerMs int `toml:"animate_to_trigger_ms" yaml:"animate_to_trigger_ms"`
	AnimateToStartMs   int `toml:"animate_to_start_ms" yaml:"animate_to_start_ms"`

	DecelerateFactor float64 `toml:"decelerate_factor" yaml:"decelerate_factor"`
	// Easing name for scale animations, see EasingByName.
	ScaleEasing string `toml:"scale_easing" yaml:"scale_easing"`

	// ScaleMode grows the indicator with the drag instead of sliding it in
	// at full size.
	ScaleMode bool `toml:"scale_mode" yaml:"scale_mode"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Direction:                int(DirectionTop),
		Density:                  1,
		TouchSlopDP:              8,
		MaxSwipeDistanceFactor:   0.6,
		RefreshTriggerDistanceDP: 120,
		SpinnerTargetDP:          64,
		DragRate:                 0.5,
		DeadZone:                 0.4,
		MaxProgressAngle:         0.8,
		MaxAlpha:                 255,
		StartingAlpha:            76, // 30% of MaxAlpha
		MediumAnimationMs:        400,
		ScaleDownMs:              150,
		AlphaAnimationMs:         300,
		AnimateToTriggerMs:       200,
		AnimateToStartMs:         200,
		DecelerateFactor:         2,
		ScaleEasing:              "accelerate-decelerate",
	}
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Density <= 0:
		return fmt.Errorf("%w: density must be positive, got %v", ErrInvalidConfig, c.Density)
	case c.DeadZone < 0 || c.DeadZone >= 1:
		return fmt.Errorf("%w: dead_zone must be in [0,1), got %v", ErrInvalidConfig, c.DeadZone)
	case c.DragRate <= 0:
		return fmt.Errorf("%w: drag_rate must be positive, got %v", ErrInvalidConfig, c.DragRate)
	case c.MaxSwipeDistanceFactor <= 0 || c.RefreshTriggerDistanceDP <= 0:
		return fmt.Errorf("%w: trigger distance must be positive", ErrInvalidConfig)
	case c.StartingAlpha < 0 || c.MaxAlpha > 255 || c.StartingAlpha > c.MaxAlpha:
		return fmt.Errorf("%w: alpha values must satisfy 0 <= starting <= max <= 255", ErrInvalidConfig)
	case c.MediumAnimationMs <= 0 || c.ScaleDownMs <= 0 || c.AlphaAnimationMs <= 0 ||
		c.AnimateToTriggerMs <= 0 || c.AnimateToStartMs <= 0:
		return fmt.Errorf("%w: animation durations must be positive", ErrInvalidConfig)
	case c.DecelerateFactor <= 0:
		return fmt.Errorf("%w: decelerate_factor must be positive, got %v", ErrInvalidConfig, c.DecelerateFactor)
	}
	return nil
}

// TouchSlop returns the drag activation distance in pixels.
func (c Config) TouchSlop() float64 { return c.TouchSlopDP * c.Density }

// SpinnerFinalOffset returns the resting distance while refreshing, in pixels.
func (c Config) SpinnerFinalOffset() float64 { return c.SpinnerTargetDP * c.Density }

// MaxTriggerDistance returns the cap on the computed trigger distance, in pixels.
func (c Config) MaxTriggerDistance() float64 { return c.RefreshTriggerDistanceDP * c.Density }

func (c Config) scaleEasing() EasingFunc {
	if fn := EasingByName(c.ScaleEasing); fn != nil {
		return fn
	}
	return EaseLinear
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// LoadConfig loads a configuration file on top of DefaultConfig.
// A missing file yields the defaults. Files ending in .yaml or .yml are read
// as YAML, everything else as TOML.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = toml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SaveConfig writes config to path as TOML.
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// IndicatorSize selects the spinner diameter.
type IndicatorSize uint8

const (
	IndicatorDefault IndicatorSize = iota
	IndicatorLarge
)

// Diameter returns the spinner diameter in pixels.
func (s IndicatorSize) Diameter(density float64) int {
	if s == IndicatorLarge {
		return int(56 * density)
	}
	return int(40 * density)
}
