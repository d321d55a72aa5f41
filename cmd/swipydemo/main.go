// Command swipydemo drives a swipe-to-refresh controller from a terminal:
// mouse drags act as the touch pointer over a short list.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/agiangrant/swipy/internal/log"
	"github.com/agiangrant/swipy/refresh"
)

// defaultDensity makes the 40dp indicator one 10px terminal row.
const defaultDensity = 0.25

type options struct {
	configPath string
	direction  string
	density    float64
	densitySet bool
	logLevel   string
	logFile    string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("swipydemo", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "swipy.toml", "Tuning file (.toml, .yaml or .yml)")
	fs.StringVar(&opts.direction, "direction", "", "Swipe edge: top, bottom or both (overrides the config)")
	fs.Float64Var(&opts.density, "density", defaultDensity, "Pixels per dp; one terminal row is 10px (overrides the config)")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.logFile, "log-file", "swipydemo.log", "Log destination; the terminal belongs to the UI")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "density" {
			opts.densitySet = true
		}
	})
	return opts, nil
}

// buildConfig loads the tuning file and applies explicit flag overrides.
// Without a file the demo density replaces the stock 1px per dp.
func buildConfig(opts options) (refresh.Config, error) {
	cfg, err := refresh.LoadConfig(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.direction != "" {
		cfg.Direction = int(refresh.ParseDirection(opts.direction))
	}
	switch {
	case opts.densitySet:
		cfg.Density = opts.density
	case !fileExists(opts.configPath):
		cfg.Density = defaultDensity
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()
	log.SetupWriter(f, opts.logLevel)
	logger := log.Get()

	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}
	logger.Info("starting", "component", "swipydemo", "config", opts.configPath,
		"direction", refresh.DirectionFromInt(cfg.Direction).String(), "density", cfg.Density)

	zone.NewGlobal()
	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
