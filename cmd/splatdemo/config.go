package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfig string

// headlessFrames bounds a headless run that has no frame limit.
const headlessFrames = 600

type Size struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Config struct {
	Title         string  `toml:"title"`
	Window        Size    `toml:"window"`
	Viewport      Size    `toml:"viewport"`
	Image         string  `toml:"image"`
	Speed         float64 `toml:"speed"`
	Headless      bool    `toml:"headless"`
	Script        string  `toml:"script"`
	MaxFrames     int     `toml:"max_frames"`
	LogLevel      string  `toml:"log_level"`
	ShowFPS       bool    `toml:"show_fps"`
	Debug         bool    `toml:"debug"`
	Tween         bool    `toml:"tween"`
	ScreenshotDir string  `toml:"screenshot_dir"`
}

// loadConfig returns the embedded defaults overlaid with the file at path.
// An empty path yields the defaults.
func loadConfig(path string) (*Config, error) {
	c := &Config{}
	if err := c.Load(defaultConfig); err != nil {
		return nil, fmt.Errorf("default config: %w", err)
	}
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := c.Load(string(data)); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return c, nil
}

// Load decodes data over the current values and validates the result. Keys
// absent from data keep their previous value.
func (c *Config) Load(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport size %dx%d must be positive", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Speed <= 0 {
		return errors.New("speed must be positive")
	}
	if c.MaxFrames < 0 {
		return errors.New("max_frames must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// FrameLimit returns the number of frames to run, or 0 for no limit.
// Headless runs are always bounded, even when a script is expected to quit.
func (c *Config) FrameLimit() int {
	if c.Headless && c.MaxFrames == 0 {
		return headlessFrames
	}
	return c.MaxFrames
}
