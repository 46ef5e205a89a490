// Package config reads the device profile: screen geometry overrides,
// fonts, key bindings and storage location.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"inkpad/app"
	"inkpad/internal/backend"
	"inkpad/internal/resources"
)

var ErrInvalid = errors.New("invalid config")

// Config is the resolved device profile.
type Config struct {
	Screen  ScreenConfig
	Fonts   map[resources.Role]resources.FontSpec
	Keys    app.KeyMap
	Storage StorageConfig
	Window  WindowConfig
}

// ScreenConfig overrides the queried geometry; zero means "ask the
// device".
type ScreenConfig struct {
	Width          int
	Height         int
	PixelsPerPoint float32
}

type StorageConfig struct {
	// Path of the state database; empty keeps state in memory.
	Path string
}

type WindowConfig struct {
	Scale float64
}

// Default returns the stock profile.
func Default() Config {
	return Config{
		Screen: ScreenConfig{PixelsPerPoint: backend.DefaultPixelsPerPoint},
		Fonts:  resources.DefaultSpecs(),
		Keys:   app.DefaultKeyMap(),
		Window: WindowConfig{Scale: 0.5},
	}
}

// PanelSize returns the simulated panel size: the configured size, or
// the stock reader resolution.
func (c Config) PanelSize() (w, h int) {
	w, h = c.Screen.Width, c.Screen.Height
	if w <= 0 || h <= 0 {
		w, h = backend.DefaultDeviceWidth, backend.DefaultDeviceHeight
	}
	return w, h
}

// Geometry returns the screen overrides as a backend geometry.
func (c Config) Geometry() backend.Geometry {
	return backend.Geometry{
		DeviceWidth:    c.Screen.Width,
		DeviceHeight:   c.Screen.Height,
		PixelsPerPoint: c.Screen.PixelsPerPoint,
	}
}

type fileConfig struct {
	Screen struct {
		Width          int     `toml:"width"`
		Height         int     `toml:"height"`
		PixelsPerPoint float32 `toml:"pixels_per_point"`
	} `toml:"screen"`
	Fonts map[string]struct {
		Name  string `toml:"name"`
		Size  int    `toml:"size"`
		Flags int    `toml:"flags"`
	} `toml:"fonts"`
	Keys struct {
		Default string            `toml:"default"`
		Map     map[string]string `toml:"map"`
	} `toml:"keys"`
	Storage struct {
		Path string `toml:"path"`
	} `toml:"storage"`
	Window struct {
		Scale float64 `toml:"scale"`
	} `toml:"window"`
}

// Load reads a TOML profile from path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a TOML profile on top of Default. Unset values keep
// their defaults.
func Parse(data []byte) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if fc.Screen.Width != 0 {
		cfg.Screen.Width = fc.Screen.Width
	}
	if fc.Screen.Height != 0 {
		cfg.Screen.Height = fc.Screen.Height
	}
	if fc.Screen.PixelsPerPoint != 0 {
		cfg.Screen.PixelsPerPoint = fc.Screen.PixelsPerPoint
	}

	for name, f := range fc.Fonts {
		role, ok := resources.ParseRole(name)
		if !ok {
			return Config{}, fmt.Errorf("%w: unknown font role %q", ErrInvalid, name)
		}
		spec := cfg.Fonts[role]
		if f.Name != "" {
			spec.Name = f.Name
		}
		if f.Size != 0 {
			spec.Size = f.Size
		}
		spec.Flags = f.Flags
		cfg.Fonts[role] = spec
	}

	if fc.Keys.Default != "" {
		a, err := app.ParseKeyAction(fc.Keys.Default)
		if err != nil {
			return Config{}, fmt.Errorf("%w: keys.default: %v", ErrInvalid, err)
		}
		cfg.Keys.Default = a
	}
	if len(fc.Keys.Map) > 0 {
		cfg.Keys.Keys = make(map[int32]app.KeyAction, len(fc.Keys.Map))
		for code, name := range fc.Keys.Map {
			c, err := strconv.ParseInt(code, 10, 32)
			if err != nil {
				return Config{}, fmt.Errorf("%w: keys.map: bad key code %q", ErrInvalid, code)
			}
			a, err := app.ParseKeyAction(name)
			if err != nil {
				return Config{}, fmt.Errorf("%w: keys.map.%s: %v", ErrInvalid, code, err)
			}
			cfg.Keys.Keys[int32(c)] = a
		}
	}

	cfg.Storage.Path = fc.Storage.Path
	if fc.Window.Scale != 0 {
		cfg.Window.Scale = fc.Window.Scale
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return fmt.Errorf("%w: negative screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.PixelsPerPoint < 0 {
		return fmt.Errorf("%w: pixels_per_point %v", ErrInvalid, c.Screen.PixelsPerPoint)
	}
	if _, ok := c.Fonts[resources.RoleRegular]; !ok {
		return fmt.Errorf("%w: no regular font", ErrInvalid)
	}
	for role, spec := range c.Fonts {
		if spec.Name == "" || spec.Size <= 0 {
			return fmt.Errorf("%w: font %s needs a name and a positive size", ErrInvalid, role)
		}
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale %v", ErrInvalid, c.Window.Scale)
	}
	return nil
}
