// Package config loads the optional YAML settings file for the calculator
// window: size, theme colors and click sound.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"pocketcalc/ui"
)

// Config is the on-disk settings document. Omitted fields keep their defaults.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Theme  ThemeConfig  `yaml:"theme"`
	Sound  SoundConfig  `yaml:"sound"`
	Trace  bool         `yaml:"trace"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
}

// ThemeConfig holds "#RRGGBB" colors.
type ThemeConfig struct {
	Background string      `yaml:"background"`
	Display    SwatchColor `yaml:"display"`
	Digit      SwatchColor `yaml:"digit"`
	Function   SwatchColor `yaml:"function"`
	Operator   SwatchColor `yaml:"operator"`
}

type SwatchColor struct {
	BG string `yaml:"bg"`
	FG string `yaml:"fg"`
}

type SoundConfig struct {
	Click  bool    `yaml:"click"`
	Volume float64 `yaml:"volume"`
}

const (
	maxDimension = 4096
	maxScale     = 8
)

var ErrInvalid = errors.New("invalid config")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  360,
			Height: 640,
			Scale:  1,
			Title:  "Calculator",
		},
		Theme: ThemeConfigFrom(ui.DefaultTheme),
		Sound: SoundConfig{
			Click:  true,
			Volume: 0.5,
		},
	}
}

// Load reads path. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of Default and validates the result.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes, volume and every theme color.
func (c Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Width > maxDimension || w.Height <= 0 || w.Height > maxDimension {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.Scale < 1 || w.Scale > maxScale {
		return fmt.Errorf("%w: window scale %d", ErrInvalid, w.Scale)
	}
	// Silence is click: false; the host treats volume 0 as unset.
	if c.Sound.Volume <= 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound volume %v (want 0 < volume <= 1)", ErrInvalid, c.Sound.Volume)
	}
	if _, err := c.Theme.Resolve(); err != nil {
		return err
	}
	return nil
}

// Marshal encodes c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Resolve parses every color into a ui.Theme.
func (t ThemeConfig) Resolve() (ui.Theme, error) {
	var th ui.Theme
	fields := []struct {
		name string
		in   string
		out  *color.RGBA
	}{
		{"background", t.Background, &th.Background},
		{"display.bg", t.Display.BG, &th.Display.BG},
		{"display.fg", t.Display.FG, &th.Display.FG},
		{"digit.bg", t.Digit.BG, &th.Digit.BG},
		{"digit.fg", t.Digit.FG, &th.Digit.FG},
		{"function.bg", t.Function.BG, &th.Function.BG},
		{"function.fg", t.Function.FG, &th.Function.FG},
		{"operator.bg", t.Operator.BG, &th.Operator.BG},
		{"operator.fg", t.Operator.FG, &th.Operator.FG},
	}
	for _, f := range fields {
		c, err := ParseColor(f.in)
		if err != nil {
			return ui.Theme{}, fmt.Errorf("%w: theme %s: %v", ErrInvalid, f.name, err)
		}
		*f.out = c
	}
	return th, nil
}

// ThemeConfigFrom renders a ui.Theme as hex colors.
func ThemeConfigFrom(th ui.Theme) ThemeConfig {
	sw := func(s ui.Swatch) SwatchColor {
		return SwatchColor{BG: FormatColor(s.BG), FG: FormatColor(s.FG)}
	}
	return ThemeConfig{
		Background: FormatColor(th.Background),
		Display:    sw(th.Display),
		Digit:      sw(th.Digit),
		Function:   sw(th.Function),
		Operator:   sw(th.Operator),
	}
}

// ParseColor accepts "#RRGGBB", "RRGGBB" or the short "#RGB" form.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}

func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
