// Package config loads gauge groups from YAML files.
//
// A configuration file describes the theme, the group geometry, the bars
// and the drawing surface:
//
//	logging:
//	  level: info
//	theme:
//	  fg: "#cdd6f4"
//	  bg: "#1e1e2e"
//	surface:
//	  width: 200
//	  height: 24
//	layout:
//	  width: 120
//	  ticks_count: 10
//	  align: left
//	bars:
//	  - title: cpu
//	    fg: green
//	    fg_end: red
//	    value: 42
//
// Any scalar under logging, theme, surface or layout can be overridden with
// an environment variable: GAUGE_LAYOUT_WIDTH=160.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gauge"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "GAUGE"

// Config is the content of a configuration file.
type Config struct {
	Logging struct {
		Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
	} `mapstructure:"logging" yaml:"logging"`

	Theme struct {
		FG string `mapstructure:"fg" yaml:"fg"`
		BG string `mapstructure:"bg" yaml:"bg"`
	} `mapstructure:"theme" yaml:"theme"`

	// Surface is the drawing area offered to the group.
	Surface struct {
		Width  int `mapstructure:"width" yaml:"width"`
		Height int `mapstructure:"height" yaml:"height"`
	} `mapstructure:"surface" yaml:"surface"`

	Layout Layout `mapstructure:"layout" yaml:"layout"`

	Bars []Bar `mapstructure:"bars" yaml:"bars,omitempty"`
}

// Layout is the group geometry section.
type Layout struct {
	Width         int     `mapstructure:"width" yaml:"width"`
	Height        float64 `mapstructure:"height" yaml:"height"`
	Gap           int     `mapstructure:"gap" yaml:"gap"`
	BorderWidth   int     `mapstructure:"border_width" yaml:"border_width"`
	BorderPadding int     `mapstructure:"border_padding" yaml:"border_padding"`
	TicksCount    int     `mapstructure:"ticks_count" yaml:"ticks_count"`
	TicksGap      int     `mapstructure:"ticks_gap" yaml:"ticks_gap"`
	Vertical      bool    `mapstructure:"vertical" yaml:"vertical"`
	Align         string  `mapstructure:"align" yaml:"align"`
	Offset        int     `mapstructure:"offset" yaml:"offset"`
}

// Bar is one entry of the bars section. Absent keys leave the bar's
// current property untouched.
type Bar struct {
	Title       string   `mapstructure:"title" yaml:"title"`
	FG          *string  `mapstructure:"fg" yaml:"fg,omitempty"`
	BG          *string  `mapstructure:"bg" yaml:"bg,omitempty"`
	FGOff       *string  `mapstructure:"fg_off" yaml:"fg_off,omitempty"`
	BorderColor *string  `mapstructure:"border_color" yaml:"border_color,omitempty"`
	FGCenter    *string  `mapstructure:"fg_center" yaml:"fg_center,omitempty"`
	FGEnd       *string  `mapstructure:"fg_end" yaml:"fg_end,omitempty"`
	MinValue    *float64 `mapstructure:"min_value" yaml:"min_value,omitempty"`
	MaxValue    *float64 `mapstructure:"max_value" yaml:"max_value,omitempty"`
	Reverse     *bool    `mapstructure:"reverse" yaml:"reverse,omitempty"`
	Value       *float64 `mapstructure:"value" yaml:"value,omitempty"`
}

// ErrNoTitle is returned when a bars entry has an empty title.
var ErrNoTitle = errors.New("config: bar without title")

// Load reads the configuration file at path, applying defaults and
// environment overrides.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	gauge.Logger().Debug("config: loaded", "file", v.ConfigFileUsed(), "bars", len(cfg.Bars))
	return cfg, nil
}

// Default returns the configuration used when no file is given:
// defaults plus environment overrides.
func Default() (*Config, error) {
	return decode(newViper(""))
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	}
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults mirrors gauge.DefaultParams and gauge.DefaultTheme.
func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "error")

	v.SetDefault("theme.fg", "#eeeeee")
	v.SetDefault("theme.bg", "#222222")

	v.SetDefault("surface.width", 200)
	v.SetDefault("surface.height", 24)

	p := gauge.DefaultParams()
	v.SetDefault("layout.width", p.Width)
	v.SetDefault("layout.height", p.Height)
	v.SetDefault("layout.gap", p.Gap)
	v.SetDefault("layout.border_width", p.BorderWidth)
	v.SetDefault("layout.border_padding", p.BorderPadding)
	v.SetDefault("layout.ticks_count", p.TicksCount)
	v.SetDefault("layout.ticks_gap", p.TicksGap)
	v.SetDefault("layout.vertical", p.Vertical)
	v.SetDefault("layout.align", gauge.AlignLeft.String())
	v.SetDefault("layout.offset", 0)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parts of the file that cannot be corrected silently.
// Colors, ranges and other bar properties are absorbed by the group.
func (c *Config) Validate() error {
	if _, ok := gauge.ParseAlignment(c.Layout.Align); !ok {
		return fmt.Errorf("config: layout.align %q: want left, right or flex", c.Layout.Align)
	}
	if c.Surface.Width < 0 || c.Surface.Height < 0 {
		return fmt.Errorf("config: negative surface %dx%d", c.Surface.Width, c.Surface.Height)
	}
	for i, b := range c.Bars {
		if b.Title == "" {
			return fmt.Errorf("%w (bars[%d])", ErrNoTitle, i)
		}
	}
	return nil
}

// Size returns the surface as a gauge.Size.
func (c *Config) Size() gauge.Size {
	return gauge.Size{Width: c.Surface.Width, Height: c.Surface.Height}
}

// ResolveTheme resolves the theme colors with r.
func (c *Config) ResolveTheme(r gauge.ColorResolver) (gauge.Theme, error) {
	fg, err := r.ResolveColor(c.Theme.FG)
	if err != nil {
		return gauge.Theme{}, fmt.Errorf("config: theme.fg: %w", err)
	}
	bg, err := r.ResolveColor(c.Theme.BG)
	if err != nil {
		return gauge.Theme{}, fmt.Errorf("config: theme.bg: %w", err)
	}
	return gauge.Theme{FG: fg, BG: bg}, nil
}

// NewGroup creates a group with the file's theme and applies the file to it.
// opts are applied after the theme, so they may override it.
func (c *Config) NewGroup(opts ...gauge.Option) (*gauge.Group, error) {
	theme, err := c.ResolveTheme(gauge.NamedColors{})
	if err != nil {
		return nil, err
	}
	g := gauge.NewGroup(append([]gauge.Option{gauge.WithTheme(theme)}, opts...)...)
	c.Apply(g)
	return g, nil
}

// Apply pushes the layout and bars sections into g. Bars are created in
// file order; bars already in g keep their position.
func (c *Config) Apply(g *gauge.Group) {
	if a, ok := gauge.ParseAlignment(c.Layout.Align); ok {
		g.SetAlign(a)
	}
	l := c.Layout
	g.SetProperties(gauge.GroupProps{
		Gap:           &l.Gap,
		TicksCount:    &l.TicksCount,
		TicksGap:      &l.TicksGap,
		BorderPadding: &l.BorderPadding,
		BorderWidth:   &l.BorderWidth,
		Width:         &l.Width,
		Height:        &l.Height,
		Vertical:      &l.Vertical,
	})
	for _, b := range c.Bars {
		g.SetBarProperties(b.Title, gauge.BarProps{
			FG:          b.FG,
			BG:          b.BG,
			FGOff:       b.FGOff,
			BorderColor: b.BorderColor,
			FGCenter:    b.FGCenter,
			FGEnd:       b.FGEnd,
			MinValue:    b.MinValue,
			MaxValue:    b.MaxValue,
			Reverse:     b.Reverse,
		})
		if b.Value != nil {
			g.AddValue(b.Title, *b.Value)
		}
	}
}

// Encode writes cfg to w as YAML.
func Encode(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
