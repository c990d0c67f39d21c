// Package config loads visualizer settings from TOML files.
//
// A file only needs to name the settings it changes; everything else keeps
// its default. For example:
//
//	shape = "irregular"
//	particles = 5
//
//	[irregular]
//	amplitude = 0.4
//	control_points = 8
//
// Counts may also be given as strings. A count that isn't valid, such as
// "abc", falls back to its default.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"honnef.co/go/bounce"
)

// Config holds the parameters of a visualizer session.
type Config struct {
	Shape     string        `toml:"shape"`     // rectangle, circle, ellipse or irregular
	Particles ParticleCount `toml:"particles"` // particles per batch
	Speed     float64       `toml:"speed"`     // unit: canvas units/tick

	// Seed seeds irregular boundaries; SpawnSeed seeds spawn positions, 0
	// meaning a different run every time.
	Seed      uint32 `toml:"seed"`
	SpawnSeed uint64 `toml:"spawn_seed"`

	Sound bool `toml:"sound"` // click on every bounce
	FPS   int  `toml:"fps"`   // ticks per second of the terminal UI

	Canvas    Canvas    `toml:"canvas"`
	Ellipse   Ellipse   `toml:"ellipse"`
	Irregular Irregular `toml:"irregular"`
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Ellipse struct {
	RadiusX float64 `toml:"radius_x"`
	RadiusY float64 `toml:"radius_y"`
}

type Irregular struct {
	Amplitude     float64           `toml:"amplitude"`
	ControlPoints ControlPointCount `toml:"control_points"`
}

// ParticleCount is a number of particles given as a TOML integer or string,
// or as a command-line flag. Anything that isn't a positive integer means 1.
type ParticleCount int

func (n ParticleCount) String() string { return strconv.Itoa(int(n)) }

// Set implements flag.Value. It never fails.
func (n *ParticleCount) Set(s string) error {
	*n = ParticleCount(bounce.ParseParticleCount(s))
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (n *ParticleCount) UnmarshalTOML(v any) error {
	return n.Set(fmt.Sprint(v))
}

// ControlPointCount is like ParticleCount for the control points of
// irregular boundaries. Anything that isn't an integer of at least 3 means 12.
type ControlPointCount int

func (n ControlPointCount) String() string { return strconv.Itoa(int(n)) }

// Set implements flag.Value. It never fails.
func (n *ControlPointCount) Set(s string) error {
	*n = ControlPointCount(bounce.ParseControlPointCount(s))
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (n *ControlPointCount) UnmarshalTOML(v any) error {
	return n.Set(fmt.Sprint(v))
}

// DefaultFPS is the frame rate of the terminal UI.
const DefaultFPS = 60

// Default returns the default parameters.
func Default() *Config {
	return &Config{
		Shape:     bounce.ShapeRectangle.String(),
		Particles: bounce.DefaultParticles,
		Speed:     bounce.DefaultSpeed,
		Seed:      bounce.DefaultSeed,
		FPS:       DefaultFPS,
		Canvas: Canvas{
			Width:  bounce.DefaultCanvas.Width,
			Height: bounce.DefaultCanvas.Height,
		},
		Ellipse: Ellipse{
			RadiusX: bounce.DefaultEllipseRadii.X,
			RadiusY: bounce.DefaultEllipseRadii.Y,
		},
		Irregular: Irregular{
			Amplitude:     bounce.DefaultAmplitude,
			ControlPoints: bounce.DefaultControlPoints,
		},
	}
}

// Load parses the TOML config file whose path is provided. Settings missing
// from the file keep their defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return conf, conf.Validate()
}

// Parse is like Load but reads the configuration from a string.
func Parse(data string) (*Config, error) {
	conf := Default()
	md, err := toml.Decode(data, conf)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return conf, conf.Validate()
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown config keys: %s", strings.Join(names, ", "))
}

// Validate replaces out-of-range values with their defaults, the way the
// visualizer treats bad input. The only error is an unknown shape name.
func (c *Config) Validate() error {
	def := Default()
	if c.Particles <= 0 {
		c.Particles = def.Particles
	}
	if !(c.Speed > 0) {
		c.Speed = def.Speed
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if !(c.Canvas.Width > 0) || !(c.Canvas.Height > 0) {
		c.Canvas = def.Canvas
	}
	if !(c.Ellipse.RadiusX > 0) {
		c.Ellipse.RadiusX = def.Ellipse.RadiusX
	}
	if !(c.Ellipse.RadiusY > 0) {
		c.Ellipse.RadiusY = def.Ellipse.RadiusY
	}
	if c.Irregular.ControlPoints < 3 {
		c.Irregular.ControlPoints = def.Irregular.ControlPoints
	}
	shape, err := bounce.ParseShape(c.Shape)
	if err != nil {
		return err
	}
	c.Shape = shape.String()
	return nil
}

// Options returns the simulation options described by c. c should have been
// validated; an unknown shape yields a rectangle.
func (c *Config) Options() bounce.Options {
	shape, _ := bounce.ParseShape(c.Shape)
	return bounce.Options{
		Canvas:        bounce.Sz(c.Canvas.Width, c.Canvas.Height),
		Shape:         shape,
		Particles:     int(c.Particles),
		Speed:         c.Speed,
		EllipseRadii:  bounce.Vec(c.Ellipse.RadiusX, c.Ellipse.RadiusY),
		Amplitude:     c.Irregular.Amplitude,
		ControlPoints: int(c.Irregular.ControlPoints),
		Seed:          c.Seed,
		SpawnSeed:     c.SpawnSeed,
	}
}
