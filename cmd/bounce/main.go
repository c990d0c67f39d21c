// Command bounce runs the particle bounce visualizer.
//
// # Usage
//
//	bounce [flags]
//
// Without -svg, an interactive simulation runs in the terminal. With -svg,
// the simulation runs headless for the number of ticks given by -frames and
// the final frame is written as an SVG document.
//
// Counts given to -particles and -control-points that aren't valid fall back
// to 1 particle and 12 control points.
//
// # Config file
//
// Settings can be read from a TOML file with -config; flags given on the
// command line override the file. See package config for the keys.
//
// # Interactive mode
//
// Space pauses and resumes the animation; while paused, s performs a single
// step. The keys 1 to 4 select the rectangle, circle, ellipse and irregular
// boundaries, and r respawns the particles. + and - change the speed, ] and
// [ the number of particles. e/E and h/H shrink and grow the ellipse's radii,
// a/A and c/C change the amplitude and number of control points of the
// irregular boundary, and g generates a new one. Control points can be
// dragged with the mouse. q, Esc or Ctrl-C quit.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/bounce"
	"honnef.co/go/bounce/audio"
	"honnef.co/go/bounce/config"
	"honnef.co/go/bounce/svg"
	"honnef.co/go/bounce/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bounce: ")

	var (
		configPath = flag.String("config", "", "read settings from TOML `file`")
		svgPath    = flag.String("svg", "", "run headless and write the final frame to `file` (- for stdout)")
		frames     = flag.Int("frames", 600, "`ticks` to simulate before writing -svg")
		precision  = flag.Int("precision", 2, "decimal `digits` of SVG coordinates")
		logPath    = flag.String("log", "", "append log messages to `file`")
	)
	var over overrides
	over.register(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: bounce [flags]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		Fatal(fmt.Errorf("unexpected arguments: %q", flag.Args()))
	}

	conf := config.Default()
	if *configPath != "" {
		var err error
		conf, err = config.Load(*configPath)
		if err != nil {
			Fatal(err)
		}
	}
	over.apply(flag.CommandLine, conf)
	if err := conf.Validate(); err != nil {
		Fatal(err)
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sim := bounce.New(conf.Options())
	var err error
	if *svgPath != "" {
		err = runSVG(sim, *svgPath, *frames, svg.Options{MaxPrecision: *precision})
	} else {
		err = runTerminal(conf, sim, *logPath == "")
	}
	if err != nil {
		Fatal(err)
	}
}

// overrides are the settings that can be given both in the config file and
// on the command line. The command line wins.
type overrides struct {
	shape     string
	particles config.ParticleCount
	controls  config.ControlPointCount
	speed     float64
	seed      uint
	spawnSeed uint64
	sound     bool
}

func (o *overrides) register(fs *flag.FlagSet) {
	fs.StringVar(&o.shape, "shape", "", "boundary `shape`: rectangle, circle, ellipse or irregular")
	fs.Var(&o.particles, "particles", "`number` of particles per batch; invalid counts mean 1")
	fs.Var(&o.controls, "control-points", "`number` of control points of the irregular boundary; invalid counts mean 12")
	fs.Float64Var(&o.speed, "speed", 0, "particle `speed` in canvas units per tick")
	fs.UintVar(&o.seed, "seed", 0, "`seed` of the irregular boundary")
	fs.Uint64Var(&o.spawnSeed, "spawn-seed", 0, "`seed` of spawn positions; 0 picks one from the clock")
	fs.BoolVar(&o.sound, "sound", false, "click on every bounce")
}

// apply copies the overrides that were set on fs into conf.
func (o *overrides) apply(fs *flag.FlagSet, conf *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "shape":
			conf.Shape = o.shape
		case "particles":
			conf.Particles = o.particles
		case "control-points":
			conf.Irregular.ControlPoints = o.controls
		case "speed":
			conf.Speed = o.speed
		case "seed":
			conf.Seed = uint32(o.seed)
		case "spawn-seed":
			conf.SpawnSeed = o.spawnSeed
		case "sound":
			conf.Sound = o.sound
		}
	})
}

// Fatal prints an error on the standard error and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// runSVG advances sim by the given number of ticks and writes the final frame
// to path.
func runSVG(sim *bounce.Simulation, path string, frames int, opts svg.Options) error {
	for range frames {
		sim.Step()
	}
	log.Printf("simulated %d ticks of %d particles in a %s", sim.Ticks(), sim.ParticleCount(), sim.Shape())

	if path == "-" {
		return svg.Render(os.Stdout, sim, opts)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := svg.Render(f, sim, opts); err != nil {
		f.Close()
		return fmt.Errorf("couldn't write %s: %w", path, err)
	}
	return f.Close()
}

// runTerminal runs the interactive visualizer until the user quits. If
// holdLogs is set, log messages are held back until the terminal is restored.
func runTerminal(conf *config.Config, sim *bounce.Simulation, holdLogs bool) error {
	if holdLogs {
		var held bytes.Buffer
		log.SetOutput(&held)
		defer func() {
			log.SetOutput(os.Stderr)
			io.Copy(os.Stderr, &held)
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("couldn't initialize terminal: %w", err)
	}
	defer screen.Fini()

	var clicker term.Clicker
	if conf.Sound {
		// Non-fatal, the visualizer can run without sound.
		c, err := audio.NewClicker()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer c.Close()
			clicker = c
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := term.New(screen, sim, term.Options{FPS: conf.FPS, Clicker: clicker})
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
