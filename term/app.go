// Package term is an interactive terminal frontend for bounce simulations.
package term

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/bounce"
)

// Steps applied by the keyboard controls.
const (
	speedStep     = 0.5
	maxSpeed      = 20
	radiusStep    = 10
	amplitudeStep = 0.1
)

// Clicker is told about every tick on which particles hit the boundary.
type Clicker interface {
	Click(hits int)
}

// Options configures an [App].
type Options struct {
	// FPS is the number of ticks per second while playing.
	FPS int
	// Clicker, if not nil, is notified of collisions.
	Clicker Clicker
	// Paused starts the app paused.
	Paused bool
}

// App runs a simulation in a terminal: one tick and one redraw per frame,
// with keyboard controls for the simulation settings and mouse dragging of
// control points.
//
// All simulation state is owned by the goroutine calling Run.
type App struct {
	screen  tcell.Screen
	sim     *bounce.Simulation
	r       *Renderer
	clicker Clicker

	interval time.Duration
	// ticker is nil until Run starts it, and stopped while paused.
	ticker  *time.Ticker
	playing bool

	// pressed is set while mouse button 1 is held down.
	pressed bool
	hover   bool
}

// New returns an app drawing sim to screen. The screen must have been
// initialized; it is not finalized by the app.
func New(screen tcell.Screen, sim *bounce.Simulation, opts Options) *App {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	a := &App{
		screen:   screen,
		sim:      sim,
		r:        NewRenderer(screen),
		clicker:  opts.Clicker,
		interval: time.Second / time.Duration(fps),
		playing:  !opts.Paused,
	}
	a.r.Fit(sim.Canvas())
	return a
}

// Renderer returns the app's renderer.
func (a *App) Renderer() *Renderer { return a.r }

// Playing reports whether the animation is running.
func (a *App) Playing() bool { return a.playing }

// Run processes frames and input until the user quits or ctx is cancelled.
// It returns ctx's error in the latter case.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	a.ticker = time.NewTicker(a.interval)
	defer a.ticker.Stop()
	if !a.playing {
		a.ticker.Stop()
	}

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
		case <-a.ticker.C:
			a.frame()
		}
	}
}

// frame advances the simulation by one tick and redraws it.
func (a *App) frame() {
	hits := a.sim.Step()
	if hits > 0 && a.clicker != nil {
		a.clicker.Click(hits)
	}
	a.draw()
}

func (a *App) draw() {
	a.r.Draw(a.sim, a.status())
}

// redraw draws the current state right away if no frame is going to do it.
func (a *App) redraw() {
	if !a.playing {
		a.draw()
	}
}

// Pause stops the animation, leaving the simulation as it is.
func (a *App) Pause() {
	if !a.playing {
		return
	}
	a.playing = false
	if a.ticker != nil {
		a.ticker.Stop()
	}
	a.draw()
}

// Resume runs a frame immediately and restarts the animation.
func (a *App) Resume() {
	if a.playing {
		return
	}
	a.playing = true
	a.frame()
	if a.ticker != nil {
		a.ticker.Reset(a.interval)
	}
}

func (a *App) toggle() {
	if a.playing {
		a.Pause()
	} else {
		a.Resume()
	}
}

func (a *App) status() string {
	s := a.sim
	state := "paused"
	if a.playing {
		state = "playing"
	}
	parts := []string{
		fmt.Sprintf(" %s", s.Shape()),
		fmt.Sprintf("speed %g", s.Speed()),
		fmt.Sprintf("particles %d", s.ParticleCount()),
	}
	switch s.Shape() {
	case bounce.ShapeEllipse:
		r := s.EllipseRadii()
		parts = append(parts, fmt.Sprintf("radii %g×%g", r.X, r.Y))
	case bounce.ShapeIrregular:
		parts = append(parts,
			fmt.Sprintf("amplitude %.1f", s.Amplitude()),
			fmt.Sprintf("points %d", s.ControlPointCount()),
			fmt.Sprintf("seed %d", s.Seed()))
		if s.Editor().Dragging() {
			parts = append(parts, "dragging")
		} else if a.hover {
			parts = append(parts, "grab")
		}
	}
	parts = append(parts, fmt.Sprintf("tick %d", s.Ticks()), state, "q quit")
	return strings.Join(parts, " │ ")
}

// handle processes one input event. It returns false if the user asked to
// quit.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.r.Fit(a.sim.Canvas())
		a.screen.Sync()
		a.draw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	s := a.sim
	switch ch := ev.Rune(); ch {
	case 'q':
		return false
	case ' ':
		a.toggle()
		return true
	case 's':
		if !a.playing {
			a.frame()
		}
		return true
	case 'r':
		s.Reset()
	case '1', '2', '3', '4':
		s.SetShape(bounce.Shapes[ch-'1'])
	case '+', '=':
		s.SetSpeed(min(s.Speed()+speedStep, maxSpeed))
	case '-', '_':
		s.SetSpeed(max(s.Speed()-speedStep, speedStep))
	case ']':
		s.SetParticleCount(s.ParticleCount() + 1)
	case '[':
		s.SetParticleCount(s.ParticleCount() - 1)
	case 'e':
		s.SetEllipseRadii(s.EllipseRadii().X-radiusStep, 0)
	case 'E':
		s.SetEllipseRadii(s.EllipseRadii().X+radiusStep, 0)
	case 'h':
		s.SetEllipseRadii(0, s.EllipseRadii().Y-radiusStep)
	case 'H':
		s.SetEllipseRadii(0, s.EllipseRadii().Y+radiusStep)
	case 'a':
		s.SetAmplitude(max(s.Amplitude()-amplitudeStep, 0))
	case 'A':
		s.SetAmplitude(min(s.Amplitude()+amplitudeStep, 1))
	case 'c':
		s.SetControlPointCount(max(s.ControlPointCount()-1, 3))
	case 'C':
		s.SetControlPointCount(s.ControlPointCount() + 1)
	case 'g':
		s.Regenerate()
	default:
		return true
	}
	a.redraw()
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if !a.r.InCanvas(x, y) {
		if a.pressed {
			a.pressed = false
			a.sim.PointerLeave()
			a.redraw()
		}
		return
	}
	pt := a.r.ToCanvas(x, y)
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !a.pressed:
		a.pressed = true
		if a.sim.PointerDown(pt) {
			a.redraw()
		}
	case down:
		if a.sim.PointerMove(pt) {
			a.redraw()
		}
	case a.pressed:
		a.pressed = false
		a.sim.PointerUp()
		a.redraw()
	default:
		hover := a.sim.Hover(pt)
		if hover != a.hover {
			a.hover = hover
			a.redraw()
		}
	}
}
