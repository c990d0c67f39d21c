// Package audio plays a short click whenever particles bounce.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate the speaker is initialized with.
const SampleRate = beep.SampleRate(44100)

const (
	clickFreq     = 660.0
	clickDuration = 30 * time.Millisecond
	clickAttack   = 2 * time.Millisecond
	clickRelease  = 25 * time.Millisecond

	// MinInterval is the shortest time between two clicks. Collisions in
	// between are not voiced.
	MinInterval = 40 * time.Millisecond
)

// Click returns one enveloped sine click at the given volume in [0, 1].
func Click(sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, clickFreq)
	if err != nil {
		return nil, err
	}
	n := sr.N(clickDuration)
	shaped := &envelope{
		streamer: beep.Take(n, sine),
		attack:   sr.N(clickAttack),
		release:  sr.N(clickRelease),
		total:    n,
	}
	return newVolume(shaped, volume), nil
}

// envelope fades a stream in over the attack and out over the release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range samples[:n] {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. A volume of 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// volumeFor maps the number of simultaneous collisions to a click volume.
func volumeFor(hits int) float64 {
	return min(1, 0.4+0.15*float64(hits-1))
}

// Clicker voices collisions through the speaker.
type Clicker struct {
	rate beep.SampleRate
	play func(...beep.Streamer)
	now  func() time.Time
	last time.Time
}

// NewClicker initializes the speaker. Close releases it.
func NewClicker() (*Clicker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("couldn't initialize speaker: %w", err)
	}
	return newClicker(SampleRate, speaker.Play, time.Now), nil
}

func newClicker(sr beep.SampleRate, play func(...beep.Streamer), now func() time.Time) *Clicker {
	return &Clicker{rate: sr, play: play, now: now}
}

// Click plays a click for a tick with the given number of collisions. More
// collisions make a louder click. Clicks closer together than MinInterval
// are dropped.
func (c *Clicker) Click(hits int) {
	if hits <= 0 {
		return
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < MinInterval {
		return
	}
	s, err := Click(c.rate, volumeFor(hits))
	if err != nil {
		return
	}
	c.last = now
	c.play(s)
}

// Close stops playback and releases the speaker.
func (c *Clicker) Close() {
	speaker.Close()
}
