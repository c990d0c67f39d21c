package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns the left channel.
func drain(t *testing.T, s beep.Streamer) []float64 {
	t.Helper()
	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] != sample[1] {
				t.Fatalf("channels differ: %v", sample)
			}
			out = append(out, sample[0])
		}
		if !ok {
			break
		}
		if len(out) > int(SampleRate) {
			t.Fatal("stream did not end")
		}
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func peak(samples []float64) float64 {
	var p float64
	for _, v := range samples {
		p = max(p, math.Abs(v))
	}
	return p
}

func TestClick(t *testing.T) {
	s, err := Click(SampleRate, 1)
	if err != nil {
		t.Fatal(err)
	}
	samples := drain(t, s)
	if want := SampleRate.N(clickDuration); len(samples) != want {
		t.Fatalf("got %d samples, want %d", len(samples), want)
	}
	if samples[0] != 0 {
		t.Errorf("click starts at %v, want 0", samples[0])
	}
	if last := math.Abs(samples[len(samples)-1]); last > 0.01 {
		t.Errorf("click ends at %v", last)
	}
	if p := peak(samples); p > 1 || p < 0.5 {
		t.Errorf("got peak %v", p)
	}
}

func TestClickVolume(t *testing.T) {
	loud, _ := Click(SampleRate, 1)
	quiet, _ := Click(SampleRate, 0.25)
	silent, _ := Click(SampleRate, 0)
	pl, pq := peak(drain(t, loud)), peak(drain(t, quiet))
	if math.Abs(pq-pl/4) > 1e-9 {
		t.Errorf("got peaks %v and %v, want a ratio of 4", pl, pq)
	}
	if p := peak(drain(t, silent)); p != 0 {
		t.Errorf("silent click has peak %v", p)
	}
}

func TestVolumeFor(t *testing.T) {
	if v := volumeFor(1); v != 0.4 {
		t.Errorf("one hit: got %v", v)
	}
	if volumeFor(3) <= volumeFor(2) {
		t.Error("more hits are not louder")
	}
	if v := volumeFor(100); v != 1 {
		t.Errorf("many hits: got %v", v)
	}
}

func TestClickerRateLimit(t *testing.T) {
	var played []beep.Streamer
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := newClicker(SampleRate, func(s ...beep.Streamer) {
		played = append(played, s...)
	}, func() time.Time { return now })

	c.Click(0)
	if len(played) != 0 {
		t.Fatal("clicked without collisions")
	}
	c.Click(1)
	c.Click(2)
	if len(played) != 1 {
		t.Fatalf("got %d clicks, want 1", len(played))
	}
	now = now.Add(MinInterval / 2)
	c.Click(1)
	if len(played) != 1 {
		t.Fatalf("got %d clicks within the interval, want 1", len(played))
	}
	now = now.Add(MinInterval)
	c.Click(5)
	if len(played) != 2 {
		t.Fatalf("got %d clicks, want 2", len(played))
	}
	if p := peak(drain(t, played[1])); p <= peak(drain(t, played[0])) {
		t.Error("a click for five collisions is not louder than one for one")
	}
}
