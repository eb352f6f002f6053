// Package sound generates the short click played on every clock tick.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// click is a decaying sine burst. It is a finite beep.Streamer: once all samples
// have been produced it reports ok == false.
type click struct {
	freq   float64
	volume float64
	rate   beep.SampleRate
	total  int
	pos    int
}

// NewClick returns a fresh click of the given length. The volume is clamped to [0, 1].
func NewClick(rate beep.SampleRate, d time.Duration, freq, volume float64) beep.Streamer {
	return &click{
		freq:   freq,
		volume: clamp01(volume),
		rate:   rate,
		total:  rate.N(d),
	}
}

func (c *click) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.total {
			break
		}
		t := float64(c.pos) / float64(c.rate)
		envelope := 1 - float64(c.pos)/float64(c.total)
		v := c.volume * envelope * math.Sin(2*math.Pi*c.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
		n++
	}
	return n, true
}

func (c *click) Err() error { return nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
