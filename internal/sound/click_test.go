package sound

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer, chunk int) (total int, peak float64) {
	buf := make([][2]float64, chunk)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestClickLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	c := NewClick(rate, 10*time.Millisecond, 1000, 0.5)
	total, peak := drain(c, 100)
	assert.Equal(t, rate.N(10*time.Millisecond), total)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.0)
	require.NoError(t, c.Err())

	n, ok := c.Stream(make([][2]float64, 8))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestClickStereo(t *testing.T) {
	c := NewClick(beep.SampleRate(8000), 5*time.Millisecond, 440, 1)
	buf := make([][2]float64, 16)
	n, ok := c.Stream(buf)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Equal(t, buf[i][0], buf[i][1])
	}
}

func TestClickVolumeClamped(t *testing.T) {
	_, peak := drain(NewClick(beep.SampleRate(8000), 5*time.Millisecond, 440, 3), 7)
	assert.LessOrEqual(t, peak, 1.0)

	_, peak = drain(NewClick(beep.SampleRate(8000), 5*time.Millisecond, 440, -1), 7)
	assert.Equal(t, 0.0, peak)
}
