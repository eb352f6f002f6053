package widget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerFiresOncePerInterval(t *testing.T) {
	n := 0
	tk := NewTicker(time.Second, func() { n++ })
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 60 polls per second for three seconds
	for i := 0; i <= 180; i++ {
		tk.Poll(start.Add(time.Duration(i) * time.Second / 60))
	}
	assert.Equal(t, 3, n)
}

func TestTickerCollapsesMissedIntervals(t *testing.T) {
	n := 0
	tk := NewTicker(time.Second, func() { n++ })
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, tk.Poll(start))
	assert.True(t, tk.Poll(start.Add(5*time.Second)))
	assert.False(t, tk.Poll(start.Add(5500*time.Millisecond)))
	assert.True(t, tk.Poll(start.Add(6*time.Second)))
	assert.Equal(t, 2, n)
}
