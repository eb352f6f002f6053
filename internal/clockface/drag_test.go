package clockface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragTrackerPointerDown(t *testing.T) {
	window := Point{X: 300, Y: 200}
	center := Point{X: 125, Y: 125}

	tests := []struct {
		name string
		at   Point
		want bool
	}{
		{"center", window.Add(center), true},
		{"on edge", window.Add(center).Add(Point{X: 100}), true},
		{"outside", window.Add(center).Add(Point{Y: 101}), false},
		{"window corner", window, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewDragTracker(center, 100, Euclidean)
			assert.Equal(t, tt.want, tr.PointerDown(tt.at, window))
			assert.Equal(t, tt.want, tr.Dragging())
		})
	}
}

func TestDragTrackerSequence(t *testing.T) {
	tr := NewDragTracker(Point{X: 125, Y: 125}, 100, nil)
	w0 := Point{X: 300, Y: 200}
	p0 := Point{X: 420, Y: 330}
	p1 := Point{X: 450, Y: 310}

	require.True(t, tr.PointerDown(p0, w0))
	assert.Equal(t, Dragging{PointerAnchor: p0, WindowAnchor: w0}, tr.State())

	got, ok := tr.PointerMove(p1)
	require.True(t, ok)
	assert.Equal(t, Point{X: 330, Y: 180}, got)

	// anchors stay fixed for the whole drag
	got, ok = tr.PointerMove(p0)
	require.True(t, ok)
	assert.Equal(t, w0, got)

	tr.PointerUp()
	assert.Equal(t, Idle{}, tr.State())

	_, ok = tr.PointerMove(Point{X: 10, Y: 10})
	assert.False(t, ok)
}

func TestDragTrackerIdleMove(t *testing.T) {
	tr := NewDragTracker(Point{X: 125, Y: 125}, 100, Manhattan)
	_, ok := tr.PointerMove(Point{X: 1, Y: 1})
	assert.False(t, ok)
	tr.PointerUp()
	assert.False(t, tr.Dragging())
}

func TestDragTrackerManhattanRegion(t *testing.T) {
	tr := NewDragTracker(Point{X: 125, Y: 125}, 100, Manhattan)
	assert.False(t, tr.PointerDown(Point{X: 185, Y: 185}, Point{}))
	assert.True(t, tr.PointerDown(Point{X: 175, Y: 175}, Point{}))
}

func TestDragTrackerSetCenter(t *testing.T) {
	tr := NewDragTracker(Point{X: 125, Y: 125}, 100, Euclidean)
	tr.SetCenter(Point{X: 400, Y: 400})
	assert.False(t, tr.PointerDown(Point{X: 125, Y: 125}, Point{}))
	assert.True(t, tr.PointerDown(Point{X: 400, Y: 400}, Point{}))
}
