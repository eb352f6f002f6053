// Package widget implements the analog clock as a set of toolkit callbacks.
// It draws through Surface and moves its window through Window, so it does not
// depend on any particular GUI toolkit.
package widget

import (
	"image/color"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iburimskiy/analog-clock/internal/clockface"
	"github.com/iburimskiy/analog-clock/internal/config"
)

// Callbacks is the dispatch table a windowing layer drives.
type Callbacks interface {
	OnTimerTick()
	OnPaint(s Surface, bounds clockface.Point)
	OnPointerDown(p clockface.Point)
	OnPointerMove(p clockface.Point)
	OnPointerUp()
}

// Surface is the set of drawing primitives the clock needs.
type Surface interface {
	Fill(c color.Color)
	StrokeCircle(center clockface.Point, radius, width float64, c color.Color)
	StrokeLine(from, to clockface.Point, width float64, c color.Color)
	Text(s string, at clockface.Point)
}

// Window is the top-level window the clock lives in, in screen coordinates.
type Window interface {
	Position() clockface.Point
	Move(topLeft clockface.Point)
}

var (
	Background  = color.White
	FaceColor   = color.Black
	SecondColor = color.RGBA{R: 255, A: 255}
	MinuteColor = color.Black
	HourColor   = color.RGBA{B: 255, A: 255}
)

type Options struct {
	Window Window
	// Repaint asks the windowing layer to call OnPaint soon.
	Repaint func()
	Now     func() time.Time
	HitTest clockface.HitTest
}

type Clock struct {
	window  Window
	repaint func()
	now     func() time.Time
	drag    *clockface.DragTracker
}

var _ Callbacks = (*Clock)(nil)

func NewClock(opts Options) *Clock {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Repaint == nil {
		opts.Repaint = func() {}
	}
	center := clockface.Point{X: config.WindowWidth / 2, Y: config.WindowHeight / 2}
	return &Clock{
		window:  opts.Window,
		repaint: opts.Repaint,
		now:     opts.Now,
		drag:    clockface.NewDragTracker(center, config.FaceRadius, opts.HitTest),
	}
}

func (c *Clock) OnTimerTick() {
	c.repaint()
}

func (c *Clock) OnPaint(s Surface, bounds clockface.Point) {
	center := clockface.Point{X: bounds.X / 2, Y: bounds.Y / 2}
	c.drag.SetCenter(center)

	s.Fill(Background)
	s.StrokeCircle(center, config.FaceRadius, config.FaceStrokeWidth, FaceColor)

	offset := clockface.Point{X: config.LabelOffsetX, Y: config.LabelOffsetY}
	for i, p := range clockface.LabelPositions(config.LabelCount, center, config.LabelRadius, offset) {
		s.Text(strconv.Itoa(i+1), p)
	}

	now := c.now()
	hands := []struct {
		value  float64
		length float64
		color  color.Color
	}{
		{float64(now.Second()), config.SecondLength, SecondColor},
		{float64(now.Minute()), config.MinuteLength, MinuteColor},
		{clockface.HourValue(now.Hour(), now.Minute()), config.HourLength, HourColor},
	}
	for _, h := range hands {
		end := clockface.HandEndpoint(h.value, config.HandPeriod, h.length, center)
		s.StrokeLine(center, end, config.HandStrokeWidth, h.color)
	}
}

func (c *Clock) OnPointerDown(p clockface.Point) {
	if c.window == nil {
		return
	}
	if c.drag.PointerDown(p, c.window.Position()) {
		log.Debug("drag started", "pointer", p)
	}
}

func (c *Clock) OnPointerMove(p clockface.Point) {
	if to, ok := c.drag.PointerMove(p); ok {
		c.window.Move(to)
	}
}

func (c *Clock) OnPointerUp() {
	if c.drag.Dragging() {
		log.Debug("drag finished", "window", c.window.Position())
	}
	c.drag.PointerUp()
}
