// Package clockface holds the display-independent geometry of the analog clock:
// hand endpoints, label placement and the drag state machine.
package clockface

import "math"

// Point is a position in window or screen pixels.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// HandEndpoint returns the far end of a hand of the given length drawn from center.
// value/period is the fraction of a full turn, with zero at 12 o'clock and angles
// growing clockwise on screen.
func HandEndpoint(value, period, length float64, center Point) Point {
	radian := degToRad(90 - 360*value/period)
	return Point{
		X: center.X + length*math.Cos(radian),
		Y: center.Y - length*math.Sin(radian), // screen y grows downward
	}
}

// HourValue places the hour hand on a 60-unit dial so that it creeps between
// hour marks as the minutes advance.
func HourValue(hour, minute int) float64 {
	return float64((hour%12)*5) + float64(minute)/12
}

// LabelPosition returns where label i (1..12) is drawn. Label 3 sits at angle zero.
func LabelPosition(i int, center Point, radius float64, offset Point) Point {
	radian := degToRad(float64(i-3) * 30)
	return Point{
		X: center.X + radius*math.Cos(radian) + offset.X,
		Y: center.Y + radius*math.Sin(radian) + offset.Y,
	}
}

// LabelPositions returns the positions of labels 1..count in order.
func LabelPositions(count int, center Point, radius float64, offset Point) []Point {
	out := make([]Point, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, LabelPosition(i, center, radius, offset))
	}
	return out
}

// HitTest reports whether p, relative to the face center, falls on a face of the given radius.
type HitTest func(p Point, radius float64) bool

// Euclidean accepts the circular region the face is drawn as.
func Euclidean(p Point, radius float64) bool {
	return math.Hypot(p.X, p.Y) <= radius
}

// Manhattan accepts the diamond |x|+|y| <= radius inscribed in the face.
func Manhattan(p Point, radius float64) bool {
	return math.Abs(p.X)+math.Abs(p.Y) <= radius
}
