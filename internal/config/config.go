package config

import "time"

const (
	WindowWidth  = 250
	WindowHeight = 250
	WindowTitle  = "Draggable Analog Clock with Numbers"

	// Repaint period
	TickInterval = 1000 * time.Millisecond

	// Face geometry, in window pixels
	FaceRadius   = 100
	LabelRadius  = 80
	LabelCount   = 12
	HandPeriod   = 60
	SecondLength = 80
	MinuteLength = 60
	HourLength   = 40

	// Debug font glyphs are 6x16; this centers a one or two digit label on its point
	LabelOffsetX = -5
	LabelOffsetY = -8

	FaceStrokeWidth = 1
	HandStrokeWidth = 2

	// Audible tick
	ClickSampleRate = 44100
	ClickDuration   = 15 * time.Millisecond
	ClickFrequency  = 1800
	ClickVolume     = 0.25
)
