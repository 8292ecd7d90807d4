// Package geo projects traversal steps onto geographic coordinates and
// time-stamps them.
//
// Each grid cell is Scale degrees wide. Columns move east (longitude grows)
// and rows move south (latitude shrinks) from the Reference point at (0,0).
// The n-th step is recorded n Intervals after Start.
package geo

import (
	"fmt"
	"time"

	"github.com/katalvlaran/pixtrail/traverse"
)

// DefaultScale is the size of one cell in degrees (roughly a metre).
const DefaultScale = 0.00001

// DefaultInterval is the time between two consecutive track points.
const DefaultInterval = time.Second

// DefaultCadence is the cadence recorded on every track point.
const DefaultCadence = 35

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat, Lon float64
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lon)
}

// TrackPoint is a projected, time-stamped step.
type TrackPoint struct {
	Point
	Elevation float64
	Time      time.Time
	Cadence   int

	// Cell is the grid cell the point was projected from.
	Cell traverse.Step
}

// Projector maps steps to track points.
type Projector struct {
	Reference Point
	Scale     float64
	Start     time.Time
	Interval  time.Duration
	Cadence   int
}

// NewProjector returns a Projector around ref with the default scale,
// interval and cadence. start is truncated to the second and moved to UTC.
func NewProjector(ref Point, start time.Time) *Projector {
	return &Projector{
		Reference: ref,
		Scale:     DefaultScale,
		Start:     start.UTC().Truncate(time.Second),
		Interval:  DefaultInterval,
		Cadence:   DefaultCadence,
	}
}

// Project returns the track point for s.
func (p *Projector) Project(s traverse.Step) TrackPoint {
	return TrackPoint{
		Point: Point{
			Lat: p.Reference.Lat - float64(s.Y)*p.Scale,
			Lon: p.Reference.Lon + float64(s.X)*p.Scale,
		},
		Time:    p.Start.Add(time.Duration(s.Ordinal) * p.Interval).Truncate(time.Second),
		Cadence: p.Cadence,
		Cell:    s,
	}
}

// ProjectAll projects every step in order.
func (p *Projector) ProjectAll(steps []traverse.Step) []TrackPoint {
	out := make([]TrackPoint, len(steps))
	for i, s := range steps {
		out[i] = p.Project(s)
	}
	return out
}
