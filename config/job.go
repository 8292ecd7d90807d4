package config

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pixtrail/geo"
	"github.com/katalvlaran/pixtrail/raster"
	"github.com/katalvlaran/pixtrail/traverse"
)

// Sentinel errors for job configuration.
var (
	// ErrInvalidJob wraps every validation failure of a Job.
	ErrInvalidJob = errors.New("config: invalid job")
	// ErrDuplicateJob is returned when two job blocks share a name.
	ErrDuplicateJob = errors.New("config: duplicate job name")
)

// Job is one image-to-GPX conversion.
type Job struct {
	Name      string
	Input     string
	Output    string
	TrackName string
	Zones     string
	Classify  string
	Target    int
	Latitude  float64
	Longitude float64
	StartX    int
	StartY    int
	Heading   string
	Direction int
	Limit     int
	Preview   string
}

// DefaultJob returns a Job with every optional field at its default:
// black pixels, target value 0, a reference point near Las Cruces, an
// unspecified start and a clockwise scan heading east.
func DefaultJob() Job {
	return Job{
		Name:      "default",
		TrackName: "My Walk",
		Zones:     "b",
		Target:    0,
		Latitude:  32.3451,
		Longitude: -106.5614,
		StartX:    -1,
		StartY:    -1,
		Heading:   traverse.East.String(),
		Direction: int(traverse.Clockwise),
	}
}

// Plan is a validated Job with its fields converted to engine types.
type Plan struct {
	Zones      raster.Zones
	Classifier raster.Classifier
	Heading    traverse.Heading
	Direction  traverse.Direction
	Start      traverse.Position
	Reference  geo.Point
}

// Validate checks j and returns every problem found, joined.
func (j Job) Validate() error {
	_, err := j.Plan()
	return err
}

// Plan validates j and converts it. A start with only one non-negative
// coordinate is not an error: it is treated as unspecified.
func (j Job) Plan() (Plan, error) {
	var errs []error
	var p Plan

	if j.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if j.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	if j.Target < 0 {
		errs = append(errs, fmt.Errorf("target must be non-negative, got %d", j.Target))
	}
	if j.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must be non-negative, got %d", j.Limit))
	}
	if z, err := raster.ParseZones(j.Zones); err != nil {
		errs = append(errs, err)
	} else {
		p.Zones = z
		p.Classifier = z
	}
	if j.Classify != "" {
		if e, err := raster.CompileExpr(j.Classify); err != nil {
			errs = append(errs, err)
		} else {
			p.Classifier = e
		}
	}
	if h, err := traverse.ParseHeading(j.Heading); err != nil {
		errs = append(errs, err)
	} else {
		p.Heading = h
	}
	p.Direction = traverse.Direction(j.Direction)
	if !p.Direction.Valid() {
		errs = append(errs, fmt.Errorf("direction must be 1 or -1, got %d", j.Direction))
	}
	if j.Latitude < -90 || j.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %v out of range", j.Latitude))
	}
	if j.Longitude < -180 || j.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %v out of range", j.Longitude))
	}

	if len(errs) > 0 {
		return Plan{}, fmt.Errorf("%w %q: %w", ErrInvalidJob, j.Name, errors.Join(errs...))
	}

	p.Start = traverse.Position{X: j.StartX, Y: j.StartY}
	if p.Start.Unspecified() {
		p.Start = traverse.Unspecified
	}
	p.Reference = geo.Point{Lat: j.Latitude, Lon: j.Longitude}
	return p, nil
}
