package traverse

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for traversal.
var (
	// ErrNegativeTarget is returned when the target value is below zero.
	// Visited cells are overwritten with negative sentinels, so a negative
	// target could be re-created by the walk itself.
	ErrNegativeTarget = errors.New("traverse: target value must be non-negative")

	// ErrInvalidDirection is returned for a scan direction other than ±1.
	ErrInvalidDirection = errors.New("traverse: direction must be 1 (clockwise) or -1 (counter-clockwise)")

	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("traverse: position outside grid")

	// ErrStartNotTraversable is returned by Build when the grid still holds
	// traversable cells but the start cell is not one of them.
	ErrStartNotTraversable = errors.New("traverse: start cell is not traversable")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Vector is a relative offset from a cell.
type Vector struct {
	DX, DY int
}

// Position is a cell coordinate: X is the column, Y the row.
type Position struct {
	X, Y int
}

// Unspecified is the conventional "no start requested" position.
var Unspecified = Position{X: -1, Y: -1}

// Add returns p shifted by v.
func (p Position) Add(v Vector) Position {
	return Position{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Unspecified reports whether p does not name a specific cell.
// Both coordinates must be non-negative to count as a request.
func (p Position) Unspecified() bool {
	return p.X < 0 || p.Y < 0
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is the way rings are scanned around the directional index.
type Direction int

const (
	// Clockwise scans with increasing ring index.
	Clockwise Direction = 1
	// CounterClockwise scans with decreasing ring index.
	CounterClockwise Direction = -1
)

// Valid reports whether d is Clockwise or CounterClockwise.
func (d Direction) Valid() bool {
	return d == Clockwise || d == CounterClockwise
}

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Result is the outcome of one Next call.
//   - Index: directional index to pass to the following call.
//   - Position: the chosen cell.
//   - Fallback: the ring search failed and the row-major scan was used.
//   - Exhausted: no traversable cell remains; Position is (0,0) and must not
//     be trusted.
type Result struct {
	Index     int
	Position  Position
	Fallback  bool
	Exhausted bool
}

// Step is one emitted cell of a path. Ordinal is the 0-based emission order.
type Step struct {
	X, Y    int
	Ordinal int
}

// Position returns the cell of s.
func (s Step) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// Path is the outcome of Build.
//   - Steps: cells in emission order.
//   - Expected: traversable cells counted before the walk started.
//   - Fallbacks: number of steps reached through the row-major scan.
//   - Truncated: the grid ran out of traversable cells before Expected
//     (or the limit) was reached.
type Path struct {
	Steps     []Step
	Expected  int
	Fallbacks int
	Truncated bool
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks to customize Build.
type Options struct {
	// Logger receives per-step debug events, fallback jumps and truncation.
	Logger *slog.Logger

	// OnStep is called for each step right after it is emitted. If it
	// returns an error, Build stops and returns that error.
	OnStep func(step Step) error

	// OnFallback is called when the next cell was found by the row-major
	// scan instead of the ring search.
	OnFallback func(from, to Position)

	// Limit, if > 0, caps the number of emitted steps.
	Limit int

	err error
}

// DefaultOptions returns Options with a discarding logger, no-op hooks and
// no step limit.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		OnStep:     func(Step) error { return nil },
		OnFallback: func(_, _ Position) {},
	}
}

// WithLogger sets the logger used by Build.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnStep registers a callback run for each emitted step.
func WithOnStep(fn func(step Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnFallback registers a callback run for each fallback jump.
func WithOnFallback(fn func(from, to Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFallback = fn
		}
	}
}

// WithLimit emits at most n steps.
//
//	n > 0: stop after n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}
