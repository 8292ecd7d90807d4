package traverse

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pixtrail/grid"
)

// Build walks g from start and returns every traversable cell in visit order.
//
// Behavior:
//  1. Count the cells equal to target once, before any mutation (Path.Expected).
//  2. Up to Expected times (or the WithLimit cap):
//     • emit the current cell as a Step and run OnStep;
//     • overwrite it with a sentinel (-1, then -2, …);
//     • ask Next for the following cell and directional index.
//  3. If the next position is not traversable while steps remain, the grid is
//     exhausted early: the walk stops, Path.Truncated is set and a warning is
//     logged. No cell is ever emitted twice.
//
// g is mutated in place and not restored.
//
// Returns the argument errors of Next, ErrOptionViolation for bad options,
// ErrOutOfBounds or ErrStartNotTraversable for a bad start, or the error
// returned by OnStep (together with the partial path).
func Build(g *grid.Grid, start Position, index, target int, dir Direction, opts ...Option) (*Path, error) {
	if err := validate(g, target, dir); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	expected := g.Count(target)
	limit := expected
	if o.Limit > 0 && o.Limit < limit {
		limit = o.Limit
	}
	path := &Path{Expected: expected, Steps: make([]Step, 0, limit)}
	if expected == 0 {
		o.Logger.Info("no traversable cells", "target", target)
		return path, nil
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("%w: start %v in %dx%d", ErrOutOfBounds, start, g.Width, g.Height)
	}
	if g.At(start.X, start.Y) != target {
		return nil, fmt.Errorf("%w: %v holds %d, want %d", ErrStartNotTraversable, start, g.At(start.X, start.Y), target)
	}

	pos := start
	sentinel := -1
	for ordinal := 0; ordinal < limit; ordinal++ {
		if g.At(pos.X, pos.Y) != target {
			path.Truncated = true
			o.Logger.Warn("grid exhausted before all counted cells were visited",
				slog.Int("emitted", ordinal),
				slog.Int("expected", expected),
				slog.Any("position", pos))
			break
		}

		step := Step{X: pos.X, Y: pos.Y, Ordinal: ordinal}
		o.Logger.Debug("traversing", slog.Int("x", pos.X), slog.Int("y", pos.Y), slog.Int("ordinal", ordinal))
		path.Steps = append(path.Steps, step)
		if err := o.OnStep(step); err != nil {
			return path, err
		}

		g.Set(pos.X, pos.Y, sentinel)
		sentinel--
		if ordinal == limit-1 {
			break // nothing left to look for
		}

		res := next(g, pos, index, target, dir)
		if res.Fallback && !res.Exhausted {
			path.Fallbacks++
			o.Logger.Info("blindly scanning for next cell", slog.Any("from", pos), slog.Any("to", res.Position))
			o.OnFallback(pos, res.Position)
		}
		pos, index = res.Position, res.Index
	}

	return path, nil
}
