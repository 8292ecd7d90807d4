package traverse

import (
	"fmt"

	"github.com/katalvlaran/pixtrail/grid"
)

// Next finds the cell to move to after from.
//
// Behavior:
//  1. maxRadius = ceil(Width/2).
//  2. For power = 1 … maxRadius-1, scan Ring(power) starting at index and
//     stepping by dir (tryIndex = (index + i*dir) mod len(ring)). Cells
//     outside the grid are skipped. The first cell equal to target wins and
//     its Rebase index is returned.
//  3. Otherwise fall back to a row-major scan of the whole grid
//     (Result.Fallback). An empty grid yields index 0 at (0,0) with
//     Result.Exhausted set.
//
// The search radius is capped so the fallback stays the exception: a long
// ring search would draw the same kind of line across the grid anyway.
//
// Returns *grid.InvalidGridError, ErrNegativeTarget, ErrInvalidDirection, or
// ErrOutOfBounds when from is outside the grid.
func Next(g *grid.Grid, from Position, index, target int, dir Direction) (Result, error) {
	if err := validate(g, target, dir); err != nil {
		return Result{}, err
	}
	if !g.InBounds(from.X, from.Y) {
		return Result{}, fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, from, g.Width, g.Height)
	}
	return next(g, from, index, target, dir), nil
}

// next is Next without argument checks.
func next(g *grid.Grid, from Position, index, target int, dir Direction) Result {
	maxRadius := (g.Width + 1) / 2
	step := int(dir)
	for power := 1; power < maxRadius; power++ {
		ring := Ring(power)
		n := len(ring)
		for i := 0; i < n; i++ {
			try := mod(index+i*step, n)
			p := from.Add(ring[try])
			if !g.InBounds(p.X, p.Y) {
				continue
			}
			if g.At(p.X, p.Y) == target {
				return Result{Index: Rebase(try, n, dir, power), Position: p}
			}
		}
	}

	x, y, ok := g.BlindScan(target)
	return Result{Position: Position{X: x, Y: y}, Fallback: true, Exhausted: !ok}
}

// validate checks the arguments shared by Next, Start and Build.
func validate(g *grid.Grid, target int, dir Direction) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if target < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if !dir.Valid() {
		return fmt.Errorf("%w: got %d", ErrInvalidDirection, int(dir))
	}
	return nil
}
