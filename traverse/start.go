package traverse

import "github.com/katalvlaran/pixtrail/grid"

// Start resolves the cell a path begins at.
//
//   - requested unspecified (either coordinate negative): the first
//     traversable cell in row-major order, or (0,0) if there is none.
//   - otherwise requested is clamped into the grid. A traversable clamped cell
//     is returned as is; else the candidate Next picks from it, so the path
//     does not begin with a line from an empty cell.
//
// Returns the same argument errors as Next.
func Start(g *grid.Grid, requested Position, index, target int, dir Direction) (Position, error) {
	if err := validate(g, target, dir); err != nil {
		return Position{}, err
	}
	if requested.Unspecified() {
		x, y, _ := g.BlindScan(target)
		return Position{X: x, Y: y}, nil
	}

	p := Position{
		X: clamp(requested.X, 0, g.Width-1),
		Y: clamp(requested.Y, 0, g.Height-1),
	}
	if g.At(p.X, p.Y) == target {
		return p, nil
	}
	return next(g, p, index, target, dir).Position, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
