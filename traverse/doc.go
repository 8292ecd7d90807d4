// Package traverse chains the traversable cells of a grid.Grid into one
// ordered path.
//
// The engine works in four layers:
//
//	Ring     offsets of the square ring at Chebyshev distance r, clockwise
//	         (y grows downward) starting due east of the origin.
//	Next     from the current cell, scan rings of growing radius starting at
//	         a directional index and pick the first traversable neighbor;
//	         fall back to a row-major scan of the whole grid.
//	Start    turn a requested (possibly unspecified) coordinate into a valid
//	         traversable starting cell.
//	Build    emit the current cell, mark it visited, ask Next for the next
//	         one, until every originally traversable cell has been emitted.
//
// The directional index returned by Next is a continuation cue, not an
// absolute direction. It is re-based to the far side of the ring and divided
// by the radius the match was found at, so the next call, which restarts at
// radius 1, keeps scanning roughly the same way round.
//
// The fallback scan can join two disconnected regions with one long segment.
// That jump is reported (Result.Fallback, Path.Fallbacks, WithOnFallback) but
// never hidden.
//
// Build mutates the grid: each visited cell is overwritten with a negative
// sentinel (-1, -2, ...). Target values are never negative, so a visited cell
// never becomes traversable again. Clone the grid first to keep the original.
//
// Complexity:
//
//   - Ring:  O(r).
//   - Next:  O(W²) worst case for the ring search, plus O(W×H) for the fallback.
//   - Build: O(N × cost(Next)) for N traversable cells.
package traverse
