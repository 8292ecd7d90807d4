// Package grid holds the categorical 2D grid that the traversal engine walks.
//
// What:
//
//   - Grid wraps a rectangular, row-major [][]int of cell values.
//   - A caller-chosen target value marks a cell as traversable; every other
//     value is non-traversable.
//   - BlindScan finds the first target cell in row-major order.
//   - Components groups target cells into connected regions.
//
// Why:
//
//   - Image rasters: a decoded image becomes a grid with one value per pixel.
//   - Diagnostics: the number of regions bounds how many fallback jumps a
//     single path through the grid must contain.
//
// Complexity:
//
//   - Count, BlindScan: O(W×H), Memory: O(1).
//   - Components:       O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidGrid: a Grid whose dimensions are degenerate or disagree with
//     its rows (reported as *InvalidGridError).
package grid
