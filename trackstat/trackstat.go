// Package trackstat summarizes how smooth a traversal path is.
//
// A path built from one connected stroke moves one cell at a time. Longer
// moves come from ring searches beyond radius 1 or from fallback scans, and
// show up as straight segments across the drawing. Stats counts them.
package trackstat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/pixtrail/traverse"
)

// Stats describes the moves between consecutive steps.
//   - Steps: number of emitted steps.
//   - Jumps: moves with Chebyshev length > 1.
//   - LongestJump: largest Chebyshev move length.
//   - MeanStep, StdDevStep: Euclidean move length statistics.
//   - Length: total Euclidean length in cells.
//   - Regions: connected regions of the source grid, if known (filled in by
//     the caller; a path needs at least Regions-1 non-adjacent moves).
type Stats struct {
	Steps       int
	Jumps       int
	LongestJump int
	MeanStep    float64
	StdDevStep  float64
	Length      float64
	Regions     int
}

// Summarize computes Stats for steps. Fewer than two steps yield zero moves.
func Summarize(steps []traverse.Step) Stats {
	s := Stats{Steps: len(steps)}
	if len(steps) < 2 {
		return s
	}
	lengths := make([]float64, 0, len(steps)-1)
	for i := 1; i < len(steps); i++ {
		dx := steps[i].X - steps[i-1].X
		dy := steps[i].Y - steps[i-1].Y
		cheb := max(abs(dx), abs(dy))
		if cheb > 1 {
			s.Jumps++
		}
		s.LongestJump = max(s.LongestJump, cheb)
		lengths = append(lengths, math.Hypot(float64(dx), float64(dy)))
	}
	s.Length = floats.Sum(lengths)
	s.MeanStep, s.StdDevStep = stat.MeanStdDev(lengths, nil)
	if math.IsNaN(s.StdDevStep) {
		s.StdDevStep = 0
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
