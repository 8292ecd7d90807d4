package traverse_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pixtrail/grid"
	"github.com/katalvlaran/pixtrail/traverse"
)

const (
	on  = 0
	off = -1
)

// BuildSuite groups tests for Build.
type BuildSuite struct {
	suite.Suite
}

func steps(xyo ...[3]int) []traverse.Step {
	out := make([]traverse.Step, len(xyo))
	for i, s := range xyo {
		out[i] = traverse.Step{X: s[0], Y: s[1], Ordinal: s[2]}
	}
	return out
}

// TestLine walks a bent stroke without any fallback.
//
//	. # # # .
//	. . . # .
//	. . . . .
func (s *BuildSuite) TestLine() {
	g := mustGrid(s.T(), [][]int{
		{off, on, on, on, off},
		{off, off, off, on, off},
		{off, off, off, off, off},
	})
	start, err := traverse.Start(g, traverse.Unspecified, 0, on, traverse.Clockwise)
	require.NoError(s.T(), err)

	p, err := traverse.Build(g, start, 0, on, traverse.Clockwise)
	require.NoError(s.T(), err)

	want := steps([3]int{1, 0, 0}, [3]int{2, 0, 1}, [3]int{3, 0, 2}, [3]int{3, 1, 3})
	if diff := cmp.Diff(want, p.Steps); diff != "" {
		s.T().Errorf("steps mismatch (-want +got):\n%s", diff)
	}
	s.Equal(4, p.Expected)
	s.Zero(p.Fallbacks)
	s.False(p.Truncated)
}

// TestFallbackJump joins two separate regions through the row-major scan.
func (s *BuildSuite) TestFallbackJump() {
	g := mustGrid(s.T(), [][]int{
		{on, on, off, off, on},
		{off, off, off, off, on},
	})
	var jumps [][2]traverse.Position
	p, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise,
		traverse.WithOnFallback(func(from, to traverse.Position) {
			jumps = append(jumps, [2]traverse.Position{from, to})
		}))
	require.NoError(s.T(), err)

	want := steps([3]int{0, 0, 0}, [3]int{1, 0, 1}, [3]int{4, 0, 2}, [3]int{4, 1, 3})
	s.Equal(want, p.Steps)
	s.Equal(1, p.Fallbacks)
	s.Equal([][2]traverse.Position{{{X: 1, Y: 0}, {X: 4, Y: 0}}}, jumps)
}

// TestSentinels checks that visited cells get strictly decreasing negative values.
func (s *BuildSuite) TestSentinels() {
	g := mustGrid(s.T(), [][]int{{7, 7, 7, 7, 7}})
	p, err := traverse.Build(g, traverse.Position{}, 0, 7, traverse.Clockwise)
	require.NoError(s.T(), err)
	s.Len(p.Steps, 5)
	s.Equal([]int{-1, -2, -3, -4, -5}, g.Cells[0])
	s.Zero(g.Count(7))
}

// TestTruncatedOnExternalMutation simulates a grid drained behind the
// builder's back: the walk stops instead of emitting a bogus step.
func (s *BuildSuite) TestTruncatedOnExternalMutation() {
	g := mustGrid(s.T(), [][]int{
		{on, on, on},
		{on, on, on},
	})
	p, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise,
		traverse.WithOnStep(func(st traverse.Step) error {
			if st.Ordinal == 1 {
				for y := range g.Cells {
					for x := range g.Cells[y] {
						g.Cells[y][x] = off
					}
				}
			}
			return nil
		}))
	require.NoError(s.T(), err)
	s.True(p.Truncated)
	s.Len(p.Steps, 2)
	s.Equal(6, p.Expected)
}

func (s *BuildSuite) TestLimit() {
	g := mustGrid(s.T(), [][]int{{on, on, on, on}})
	p, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise, traverse.WithLimit(2))
	require.NoError(s.T(), err)
	s.Len(p.Steps, 2)
	s.False(p.Truncated)
	s.Equal(4, p.Expected)
	s.Equal(2, g.Count(on), "cells past the limit stay traversable")

	_, err = traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise, traverse.WithLimit(-1))
	s.ErrorIs(err, traverse.ErrOptionViolation)
}

func (s *BuildSuite) TestOnStepAborts() {
	stop := errors.New("stop")
	g := mustGrid(s.T(), [][]int{{on, on, on}})
	p, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise,
		traverse.WithOnStep(func(st traverse.Step) error {
			if st.Ordinal == 1 {
				return stop
			}
			return nil
		}))
	s.ErrorIs(err, stop)
	s.Require().NotNil(p)
	s.Len(p.Steps, 2)
}

func (s *BuildSuite) TestEmptyGrid() {
	g := mustGrid(s.T(), [][]int{{off, off}, {off, off}})
	p, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise)
	require.NoError(s.T(), err)
	s.Empty(p.Steps)
	s.Zero(p.Expected)
}

func (s *BuildSuite) TestBadStart() {
	g := mustGrid(s.T(), [][]int{{off, on}})
	_, err := traverse.Build(g, traverse.Position{}, 0, on, traverse.Clockwise)
	s.ErrorIs(err, traverse.ErrStartNotTraversable)

	_, err = traverse.Build(g, traverse.Position{X: 5}, 0, on, traverse.Clockwise)
	s.ErrorIs(err, traverse.ErrOutOfBounds)

	_, err = traverse.Build(&grid.Grid{Width: 1}, traverse.Position{}, 0, on, traverse.Clockwise)
	s.ErrorIs(err, grid.ErrInvalidGrid)
}

// TestRandomGrids checks the counting invariants on random grids:
// every traversable cell is emitted exactly once and nothing else is.
func (s *BuildSuite) TestRandomGrids() {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		g, err := grid.Filled(w, h, off)
		require.NoError(s.T(), err)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Intn(3) == 0 {
					g.Set(x, y, on)
				}
			}
		}
		orig := g.Clone()
		dir := traverse.Clockwise
		if trial%2 == 1 {
			dir = traverse.CounterClockwise
		}
		heading := rng.Intn(8)

		start, err := traverse.Start(g, traverse.Unspecified, heading, on, dir)
		require.NoError(s.T(), err)
		p, err := traverse.Build(g, start, heading, on, dir)
		require.NoError(s.T(), err)

		s.LessOrEqual(len(p.Steps), p.Expected)
		s.Equal(orig.Count(on), len(p.Steps), "trial %d (%dx%d)", trial, w, h)
		s.False(p.Truncated)
		seen := make(map[traverse.Position]bool, len(p.Steps))
		for i, st := range p.Steps {
			s.Equal(i, st.Ordinal)
			s.Equal(on, orig.At(st.X, st.Y), "emitted a non-traversable cell")
			s.False(seen[st.Position()], "cell %v emitted twice", st.Position())
			seen[st.Position()] = true
		}
		s.Zero(g.Count(on))
	}
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}
