package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComponents_Orthogonal splits a 4×3 grid into two regions and checks
// the breadth-first order inside each.
//
//	9 0 0 9
//	0 0 9 9
//	9 9 0 0
func TestComponents_Orthogonal(t *testing.T) {
	g, err := New([][]int{
		{9, 0, 0, 9},
		{0, 0, 9, 9},
		{9, 9, 0, 0},
	})
	require.NoError(t, err)

	want := [][]int{
		{1, 2, 5, 4},
		{10, 11},
	}
	if diff := cmp.Diff(want, g.Components(0, Conn4)); diff != "" {
		t.Errorf("Components(0, Conn4) mismatch (-want +got):\n%s", diff)
	}
	// The 9s form a lone (0,0), an L through (3,0),(3,1),(2,1) and the
	// bottom-left pair.
	assert.Len(t, g.Components(9, Conn4), 3)
}

// TestComponents_Diagonal joins an X of corner-touching cells with Conn8
// and leaves it as nine singletons with Conn4.
//
//	1 . . . 1
//	. 1 . 1 .
//	. . 1 . .
//	. 1 . 1 .
//	1 . . . 1
func TestComponents_Diagonal(t *testing.T) {
	g, err := New([][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	require.NoError(t, err)

	joined := g.Components(1, Conn8)
	require.Len(t, joined, 1)
	assert.Len(t, joined[0], 9)
	assert.Equal(t, 0, joined[0][0], "region is seeded at its first row-major cell")
	assert.Len(t, g.Components(1, Conn4), 9)
}

func TestComponents_NoneAndSingle(t *testing.T) {
	g, err := New([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Empty(t, g.Components(1, Conn8))

	g, err = New([][]int{{0, 1}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, g.Components(1, Conn4))
}

// TestComponents_LeavesGridUntouched checks Components only reads cells.
func TestComponents_LeavesGridUntouched(t *testing.T) {
	g, err := New([][]int{{0, -1, 0}, {0, 0, -1}})
	require.NoError(t, err)
	before := g.Clone()

	g.Components(0, Conn8)
	assert.Equal(t, before, g)
}

func TestConnectivity_Offsets(t *testing.T) {
	assert.Len(t, Conn4.Offsets(), 4)
	assert.Len(t, Conn8.Offsets(), 8)
	for _, conn := range []Connectivity{Conn4, Conn8} {
		seen := map[Vector]bool{}
		for _, d := range conn.Offsets() {
			assert.False(t, seen[d], "duplicate offset %v", d)
			assert.False(t, d == Vector{}, "zero offset")
			assert.LessOrEqual(t, max(d.DX, -d.DX, d.DY, -d.DY), 1)
			seen[d] = true
		}
	}
}
