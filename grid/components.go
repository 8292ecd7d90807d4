package grid

// Neighbor offsets in clockwise order from north.
var (
	orthogonal = []Vector{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	diagonal   = []Vector{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Vector is a cell offset used for neighbor lookups.
type Vector struct{ DX, DY int }

// Offsets returns the neighbor offsets of conn.
func (conn Connectivity) Offsets() []Vector {
	if conn == Conn8 {
		return diagonal
	}
	return orthogonal
}

// Components returns the connected regions of cells equal to v under conn.
// Each region is a list of row-major cell indices, seeded at its first cell
// in row-major order and grown breadth first; regions are ordered by seed.
// Use Coordinate to turn an index back into (x,y).
//
// Time O(W·H·d) with d = 4 or 8; memory O(W·H).
func (g *Grid) Components(v int, conn Connectivity) [][]int {
	offsets := conn.Offsets()
	claimed := make([]bool, g.Width*g.Height)
	var regions [][]int

	for seed := range claimed {
		if claimed[seed] || g.atIndex(seed) != v {
			continue
		}
		claimed[seed] = true
		// The region doubles as the BFS queue: cells are appended once,
		// when claimed, and expanded in order.
		region := []int{seed}
		for head := 0; head < len(region); head++ {
			cx, cy := g.Coordinate(region[head])
			for _, d := range offsets {
				nx, ny := cx+d.DX, cy+d.DY
				if !g.InBounds(nx, ny) {
					continue
				}
				n := g.Index(nx, ny)
				if claimed[n] || g.Cells[ny][nx] != v {
					continue
				}
				claimed[n] = true
				region = append(region, n)
			}
		}
		regions = append(regions, region)
	}
	return regions
}

func (g *Grid) atIndex(i int) int {
	x, y := g.Coordinate(i)
	return g.Cells[y][x]
}
