package traverse

// Ring returns the offsets on the perimeter of the square ring at Chebyshev
// distance radius from the origin, clockwise in screen coordinates (y grows
// downward). The first offset is (radius, 0), due east; the last is the
// cell just counter-clockwise of it, so every ring cell appears exactly once.
//
// radius <= 0 yields an empty slice; otherwise len is 8*radius.
//
// Emission order:
//  1. east edge, down to the corner:   (r, 0) … (r, r)
//  2. south edge, right to left:       (r-1, r) … (-r+1, r)
//  3. west edge, bottom to top:        (-r, r) … (-r, -r)
//  4. north edge, left to right:       (-r+1, -r) … (r, -r)
//  5. east edge, back toward the start: (r, -r+1) … (r, -1)
func Ring(radius int) []Vector {
	if radius <= 0 {
		return nil
	}
	r := radius
	ring := make([]Vector, 0, 8*r)
	for k := 0; k <= r; k++ {
		ring = append(ring, Vector{r, k})
	}
	for k := r - 1; k >= -r+1; k-- {
		ring = append(ring, Vector{k, r})
	}
	for k := r; k >= -r; k-- {
		ring = append(ring, Vector{-r, k})
	}
	for k := -r + 1; k <= r; k++ {
		ring = append(ring, Vector{k, -r})
	}
	for k := -r + 1; k < 0; k++ {
		ring = append(ring, Vector{r, k})
	}
	return ring
}

// Rebase converts the ring index a match was found at into the directional
// index for the next Next call.
//
// The index is moved to the far side of the ring, one slot short of the
// opposite cell in the scan direction (that slot was already known), then
// divided by power so it lands on a comparable slot of Ring(1):
//
//	floor(((tryIndex - (ceil(ringLen/2) - dir)) mod ringLen) / power)
//
// The modulo is always non-negative. A non-positive ringLen or power yields 0.
func Rebase(tryIndex, ringLen int, dir Direction, power int) int {
	if ringLen <= 0 || power <= 0 {
		return 0
	}
	half := (ringLen + 1) / 2
	return mod(tryIndex-(half-int(dir)), ringLen) / power
}

// mod is the floored modulo: the result has the sign of n.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
