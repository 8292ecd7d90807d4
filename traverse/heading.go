package traverse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownHeading is returned by ParseHeading for an unrecognised name.
var ErrUnknownHeading = errors.New("traverse: unknown heading")

// Heading is one of the eight canonical starting offsets. Its value is the
// index of that offset in Ring(1), so it can be passed straight to Next as a
// directional index.
type Heading int

const (
	East Heading = iota
	SouthEast
	South
	SouthWest
	West
	NorthWest
	North
	NorthEast
)

var headingNames = [...]string{"east", "south-east", "south", "south-west", "west", "north-west", "north", "north-east"}

var headingAliases = map[string]Heading{
	"e": East, "right": East,
	"se": SouthEast, "southeast": SouthEast, "right-down": SouthEast,
	"s": South, "down": South,
	"sw": SouthWest, "southwest": SouthWest, "left-down": SouthWest,
	"w": West, "left": West,
	"nw": NorthWest, "northwest": NorthWest, "left-up": NorthWest,
	"n": North, "up": North,
	"ne": NorthEast, "northeast": NorthEast, "right-up": NorthEast,
}

// Index returns the directional index of h.
func (h Heading) Index() int {
	return int(h)
}

// Vector returns the unit offset h points at, or the zero Vector for a
// value outside East..NorthEast.
func (h Heading) Vector() Vector {
	if h < East || h > NorthEast {
		return Vector{}
	}
	return Ring(1)[h]
}

func (h Heading) String() string {
	if h >= East && h <= NorthEast {
		return headingNames[h]
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading accepts a digit 0-7, a compass name ("east", "north-west"),
// its abbreviation ("e", "nw") or the screen-relative form ("right-down").
func ParseHeading(s string) (Heading, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 7 {
			return 0, fmt.Errorf("%w: %d is not in 0..7", ErrUnknownHeading, n)
		}
		return Heading(n), nil
	}
	for i, name := range headingNames {
		if s == name {
			return Heading(i), nil
		}
	}
	if h, ok := headingAliases[s]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}
