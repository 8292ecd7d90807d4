// Package raster decodes an image into a categorical grid.Grid.
//
// Every pixel is handed to a Classifier. Pixels it accepts become the target
// value; all others become Ignored. Zones classifies by 8-bit luma into
// Black (luma 0), White (luma 255) or Colour (anything in between); Expr
// evaluates a user expression over the pixel's channels.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF and WebP.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/pixtrail/grid"
)

// Ignored is the cell value given to pixels outside the selected zones.
const Ignored = -1

var (
	// ErrUnknownZone is returned by ParseZones for a letter other than b, w or c.
	ErrUnknownZone = errors.New("raster: unknown colour zone")
	// ErrNegativeTarget is returned when the target value is below zero.
	ErrNegativeTarget = errors.New("raster: target value must be non-negative")
	// ErrNilClassifier is returned when no Classifier is given.
	ErrNilClassifier = errors.New("raster: nil classifier")
	// ErrBadExpr is returned by CompileExpr for an expression that does not
	// compile to a boolean.
	ErrBadExpr = errors.New("raster: invalid pixel expression")
)

// Classifier decides whether a pixel is traversable.
type Classifier interface {
	Traversable(c color.Color) bool
}

// Zones is a set of colour zones treated as traversable.
type Zones uint8

const (
	// Black selects pixels with luma 0.
	Black Zones = 1 << iota
	// White selects pixels with luma 255.
	White
	// Colour selects pixels that are neither black nor white.
	Colour
)

// ParseZones reads a combination of the letters b (black), w (white) and
// c (colour), in any order and case. The empty string selects no zone.
func ParseZones(s string) (Zones, error) {
	var z Zones
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'b':
			z |= Black
		case 'w':
			z |= White
		case 'c':
			z |= Colour
		default:
			return 0, fmt.Errorf("%w: %q in %q", ErrUnknownZone, r, s)
		}
	}
	return z, nil
}

// Has reports whether z includes every zone in other.
func (z Zones) Has(other Zones) bool {
	return z&other == other
}

func (z Zones) String() string {
	var b strings.Builder
	if z.Has(Black) {
		b.WriteByte('b')
	}
	if z.Has(White) {
		b.WriteByte('w')
	}
	if z.Has(Colour) {
		b.WriteByte('c')
	}
	return b.String()
}

// Match reports whether a pixel of the given luma falls in z.
func (z Zones) Match(luma uint8) bool {
	switch luma {
	case 0:
		return z.Has(Black)
	case 255:
		return z.Has(White)
	default:
		return z.Has(Colour)
	}
}

// Traversable reports whether the luma of c falls in z.
func (z Zones) Traversable(c color.Color) bool {
	return z.Match(Luma(c))
}

// Luma returns the 8-bit ITU-R 601 luma of c, ignoring alpha. The colour
// channels are read un-premultiplied, so a fully transparent pixel keeps
// the colour it was stored with.
func Luma(c color.Color) uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	y := (19595*uint32(n.R) + 38470*uint32(n.G) + 7471*uint32(n.B) + 1<<15) >> 16
	return uint8(y)
}

// FromImage classifies every pixel of img with cls. The grid has the image's
// dimensions; Cells[y][x] corresponds to the pixel at (Min.X+x, Min.Y+y).
func FromImage(img image.Image, cls Classifier, target int) (*grid.Grid, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if cls == nil {
		return nil, ErrNilClassifier
	}
	b := img.Bounds()
	g, err := grid.Filled(b.Dx(), b.Dy(), Ignored)
	if err != nil {
		return nil, fmt.Errorf("raster: image %dx%d: %w", b.Dx(), b.Dy(), err)
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if cls.Traversable(img.At(b.Min.X+x, b.Min.Y+y)) {
				g.Set(x, y, target)
			}
		}
	}
	return g, nil
}

// Decode reads an image from r and classifies it with FromImage.
func Decode(r io.Reader, cls Classifier, target int) (*grid.Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("raster: decode: %w", err)
	}
	g, err := FromImage(img, cls, target)
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}
	return g, nil
}

// DecodeFile opens path and decodes it.
func DecodeFile(path string, cls Classifier, target int) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, cls, target)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
