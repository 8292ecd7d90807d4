package raster

import (
	"fmt"
	"image/color"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Pixel is the environment a pixel expression runs against. Channels are
// 8-bit and un-premultiplied.
type Pixel struct {
	R    int `expr:"r"`
	G    int `expr:"g"`
	B    int `expr:"b"`
	A    int `expr:"a"`
	Luma int `expr:"luma"`
}

// PixelOf returns the expression environment for c.
func PixelOf(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: int(n.R), G: int(n.G), B: int(n.B), A: int(n.A), Luma: int(Luma(c))}
}

// Expr classifies pixels with a boolean expression over r, g, b, a and luma,
// for example "luma < 64 && a > 0" or "r > 200 && g < 80".
type Expr struct {
	source  string
	program *vm.Program
}

// CompileExpr compiles src. Unknown variables and non-boolean results are
// rejected at compile time.
func CompileExpr(src string) (*Expr, error) {
	program, err := expr.Compile(src, expr.Env(Pixel{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrBadExpr, src, err)
	}
	return &Expr{source: src, program: program}, nil
}

// Traversable runs the expression for c. A runtime error (such as a division
// by zero) counts as not traversable.
func (e *Expr) Traversable(c color.Color) bool {
	out, err := expr.Run(e.program, PixelOf(c))
	if err != nil {
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func (e *Expr) String() string {
	return e.source
}
