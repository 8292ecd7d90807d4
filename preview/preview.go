// Package preview renders a track as an image so a conversion can be checked
// without a GPX viewer. Contiguous runs are drawn as solid lines; fallback
// jumps between runs are dashed.
package preview

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/pixtrail/geo"
)

// ErrEmptyTrack is returned when there is nothing to draw.
var ErrEmptyTrack = errors.New("preview: track has no points")

// Size is the edge length of a rendered preview.
const Size = 6 * vg.Inch

var (
	runColor  = color.RGBA{R: 252, G: 76, B: 2, A: 255}
	jumpColor = color.Gray{Y: 160}
)

// Plot builds the plot of points. X is longitude, Y latitude.
func Plot(title string, points []geo.TrackPoint) (*plot.Plot, error) {
	if len(points) == 0 {
		return nil, ErrEmptyTrack
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	for _, run := range Runs(points) {
		line, err := plotter.NewLine(xys(run))
		if err != nil {
			return nil, err
		}
		line.Color = runColor
		line.Width = vg.Points(1)
		p.Add(line)
	}
	for i := 1; i < len(points); i++ {
		if adjacent(points[i-1], points[i]) {
			continue
		}
		jump, err := plotter.NewLine(xys(points[i-1 : i+1]))
		if err != nil {
			return nil, err
		}
		jump.Color = jumpColor
		jump.Width = vg.Points(0.5)
		jump.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
		p.Add(jump)
	}

	start, err := plotter.NewScatter(xys(points[:1]))
	if err != nil {
		return nil, err
	}
	start.GlyphStyle.Shape = draw.CircleGlyph{}
	start.GlyphStyle.Radius = vg.Points(3)
	start.GlyphStyle.Color = runColor
	p.Add(start)
	p.Legend.Add("start", start)
	p.Legend.Top = true
	return p, nil
}

// Render draws points to path. The format follows the extension: .html
// writes an interactive chart, anything else (.png, .svg, .pdf, ...) a static
// image.
func Render(path, title string, points []geo.TrackPoint) error {
	if strings.EqualFold(filepath.Ext(path), ".html") {
		return renderHTML(path, title, points)
	}
	p, err := Plot(title, points)
	if err != nil {
		return err
	}
	if err := p.Save(Size, Size, path); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// Runs splits points where consecutive cells are not neighbours.
func Runs(points []geo.TrackPoint) [][]geo.TrackPoint {
	if len(points) == 0 {
		return nil
	}
	var runs [][]geo.TrackPoint
	from := 0
	for i := 1; i < len(points); i++ {
		if !adjacent(points[i-1], points[i]) {
			runs = append(runs, points[from:i])
			from = i
		}
	}
	return append(runs, points[from:])
}

func adjacent(a, b geo.TrackPoint) bool {
	dx, dy := a.Cell.X-b.Cell.X, a.Cell.Y-b.Cell.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func xys(points []geo.TrackPoint) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, pt := range points {
		out[i] = plotter.XY{X: pt.Lon, Y: pt.Lat}
	}
	return out
}
