package preview

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/pixtrail/geo"
)

// WriteHTML writes an interactive scatter chart of points to w. Points are
// coloured by their order along the track.
func WriteHTML(w io.Writer, title string, points []geo.TrackPoint) error {
	if len(points) == 0 {
		return ErrEmptyTrack
	}

	data := make([]opts.ScatterData, len(points))
	minLat, maxLat := points[0].Lat, points[0].Lat
	minLon, maxLon := points[0].Lon, points[0].Lon
	for i, p := range points {
		data[i] = opts.ScatterData{Value: []interface{}{p.Lon, p.Lat, i}}
		minLat, maxLat = min(minLat, p.Lat), max(maxLat, p.Lat)
		minLon, maxLon = min(minLon, p.Lon), max(maxLon, p.Lon)
	}
	// Equal padding on both axes keeps the track's aspect ratio.
	pad := max(maxLat-minLat, maxLon-minLon)*0.05 + geo.DefaultScale

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d runs=%d", len(points), len(Runs(points)))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: minLon - pad, Max: maxLon + pad, Name: "Longitude", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: minLat - pad, Max: maxLat + pad, Name: "Latitude", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max(len(points)-1, 1)),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#fc4c02", "#fde725"}},
		}),
	)
	scatter.AddSeries("track", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	return scatter.Render(w)
}

func renderHTML(path, title string, points []geo.TrackPoint) (err error) {
	if len(points) == 0 {
		return ErrEmptyTrack
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := WriteHTML(f, title, points); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}
