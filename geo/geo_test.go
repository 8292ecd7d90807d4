package geo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixtrail/geo"
	"github.com/katalvlaran/pixtrail/traverse"
)

func TestProject(t *testing.T) {
	start := time.Date(2024, 5, 1, 12, 0, 0, 750_000_000, time.FixedZone("X", 3600))
	p := geo.NewProjector(geo.Point{Lat: 32.3451, Lon: -106.5614}, start)

	tp := p.Project(traverse.Step{X: 10, Y: 20, Ordinal: 3})
	assert.InDelta(t, 32.3449, tp.Lat, 1e-9)
	assert.InDelta(t, -106.5613, tp.Lon, 1e-9)
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 3, 0, time.UTC), tp.Time)
	assert.Equal(t, geo.DefaultCadence, tp.Cadence)
	assert.Zero(t, tp.Elevation)
	assert.Equal(t, 10, tp.Cell.X)
}

func TestProjectAll_Monotonic(t *testing.T) {
	p := geo.NewProjector(geo.Point{}, time.Unix(0, 0))
	steps := []traverse.Step{{X: 0, Y: 0, Ordinal: 0}, {X: 1, Y: 0, Ordinal: 1}, {X: 1, Y: 1, Ordinal: 2}}
	pts := p.ProjectAll(steps)
	require.Len(t, pts, 3)
	for i := 1; i < len(pts); i++ {
		assert.True(t, pts[i].Time.After(pts[i-1].Time), "time must increase")
	}
	assert.InDelta(t, -geo.DefaultScale, pts[2].Lat, 1e-12)
	assert.InDelta(t, geo.DefaultScale, pts[2].Lon, 1e-12)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	var c geo.Clock = geo.FixedClock(at)
	assert.Equal(t, at, c.Now())
	assert.False(t, geo.SystemClock{}.Now().IsZero())
}
