package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pixtrail/config"
	"github.com/katalvlaran/pixtrail/raster"
	"github.com/katalvlaran/pixtrail/traverse"
)

const jobsHCL = `
job "maze" {
  input     = "${config_dir}/maze.png"
  output    = "maze.gpx"
  track     = "Maze Walk"
  zones     = "bc"
  latitude  = 10.5
  longitude = 20.25
  start_x   = 10
  start_y   = 4
  heading   = "south"
  direction = -1
  limit     = 50
}

job "minimal" {
  input  = "a.png"
  output = "a.gpx"
}
`

func TestParse(t *testing.T) {
	jobs, err := config.Parse([]byte(jobsHCL), "jobs.hcl", "/data")
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	maze := jobs[0]
	assert.Equal(t, "maze", maze.Name)
	assert.Equal(t, "/data/maze.png", maze.Input)
	assert.Equal(t, "/data/maze.gpx", maze.Output)
	assert.Equal(t, "Maze Walk", maze.TrackName)
	assert.Equal(t, 10, maze.StartX)
	assert.Equal(t, -1, maze.Direction)
	assert.Equal(t, 50, maze.Limit)

	p, err := maze.Plan()
	require.NoError(t, err)
	assert.Equal(t, raster.Black|raster.Colour, p.Zones)
	assert.Equal(t, traverse.South, p.Heading)
	assert.Equal(t, traverse.CounterClockwise, p.Direction)
	assert.Equal(t, traverse.Position{X: 10, Y: 4}, p.Start)
	assert.InDelta(t, 10.5, p.Reference.Lat, 1e-12)

	def := config.DefaultJob()
	minimal := jobs[1]
	assert.Equal(t, def.TrackName, minimal.TrackName)
	assert.Equal(t, def.Zones, minimal.Zones)
	assert.Equal(t, def.Latitude, minimal.Latitude)
	assert.Equal(t, -1, minimal.StartX)
	assert.Equal(t, "/data/a.png", minimal.Input)
	assert.Equal(t, "/data/a.gpx", minimal.Output)
}

// TestParse_SameRelativePathsAsYAML checks both formats resolve relative
// paths against the job file's directory.
func TestParse_SameRelativePathsAsYAML(t *testing.T) {
	hclJobs, err := config.Parse([]byte(jobBlock(`preview = "p.svg"`)), "jobs.hcl", "/data")
	require.NoError(t, err)
	yamlJobs, err := config.ParseYAML([]byte("jobs:\n  - {name: a, input: x, output: y, preview: p.svg}\n"), "jobs.yaml", "/data")
	require.NoError(t, err)

	require.Len(t, hclJobs, 1)
	require.Len(t, yamlJobs, 1)
	assert.Equal(t, hclJobs[0], yamlJobs[0])
	assert.Equal(t, "/data/x", hclJobs[0].Input)
	assert.Equal(t, "/data/y", hclJobs[0].Output)
	assert.Equal(t, "/data/p.svg", hclJobs[0].Preview)
}

// jobBlock returns a valid job block named a with extra attribute lines.
func jobBlock(extra ...string) string {
	src := "job \"a\" {\n  input = \"x\"\n  output = \"y\"\n"
	for _, line := range extra {
		src += "  " + line + "\n"
	}
	return src + "}\n"
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"Duplicate":    {src: jobBlock() + jobBlock(), want: config.ErrDuplicateJob},
		"BadDirection": {src: jobBlock("direction = 0"), want: config.ErrInvalidJob},
		"BadZones":     {src: jobBlock(`zones = "q"`), want: raster.ErrUnknownZone},
		"BadHeading":   {src: jobBlock(`heading = "up-ish"`), want: traverse.ErrUnknownHeading},
		"BadClassify":  {src: jobBlock(`classify = "luma +"`), want: raster.ErrBadExpr},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), "bad.hcl", ".")
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte(`job "a" {`), "broken.hcl", ".")
	assert.Error(t, err)

	_, err = config.Parse([]byte("job \"a\" {\n  output = \"y\"\n}\n"), "missing.hcl", ".")
	assert.Error(t, err, "input is a required attribute")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.hcl")
	require.NoError(t, os.WriteFile(path, []byte(jobsHCL), 0o644))

	jobs, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, filepath.Join(dir, "maze.png"), jobs[0].Input)

	_, err = config.Load(filepath.Join(dir, "nope.hcl"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlan_Classifier(t *testing.T) {
	j := config.DefaultJob()
	j.Input, j.Output = "in.png", "out.gpx"

	p, err := j.Plan()
	require.NoError(t, err)
	assert.Equal(t, raster.Black, p.Classifier)

	j.Classify = "luma < 64"
	p, err = j.Plan()
	require.NoError(t, err)
	require.IsType(t, &raster.Expr{}, p.Classifier)
	assert.Equal(t, "luma < 64", p.Classifier.(*raster.Expr).String())
	assert.Equal(t, raster.Black, p.Zones)
}

// TestPlan_HalfStart treats a start with one negative coordinate as unspecified.
func TestPlan_HalfStart(t *testing.T) {
	j := config.DefaultJob()
	j.Input, j.Output = "in.png", "out.gpx"
	j.StartX, j.StartY = 5, -1

	p, err := j.Plan()
	require.NoError(t, err)
	assert.Equal(t, traverse.Unspecified, p.Start)
}

func TestValidate_CollectsEverything(t *testing.T) {
	j := config.DefaultJob()
	j.Target = -2
	j.Limit = -1
	j.Latitude = 120

	err := j.Validate()
	require.ErrorIs(t, err, config.ErrInvalidJob)
	for _, part := range []string{"input is required", "output is required", "target", "limit", "latitude"} {
		assert.Contains(t, err.Error(), part)
	}
}
