// Package convert runs image-to-GPX jobs end to end: decode the image into a
// grid, resolve the start cell, build the path, project it and write GPX.
//
// Each job owns its grid, so jobs are independent and RunAll runs them in
// parallel.
package convert

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pixtrail/config"
	"github.com/katalvlaran/pixtrail/geo"
	"github.com/katalvlaran/pixtrail/gpx"
	"github.com/katalvlaran/pixtrail/grid"
	"github.com/katalvlaran/pixtrail/internal/ctxlog"
	"github.com/katalvlaran/pixtrail/preview"
	"github.com/katalvlaran/pixtrail/raster"
	"github.com/katalvlaran/pixtrail/trackstat"
	"github.com/katalvlaran/pixtrail/traverse"
)

// Outcome is the result of one job.
type Outcome struct {
	RunID uuid.UUID
	Job   config.Job
	Start traverse.Position
	Path  *traverse.Path
	Stats trackstat.Stats
}

// Converter runs jobs. The zero value uses the system clock.
type Converter struct {
	// Clock dates the first track point.
	Clock geo.Clock
}

func (c *Converter) now() geo.Clock {
	if c == nil || c.Clock == nil {
		return geo.SystemClock{}
	}
	return c.Clock
}

// Convert runs job with a zero Converter.
func Convert(ctx context.Context, job config.Job) (*Outcome, error) {
	var c Converter
	return c.Convert(ctx, job)
}

// Convert runs one job and writes its GPX output. Cancelling ctx stops the
// walk between two steps.
func (c *Converter) Convert(ctx context.Context, job config.Job) (*Outcome, error) {
	plan, err := job.Plan()
	if err != nil {
		return nil, err
	}
	out := &Outcome{RunID: uuid.New(), Job: job}
	logger := ctxlog.FromContext(ctx).With(slog.String("run_id", out.RunID.String()), slog.String("job", job.Name))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("decoding image", slog.String("input", job.Input), slog.String("classifier", fmt.Sprint(plan.Classifier)))
	g, err := raster.DecodeFile(job.Input, plan.Classifier, job.Target)
	if err != nil {
		return nil, fmt.Errorf("convert %q: %w", job.Name, err)
	}
	regions := len(g.Components(job.Target, grid.Conn8))
	logger.Debug("grid ready",
		slog.Int("width", g.Width),
		slog.Int("height", g.Height),
		slog.Int("traversable", g.Count(job.Target)),
		slog.Int("regions", regions))

	index := plan.Heading.Index()
	out.Start, err = traverse.Start(g, plan.Start, index, job.Target, plan.Direction)
	if err != nil {
		return nil, fmt.Errorf("convert %q: %w", job.Name, err)
	}

	proj := geo.NewProjector(plan.Reference, c.now().Now())
	var points []geo.TrackPoint
	out.Path, err = traverse.Build(g, out.Start, index, job.Target, plan.Direction,
		traverse.WithLogger(logger),
		traverse.WithLimit(job.Limit),
		traverse.WithOnStep(func(s traverse.Step) error {
			points = append(points, proj.Project(s))
			return ctx.Err()
		}))
	if err != nil {
		return nil, fmt.Errorf("convert %q: %w", job.Name, err)
	}
	out.Stats = trackstat.Summarize(out.Path.Steps)
	out.Stats.Regions = regions

	if err := writeTrack(job.Output, gpx.Track{Name: job.TrackName, Points: points}); err != nil {
		return nil, fmt.Errorf("convert %q: %w", job.Name, err)
	}
	if job.Preview != "" {
		if len(points) == 0 {
			logger.Warn("skipping preview of empty track", slog.String("preview", job.Preview))
		} else if err := preview.Render(job.Preview, job.TrackName, points); err != nil {
			return nil, fmt.Errorf("convert %q: %w", job.Name, err)
		}
	}

	logger.Info("completed GPX conversion",
		slog.String("output", job.Output),
		slog.Int("points", len(points)),
		slog.Int("fallbacks", out.Path.Fallbacks),
		slog.Int("jumps", out.Stats.Jumps),
		slog.Bool("truncated", out.Path.Truncated))
	return out, nil
}

// RunAll converts jobs with at most workers running at once (workers <= 0
// means one per job). The first failure cancels the jobs not yet finished.
// Outcomes are returned in job order; failed or skipped jobs leave nil.
func (c *Converter) RunAll(ctx context.Context, jobs []config.Job, workers int) ([]*Outcome, error) {
	outcomes := make([]*Outcome, len(jobs))
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, job := range jobs {
		eg.Go(func() error {
			o, err := c.Convert(ctx, job)
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}
	return outcomes, eg.Wait()
}

// writeTrack writes t to path. An empty track produces an empty file.
func writeTrack(path string, t gpx.Track) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return gpx.Encode(f, t)
}
