package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/pixtrail/config"
	"github.com/katalvlaran/pixtrail/convert"
	"github.com/katalvlaran/pixtrail/gpx"
	"github.com/katalvlaran/pixtrail/internal/cli"
	"github.com/katalvlaran/pixtrail/internal/ctxlog"
)

// main is the entrypoint for the pixtrail binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic; stdout receives reports, stderr the logs.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	switch cfg.Mode {
	case cli.Inspect:
		return inspect(stdout, cfg.Path)
	case cli.Batch:
		jobs, err := config.Load(cfg.Path)
		if err != nil {
			return err
		}
		logger.Info("running batch", slog.String("config", cfg.Path), slog.Int("jobs", len(jobs)), slog.Int("workers", cfg.Workers))
		var c convert.Converter
		outcomes, err := c.RunAll(ctx, jobs, cfg.Workers)
		for _, o := range outcomes {
			if o != nil {
				report(stdout, o)
			}
		}
		return err
	default:
		o, err := convert.Convert(ctx, cfg.Job)
		if err != nil {
			return err
		}
		report(stdout, o)
		return nil
	}
}

func report(w io.Writer, o *convert.Outcome) {
	fmt.Fprintf(w, "%s: %d/%d points, %d fallbacks, %d jumps (longest %d), %d regions -> %s\n",
		o.Job.Name, o.Stats.Steps, o.Path.Expected, o.Path.Fallbacks,
		o.Stats.Jumps, o.Stats.LongestJump, o.Stats.Regions, o.Job.Output)
	if o.Path.Truncated {
		fmt.Fprintf(w, "%s: walk stopped early, grid exhausted\n", o.Job.Name)
	}
}

func inspect(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	t, err := gpx.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "track: %q\npoints: %d\n", t.Name, len(t.Points))
	if len(t.Points) == 0 {
		return nil
	}

	first, last := t.Points[0], t.Points[len(t.Points)-1]
	minLat, maxLat := first.Lat, first.Lat
	minLon, maxLon := first.Lon, first.Lon
	for _, p := range t.Points[1:] {
		minLat, maxLat = min(minLat, p.Lat), max(maxLat, p.Lat)
		minLon, maxLon = min(minLon, p.Lon), max(maxLon, p.Lon)
	}
	fmt.Fprintf(w, "start: %s\nend: %s\nduration: %s\n",
		first.Time.Format("2006-01-02T15:04:05Z"), last.Time.Format("2006-01-02T15:04:05Z"), last.Time.Sub(first.Time))
	fmt.Fprintf(w, "bounds: lat %.7f..%.7f lon %.7f..%.7f\n", minLat, maxLat, minLon, maxLon)
	return nil
}
