package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pixtrail/config"
)

// ExitError carries the exit code the process should end with.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode is what the binary was asked to do.
type Mode int

const (
	// Single converts the one job described by flags.
	Single Mode = iota
	// Batch runs every job of an HCL file.
	Batch
	// Inspect summarizes an existing GPX file.
	Inspect
)

// Config is the parsed command line.
type Config struct {
	Mode Mode
	// Job is the flag-built job, set in Single mode.
	Job config.Job
	// Path is the HCL file in Batch mode and the GPX file in Inspect mode.
	Path      string
	Workers   int
	LogLevel  string
	LogFormat string
}

// Parse processes command-line arguments. It returns the configuration, a
// boolean telling the program to exit cleanly (help was printed), or an
// *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("pixtrail", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pixtrail - walk the pixels of an image and write them as a GPX track.

Usage:
  pixtrail -i IMAGE -o OUTPUT [options]
  pixtrail -config JOBS.hcl [options]
  pixtrail -inspect TRACK.gpx

Options:
`)
		flagSet.PrintDefaults()
	}

	d := config.DefaultJob()
	input := flagSet.String("i", "", "Input image (PNG, JPEG, GIF, BMP, TIFF or WebP).")
	outputPath := flagSet.String("o", "./output.gpx", "Output GPX file.")
	name := flagSet.String("n", d.TrackName, "Name of the track.")
	zones := flagSet.String("col", d.Zones, "Colour zones to traverse, combinable: b = black, w = white, c = neither.")
	classify := flagSet.String("expr", "", "Pixel expression over r, g, b, a and luma, e.g. 'luma < 64'. Overrides -col.")
	lat := flagSet.Float64("lat", d.Latitude, "Latitude the track is based around.")
	lon := flagSet.Float64("lon", d.Longitude, "Longitude the track is based around.")
	startX := flagSet.Int("px", d.StartX, "Starting pixel column; ignored unless -py is also non-negative.")
	startY := flagSet.Int("py", d.StartY, "Starting pixel row; ignored unless -px is also non-negative.")
	heading := flagSet.String("pd", "0", "Initial heading: 0-7 clockwise from east, or a name such as east, nw or left-down.")
	direction := flagSet.Int("d", d.Direction, "Ring scan direction: 1 = clockwise, -1 = counter-clockwise.")
	limit := flagSet.Int("limit", 0, "Stop after this many points. 0 means no limit.")
	previewPath := flagSet.String("preview", "", "Also render the track to this image file (.png, .svg or .pdf).")
	configPath := flagSet.String("config", "", "HCL file of jobs to run as a batch.")
	inspect := flagSet.String("inspect", "", "Print a summary of an existing GPX file and exit.")
	workers := flagSet.Int("workers", 4, "Number of batch jobs converted concurrently.")
	logFormat := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevel := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	cfg := &Config{
		Workers:   *workers,
		LogFormat: strings.ToLower(*logFormat),
		LogLevel:  strings.ToLower(*logLevel),
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if cfg.Workers < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}

	switch {
	case *inspect != "" && (*configPath != "" || *input != ""):
		return nil, false, &ExitError{Code: 2, Message: "-inspect cannot be combined with -i or -config"}
	case *configPath != "" && *input != "":
		return nil, false, &ExitError{Code: 2, Message: "-config cannot be combined with -i"}
	case *inspect != "":
		cfg.Mode, cfg.Path = Inspect, *inspect
		return cfg, false, nil
	case *configPath != "":
		cfg.Mode, cfg.Path = Batch, *configPath
		return cfg, false, nil
	case *input == "":
		flagSet.Usage()
		return nil, true, nil
	}

	cfg.Mode = Single
	cfg.Job = config.Job{
		Name:      "cli",
		Input:     *input,
		Output:    *outputPath,
		TrackName: *name,
		Zones:     *zones,
		Classify:  *classify,
		Target:    d.Target,
		Latitude:  *lat,
		Longitude: *lon,
		StartX:    *startX,
		StartY:    *startY,
		Heading:   *heading,
		Direction: *direction,
		Limit:     *limit,
		Preview:   *previewPath,
	}
	if err := cfg.Job.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, false, nil
}
