package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// jobFile represents the top-level structure of a job file for decoding.
type jobFile struct {
	Jobs []*fileJob `hcl:"job,block" yaml:"jobs"`
}

// fileJob is a job block. Optional attributes are pointers so an absent
// attribute keeps the DefaultJob value.
type fileJob struct {
	Name      string   `hcl:"name,label" yaml:"name"`
	Input     string   `hcl:"input" yaml:"input"`
	Output    string   `hcl:"output" yaml:"output"`
	TrackName *string  `hcl:"track,optional" yaml:"track"`
	Zones     *string  `hcl:"zones,optional" yaml:"zones"`
	Classify  *string  `hcl:"classify,optional" yaml:"classify"`
	Target    *int     `hcl:"target,optional" yaml:"target"`
	Latitude  *float64 `hcl:"latitude,optional" yaml:"latitude"`
	Longitude *float64 `hcl:"longitude,optional" yaml:"longitude"`
	StartX    *int     `hcl:"start_x,optional" yaml:"start_x"`
	StartY    *int     `hcl:"start_y,optional" yaml:"start_y"`
	Heading   *string  `hcl:"heading,optional" yaml:"heading"`
	Direction *int     `hcl:"direction,optional" yaml:"direction"`
	Limit     *int     `hcl:"limit,optional" yaml:"limit"`
	Preview   *string  `hcl:"preview,optional" yaml:"preview"`
}

func (h *fileJob) job() Job {
	j := DefaultJob()
	j.Name = h.Name
	j.Input = h.Input
	j.Output = h.Output
	set(&j.TrackName, h.TrackName)
	set(&j.Zones, h.Zones)
	set(&j.Classify, h.Classify)
	set(&j.Target, h.Target)
	set(&j.Latitude, h.Latitude)
	set(&j.Longitude, h.Longitude)
	set(&j.StartX, h.StartX)
	set(&j.StartY, h.StartY)
	set(&j.Heading, h.Heading)
	set(&j.Direction, h.Direction)
	set(&j.Limit, h.Limit)
	set(&j.Preview, h.Preview)
	return j
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Load parses the job file at path. Files ending in .yaml or .yml are read
// as YAML, anything else as HCL. In both formats relative input, output and
// preview paths are resolved against the file's directory; HCL additionally
// exposes that directory as config_dir.
func Load(path string) ([]Job, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(src, path, filepath.Dir(abs))
	default:
		return Parse(src, path, filepath.Dir(abs))
	}
}

// Parse decodes HCL job blocks from src. filename is used in diagnostics;
// dir is exposed to expressions as config_dir, and relative input, output
// and preview paths are joined to it. Every job is validated.
func Parse(src []byte, filename, dir string) ([]Job, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(dir),
		},
	}
	var parsed jobFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	return collect(parsed.Jobs, filename, dir)
}

// collect converts decoded blocks to validated jobs with paths resolved
// against dir, rejecting duplicate names.
func collect(blocks []*fileJob, filename, dir string) ([]Job, error) {
	jobs := make([]Job, 0, len(blocks))
	seen := make(map[string]bool, len(blocks))
	for _, h := range blocks {
		if seen[h.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateJob, h.Name, filename)
		}
		seen[h.Name] = true

		j := h.job()
		j.Input = resolve(dir, j.Input)
		j.Output = resolve(dir, j.Output)
		j.Preview = resolve(dir, j.Preview)
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// resolve joins a relative path to dir. Empty and absolute paths, and any
// path when dir is empty, are returned unchanged.
func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
