package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes jobs from a YAML document of the form
//
//	jobs:
//	  - name: maze
//	    input: maze.png
//	    output: maze.gpx
//	    heading: south
//
// Keys match the HCL attributes. Relative input, output and preview paths
// are joined to dir, as in Parse. Every job is validated.
func ParseYAML(src []byte, filename, dir string) ([]Job, error) {
	var parsed jobFile
	if err := yaml.Unmarshal(src, &parsed); err != nil {
		return nil, fmt.Errorf("config: failed to parse YAML %s: %w", filename, err)
	}
	for i, h := range parsed.Jobs {
		if h == nil {
			return nil, fmt.Errorf("%w: empty entry %d in %s", ErrInvalidJob, i, filename)
		}
		if h.Name == "" {
			return nil, fmt.Errorf("%w: entry %d in %s has no name", ErrInvalidJob, i, filename)
		}
	}
	return collect(parsed.Jobs, filename, dir)
}
