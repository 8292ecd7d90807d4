// Package config describes conversion jobs and loads them from HCL or YAML
// files.
//
// A job file holds any number of job blocks:
//
//	job "maze" {
//	  input     = "${config_dir}/maze.png"
//	  output    = "maze.gpx"
//	  track     = "Maze Walk"
//	  zones     = "bc"
//	  latitude  = 32.3451
//	  longitude = -106.5614
//	  start_x   = 10
//	  start_y   = 4
//	  heading   = "south"
//	  direction = -1
//	  classify  = "luma < 64 && a > 0"
//	  preview   = "maze.svg"
//	}
//
// Only input and output are required; everything else falls back to
// DefaultJob. The variable config_dir holds the directory of the file being
// loaded, so jobs can refer to images next to it. When classify is set it
// replaces zones.
//
// Files ending in .yaml or .yml use the same keys under a jobs list; see
// ParseYAML.
package config
