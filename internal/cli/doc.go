// Package cli turns command-line arguments into a run configuration for the
// pixtrail binary. It only parses and validates; loading job files and
// running conversions is left to the caller.
package cli
