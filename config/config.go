package config // Run configuration shared by the pepfeat tools

import (
	"errors"
	"fmt"
)

// ErrBadConfig marks an invalid run configuration. Fatal before any output
// is written.
var ErrBadConfig = errors.New("invalid configuration")

// Settings holds one profiling run's configuration.
type Settings struct {
	Preset  string // descriptor preset: "E" or "Z"
	MaxLag  int
	Class   string // class label appended to every record
	Workers int
	InFile  string
	OutFile string
}

// Dim returns the descriptor dimensionality implied by the preset, or 0 for
// an unrecognized preset.
func (s Settings) Dim() int {
	switch s.Preset {
	case "E":
		return 5
	case "Z":
		return 3
	}
	return 0
}

// Validate checks the settings before any work starts.
func (s Settings) Validate() error {
	if s.Dim() == 0 {
		return fmt.Errorf("%w: preset must be E or Z, got %q", ErrBadConfig, s.Preset)
	}
	if s.MaxLag < 1 {
		return fmt.Errorf("%w: max_lag must be positive, got %d", ErrBadConfig, s.MaxLag)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrBadConfig, s.Workers)
	}
	if s.InFile == "" {
		return fmt.Errorf("%w: in_file is required", ErrBadConfig)
	}
	if s.OutFile == "" {
		return fmt.Errorf("%w: out_file is required", ErrBadConfig)
	}
	return nil
}
