package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMalformedProgress is returned when a progress file does not hold "<seed> <branches>"
var ErrMalformedProgress = errors.New("malformed progress file")

// Progress is the resumable state of an interrupted tree
type Progress struct {
	Seed     int64
	Branches int
}

// SaveProgress writes p to path as "<seed> <branches>", creating parent directories
func SaveProgress(path string, p Progress) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
	}
	data := fmt.Sprintf("%d %d", p.Seed, p.Branches)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// LoadProgress reads a progress file written by SaveProgress
func LoadProgress(path string) (Progress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Progress{}, fmt.Errorf("load progress: %w", err)
	}
	return ParseProgress(string(data))
}

// ParseProgress decodes the two leading integers of a progress file.
// Any seed is accepted; anything after the branch count is ignored.
func ParseProgress(s string) (Progress, error) {
	var p Progress
	if n, _ := fmt.Sscan(s, &p.Seed, &p.Branches); n != 2 {
		return Progress{}, fmt.Errorf("%w: %q", ErrMalformedProgress, s)
	}
	if p.Branches < 0 {
		return Progress{}, fmt.Errorf("%w: negative branch count in %q", ErrMalformedProgress, s)
	}
	return p, nil
}
