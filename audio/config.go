package audio

import (
	"os"
	"strconv"
)

// Config holds chime settings
type Config struct {
	Volume     float64 // 0.0-1.0
	SampleRate int
}

// DefaultConfig returns the stock chime settings
func DefaultConfig() *Config {
	return &Config{
		Volume:     0.5,
		SampleRate: 44100,
	}
}

// LoadConfig loads chime settings from environment variables
func LoadConfig() *Config {
	cfg := DefaultConfig()

	// volume is given as 0-100
	if volume := os.Getenv("BONSAI_CHIME_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = float64(val) / 100.0
			if cfg.Volume < 0 {
				cfg.Volume = 0
			}
			if cfg.Volume > 1 {
				cfg.Volume = 1
			}
		}
	}

	if sampleRate := os.Getenv("BONSAI_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
