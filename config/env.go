package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvLive        = "BONSAI_LIVE"
	EnvTime        = "BONSAI_TIME"
	EnvInfinite    = "BONSAI_INFINITE"
	EnvWait        = "BONSAI_WAIT"
	EnvScreensaver = "BONSAI_SCREENSAVER"
	EnvMessage     = "BONSAI_MESSAGE"
	EnvBase        = "BONSAI_BASE"
	EnvLeaf        = "BONSAI_LEAF"
	EnvMultiplier  = "BONSAI_MULTIPLIER"
	EnvLife        = "BONSAI_LIFE"
	EnvPrint       = "BONSAI_PRINT"
	EnvSeed        = "BONSAI_SEED"
	EnvNoir        = "BONSAI_NOIR"
	EnvVerbose     = "BONSAI_VERBOSE"
	EnvSave        = "BONSAI_SAVE"
	EnvLoad        = "BONSAI_LOAD"
	EnvChime       = "BONSAI_CHIME"
	EnvDebug       = "BONSAI_DEBUG"
)

// ApplyEnv overlays BONSAI_* environment variables onto c
// Unparseable values are logged and skipped
func (c *Config) ApplyEnv() {
	envBool(EnvLive, &c.Live)
	envSeconds(EnvTime, &c.TimeStep)
	envBool(EnvInfinite, &c.Infinite)
	envSeconds(EnvWait, &c.Wait)
	envBool(EnvScreensaver, &c.Screensaver)
	envBool(EnvPrint, &c.Print)
	envBool(EnvNoir, &c.Noir)
	envBool(EnvChime, &c.Chime)
	envBool(EnvDebug, &c.Debug)
	envInt(EnvMultiplier, &c.Multiplier)
	envInt(EnvLife, &c.Life)
	envInt(EnvVerbose, &c.Verbosity)

	if v := os.Getenv(EnvMessage); v != "" {
		c.Message = v
	}
	if v := os.Getenv(EnvLeaf); v != "" {
		c.Leaves = v
	}
	if v := os.Getenv(EnvBase); v != "" {
		if err := c.Base.UnmarshalText([]byte(v)); err != nil {
			log.Printf("config: ignoring %s: %v", EnvBase, err)
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		} else {
			log.Printf("config: ignoring %s=%q", EnvSeed, v)
		}
	}

	// save and load take a path, or a boolean for the default path
	envPath(EnvSave, &c.Save, &c.SavePath)
	envPath(EnvLoad, &c.Load, &c.LoadPath)
}

func envBool(name string, dst *bool) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*dst = b
	} else {
		log.Printf("config: ignoring %s=%q", name, v)
	}
}

func envInt(name string, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	} else {
		log.Printf("config: ignoring %s=%q", name, v)
	}
}

func envSeconds(name string, dst *time.Duration) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if d, err := parseSeconds(v); err == nil {
		*dst = d
	} else {
		log.Printf("config: ignoring %s: %v", name, err)
	}
}

func envPath(name string, enabled *bool, path *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		*enabled = b
		return
	}
	*enabled = true
	*path = v
}
