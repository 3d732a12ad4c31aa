// Package config resolves the settings of a bonsai session.
//
// Values are layered: Default, then the TOML config file, then BONSAI_* environment
// variables, then command line flags. Load performs the whole chain.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/bonsai/growth"
	"github.com/lixenwraith/bonsai/render"
)

// maxLeaves bounds the number of leaf glyphs taken from a list
const maxLeaves = 100

// Config holds every user-facing setting
type Config struct {
	Live        bool          `toml:"live"`
	TimeStep    time.Duration `toml:"time_step"`
	Infinite    bool          `toml:"infinite"`
	Wait        time.Duration `toml:"wait"`
	Screensaver bool          `toml:"screensaver"`
	Message     string        `toml:"message"`
	Base        render.Base   `toml:"base"`
	Leaves      string        `toml:"leaves"` // comma separated, empty selects the style default
	Multiplier  int           `toml:"multiplier"`
	Life        int           `toml:"life"`
	Print       bool          `toml:"print"`
	Seed        int64         `toml:"seed"` // 0 seeds from the clock
	Noir        bool          `toml:"noir"`
	Verbosity   int           `toml:"verbose"`
	Chime       bool          `toml:"chime"`

	Save     bool   `toml:"save"`
	SavePath string `toml:"save_file"`
	Load     bool   `toml:"load"`
	LoadPath string `toml:"load_file"`

	// Not read from the config file
	Debug      bool   `toml:"-"`
	ConfigPath string `toml:"-"`
}

// Default returns the stock settings
func Default() Config {
	cache := DefaultCachePath()
	return Config{
		TimeStep:   30 * time.Millisecond,
		Wait:       4 * time.Second,
		Base:       render.BaseBowl,
		Multiplier: 5,
		Life:       32,
		SavePath:   cache,
		LoadPath:   cache,
	}
}

// applyModes resolves settings implied by others
// Screensaver is live infinite growth that resumes where the last session stopped
func (c *Config) applyModes() {
	if c.Screensaver {
		c.Live = true
		c.Infinite = true
		c.Save = true
		c.Load = true
	}
}

// Validate checks ranges before anything is drawn
func (c Config) Validate() error {
	if c.TimeStep < 0 {
		return fmt.Errorf("invalid step time %s", c.TimeStep)
	}
	if c.Wait < 0 {
		return fmt.Errorf("invalid wait time %s", c.Wait)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("invalid verbosity %d", c.Verbosity)
	}
	if c.Save && c.SavePath == "" {
		return fmt.Errorf("save requested without a file")
	}
	if c.Load && c.LoadPath == "" {
		return fmt.Errorf("load requested without a file")
	}
	return c.Growth().Validate()
}

// LeafList splits Leaves on commas
// Without a custom list the roots style gets its own organic set
func (c Config) LeafList() []string {
	if strings.TrimSpace(c.Leaves) == "" {
		if c.Base == render.BaseRoots {
			return growth.OrganicLeaves
		}
		return growth.DefaultLeaves
	}

	var leaves []string
	for _, tok := range strings.Split(c.Leaves, ",") {
		if tok == "" {
			continue
		}
		leaves = append(leaves, tok)
		if len(leaves) == maxLeaves {
			break
		}
	}
	return leaves
}

// Growth derives the per-run engine settings
func (c Config) Growth() growth.Config {
	return growth.Config{
		Life:       c.Life,
		Multiplier: c.Multiplier,
		Base:       c.Base,
		Noir:       c.Noir,
		Leaves:     c.LeafList(),
		Live:       c.Live,
		StepDelay:  c.TimeStep,
	}
}
