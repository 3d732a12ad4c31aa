package growth

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/bonsai/render"
)

// MaxMultiplier bounds the branching multiplier
const MaxMultiplier = 20

// DefaultLeaves is the leaf set used when none is configured
var DefaultLeaves = []string{"&"}

// OrganicLeaves is the default leaf set of the roots style
var OrganicLeaves = []string{".", ".:", "::", "-", "--", "*"}

// Config is the immutable input of one growth run
type Config struct {
	Life       int
	Multiplier int
	Base       render.Base
	Noir       bool
	Leaves     []string

	// Live pacing: a pause of StepDelay after every step once TargetBranches is reached
	Live           bool
	StepDelay      time.Duration
	TargetBranches int
}

// DefaultConfig returns the stock tree settings
func DefaultConfig() Config {
	return Config{
		Life:       32,
		Multiplier: 5,
		Base:       render.BaseBowl,
		Leaves:     DefaultLeaves,
		StepDelay:  30 * time.Millisecond,
	}
}

// Paced reports whether a live run pauses after a step drawn at the given branch count
// Steps below TargetBranches are fast-forwarded
func (c Config) Paced(branches int) bool {
	return c.Live && branches >= c.TargetBranches
}

var errNoLeaves = errors.New("leaf set is empty")

// Validate checks the run invariants
func (c Config) Validate() error {
	if c.Life < 0 {
		return fmt.Errorf("invalid life %d: must not be negative", c.Life)
	}
	if c.Multiplier < 0 || c.Multiplier > MaxMultiplier {
		return fmt.Errorf("invalid multiplier %d: must be within 0-%d", c.Multiplier, MaxMultiplier)
	}
	if !c.Base.Valid() {
		return fmt.Errorf("invalid base %d", int(c.Base))
	}
	if len(c.Leaves) == 0 {
		return errNoLeaves
	}
	for i, l := range c.Leaves {
		if l == "" {
			return fmt.Errorf("leaf %d is empty", i)
		}
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("invalid step delay %s: must not be negative", c.StepDelay)
	}
	if c.TargetBranches < 0 {
		return fmt.Errorf("invalid target branch count %d", c.TargetBranches)
	}
	return nil
}
