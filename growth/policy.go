package growth

import (
	"math/rand"

	"github.com/lixenwraith/bonsai/render"
)

// placeholderGlyph is drawn for a (kind, dx, dy) combination no table covers
const placeholderGlyph = "?"

// Policy turns a branch state into a step, a glyph and a style
// Every random draw comes from rng so a seed reproduces the same tree
type Policy struct {
	rng        *rand.Rand
	multiplier int
	startLife  int
	base       render.Base
	noir       bool
	leaves     []string
}

// NewPolicy binds the policy tables for cfg to rng
func NewPolicy(cfg Config, rng *rand.Rand) *Policy {
	leaves := cfg.Leaves
	if len(leaves) == 0 {
		leaves = DefaultLeaves
	}
	return &Policy{
		rng:        rng,
		multiplier: cfg.Multiplier,
		startLife:  cfg.Life,
		base:       cfg.Base,
		noir:       cfg.Noir,
		leaves:     leaves,
	}
}

// roll returns a uniform draw in [0, sides)
func (p *Policy) roll(sides int) int {
	return p.rng.Intn(sides)
}

// Deltas returns the step of a kind branch with life remaining and the given age
func (p *Policy) Deltas(kind Kind, life, age int) (dx, dy int) {
	switch kind {
	case Trunk:
		if p.base.Organic() {
			return p.organicTrunk(age)
		}
		return p.trunk(life, age)

	case ShootLeft, ShootRight:
		switch d := p.roll(10); {
		case d <= 1:
			dy = -1
		case d <= 7:
			dy = 0
		default:
			dy = 1
		}
		switch d := p.roll(10); {
		case d <= 1:
			dx = -2
		case d <= 5:
			dx = -1
		case d <= 8:
			dx = 0
		default:
			dx = 1
		}
		if kind == ShootRight {
			dx = -dx
		}

	case Dying:
		switch d := p.roll(10); {
		case d <= 1:
			dy = -1
		case d <= 8:
			dy = 0
		default:
			dy = 1
		}
		switch d := p.roll(15); {
		case d == 0:
			dx = -3
		case d <= 2:
			dx = -2
		case d <= 5:
			dx = -1
		case d <= 8:
			dx = 0
		case d <= 11:
			dx = 1
		case d <= 13:
			dx = 2
		default:
			dx = 3
		}

	case Dead:
		switch d := p.roll(10); {
		case d <= 2:
			dy = -1
		case d <= 6:
			dy = 0
		default:
			dy = 1
		}
		dx = p.roll(3) - 1
	}
	return dx, dy
}

// trunk is the upright table: level at the base, zig-zag climb while young, steady climb when old
func (p *Policy) trunk(life, age int) (dx, dy int) {
	switch {
	case age <= 2 || life < 4:
		return p.roll(3) - 1, 0

	case age < p.multiplier*3:
		half := p.multiplier / 2
		if half == 0 || age%half == 0 {
			dy = -1
		}
		switch d := p.roll(10); {
		case d == 0:
			dx = -2
		case d <= 3:
			dx = -1
		case d <= 5:
			dx = 0
		case d <= 8:
			dx = 1
		default:
			dx = 2
		}
		return dx, dy

	default:
		if p.roll(10) > 2 {
			dy = -1
		}
		return p.roll(3) - 1, dy
	}
}

// organicTrunk is the squat table: straight up at first, then swaying wider with age and half the steps level
func (p *Policy) organicTrunk(age int) (dx, dy int) {
	if p.roll(10) <= 4 {
		dy = -1
	}
	switch {
	case age <= 3:
		return 0, -1
	case age <= 10:
		switch d := p.roll(10); {
		case d <= 2:
			dx = -1
		case d >= 8:
			dx = 1
		}
	default:
		switch d := p.roll(10); {
		case d <= 3:
			dx = -1
		case d >= 7:
			dx = 1
		}
	}
	return dx, dy
}

// Style returns the color and intensity of a kind branch
func (p *Policy) Style(kind Kind) render.Style {
	var (
		bold bool
		slot render.Slot
	)
	switch kind {
	case Trunk, ShootLeft, ShootRight:
		bold = p.roll(2) == 0
		slot = render.SlotYellow
		if bold {
			slot = render.SlotBrightYellow
		}
	case Dying:
		bold = p.roll(10) == 0
		slot = render.SlotGreen
	case Dead:
		bold = p.roll(3) == 0
		slot = render.SlotBrightGreen
	}
	if p.noir {
		slot = render.SlotDefault
	}
	return render.Style{Slot: slot, Bold: bold}
}

// Glyph returns the text drawn for one step
// Branches close to the end of their life are drawn as dying
func (p *Policy) Glyph(kind Kind, life, age, dx, dy int) string {
	if life < 4 {
		kind = Dying
	}
	if p.base.Organic() {
		return p.organicGlyph(kind, age, dx, dy)
	}

	switch kind {
	case Trunk:
		switch {
		case dy == 0:
			return "/~"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|\\"
		default:
			return "|/"
		}
	case ShootLeft:
		switch {
		case dy > 0:
			return "\\"
		case dy == 0:
			return "\\_"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|"
		default:
			return "/"
		}
	case ShootRight:
		switch {
		case dy > 0:
			return "/"
		case dy == 0:
			return "_/"
		case dx < 0:
			return "\\|"
		case dx == 0:
			return "/|"
		default:
			return "/"
		}
	case Dying, Dead:
		return p.leaf()
	}
	return placeholderGlyph
}

// organicGlyph tapers the trunk from four cells at the foot to one at the crown
func (p *Policy) organicGlyph(kind Kind, age, dx, dy int) string {
	switch kind {
	case Trunk:
		var left, mid, right string
		switch {
		case age <= 3:
			left, mid, right = "%###", "###", "###%"
		case age <= 8:
			left, mid, right = "%##", "###", "##%"
		case age <= 15:
			left, mid, right = "%#", "##", "#%"
		default:
			left, mid, right = "%", "#", "%"
		}
		switch {
		case dx < 0:
			return left
		case dx == 0:
			return mid
		default:
			return right
		}
	case ShootLeft, ShootRight:
		switch {
		case dy > 0:
			return "%"
		case dy == 0:
			if kind == ShootLeft {
				return "*+"
			}
			return "+*"
		case dx < 0:
			if kind == ShootLeft {
				return "%*"
			}
			return "*%"
		case dx == 0:
			if kind == ShootLeft {
				return "*%"
			}
			return "%*"
		default:
			return "+"
		}
	case Dying:
		return "-=:."
	case Dead:
		return p.leaf()
	}
	return placeholderGlyph
}

func (p *Policy) leaf() string {
	return p.leaves[p.roll(len(p.leaves))]
}
