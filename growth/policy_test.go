package growth

import (
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/bonsai/render"
)

func TestGlyphTablesAreExhaustive(t *testing.T) {
	kinds := []Kind{Trunk, ShootLeft, ShootRight, Dying, Dead}
	bases := []render.Base{render.BaseNone, render.BaseBowl, render.BasePot, render.BaseRoots}

	for _, base := range bases {
		cfg := DefaultConfig()
		cfg.Base = base
		p := NewPolicy(cfg, rand.New(rand.NewSource(1)))

		for _, kind := range kinds {
			for life := 0; life <= 40; life++ {
				for dx := -3; dx <= 3; dx++ {
					for dy := -1; dy <= 1; dy++ {
						age := cfg.Life - life
						if g := p.Glyph(kind, life, age, dx, dy); g == placeholderGlyph || g == "" {
							t.Fatalf("base=%s kind=%s life=%d dx=%d dy=%d: got placeholder %q", base, kind, life, dx, dy, g)
						}
					}
				}
			}
		}
	}
}

func TestDeltaRanges(t *testing.T) {
	tests := []struct {
		kind         Kind
		base         render.Base
		minDX, maxDX int
	}{
		{Trunk, render.BaseBowl, -2, 2},
		{Trunk, render.BaseRoots, -1, 1},
		{ShootLeft, render.BaseBowl, -2, 1},
		{ShootRight, render.BaseBowl, -1, 2},
		{Dying, render.BaseBowl, -3, 3},
		{Dead, render.BaseBowl, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.base.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Base = tt.base
			p := NewPolicy(cfg, rand.New(rand.NewSource(11)))

			sawMin, sawMax := false, false
			for i := 0; i < 5000; i++ {
				life := i % cfg.Life
				dx, dy := p.Deltas(tt.kind, life, cfg.Life-life)
				if dx < tt.minDX || dx > tt.maxDX {
					t.Fatalf("dx %d outside [%d,%d]", dx, tt.minDX, tt.maxDX)
				}
				if dy < -1 || dy > 1 {
					t.Fatalf("dy %d outside [-1,1]", dy)
				}
				sawMin = sawMin || dx == tt.minDX
				sawMax = sawMax || dx == tt.maxDX
			}
			if !sawMin || !sawMax {
				t.Errorf("Expected both dx extremes to occur, min=%v max=%v", sawMin, sawMax)
			}
		})
	}
}

func TestYoungTrunkStaysLevel(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPolicy(cfg, rand.New(rand.NewSource(5)))
	for i := 0; i < 200; i++ {
		if _, dy := p.Deltas(Trunk, cfg.Life-1, 1); dy != 0 {
			t.Fatalf("Expected level trunk at age 1, got dy=%d", dy)
		}
	}
}

func TestOrganicTrunkClimbsFirst(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Base = render.BaseRoots
	p := NewPolicy(cfg, rand.New(rand.NewSource(5)))
	for age := 0; age <= 3; age++ {
		if dx, dy := p.Deltas(Trunk, cfg.Life-age, age); dx != 0 || dy != -1 {
			t.Fatalf("age %d: expected straight climb, got (%d,%d)", age, dx, dy)
		}
	}
}

func TestStyleNoirDropsColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Noir = true
	p := NewPolicy(cfg, rand.New(rand.NewSource(8)))

	bold := 0
	for i := 0; i < 300; i++ {
		for _, k := range []Kind{Trunk, ShootLeft, Dying, Dead} {
			s := p.Style(k)
			if s.Slot != render.SlotDefault {
				t.Fatalf("noir style for %s has slot %d", k, s.Slot)
			}
			if s.Bold {
				bold++
			}
		}
	}
	if bold == 0 {
		t.Error("Expected noir to keep bold intensity")
	}
}

func TestStyleSlots(t *testing.T) {
	p := NewPolicy(DefaultConfig(), rand.New(rand.NewSource(8)))
	for i := 0; i < 200; i++ {
		s := p.Style(Trunk)
		if s.Bold && s.Slot != render.SlotBrightYellow || !s.Bold && s.Slot != render.SlotYellow {
			t.Fatalf("unexpected trunk style %+v", s)
		}
		if s := p.Style(Dying); s.Slot != render.SlotGreen {
			t.Fatalf("unexpected dying slot %d", s.Slot)
		}
		if s := p.Style(Dead); s.Slot != render.SlotBrightGreen {
			t.Fatalf("unexpected dead slot %d", s.Slot)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero life", func(c *Config) { c.Life = 0 }, false},
		{"negative life", func(c *Config) { c.Life = -1 }, true},
		{"negative multiplier", func(c *Config) { c.Multiplier = -2 }, true},
		{"multiplier too large", func(c *Config) { c.Multiplier = MaxMultiplier + 1 }, true},
		{"unknown base", func(c *Config) { c.Base = 9 }, true},
		{"no leaves", func(c *Config) { c.Leaves = nil }, true},
		{"blank leaf", func(c *Config) { c.Leaves = []string{"&", ""} }, true},
		{"negative delay", func(c *Config) { c.StepDelay = -time.Millisecond }, true},
		{"negative target", func(c *Config) { c.TargetBranches = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigPaced(t *testing.T) {
	tests := []struct {
		name     string
		live     bool
		target   int
		branches int
		want     bool
	}{
		{"not live", false, 0, 10, false},
		{"live without target", true, 0, 1, true},
		{"below target fast-forwards", true, 12, 11, false},
		{"at target", true, 12, 12, true},
		{"past target", true, 12, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Live, cfg.TargetBranches = tt.live, tt.target
			if got := cfg.Paced(tt.branches); got != tt.want {
				t.Errorf("Paced(%d) = %v, want %v", tt.branches, got, tt.want)
			}
		})
	}
}
