package growth

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/lixenwraith/bonsai/render"
)

type write struct {
	X, Y  int
	Kind  Kind
	Glyph string
}

// recordCanvas accepts every write and remembers it
type recordCanvas struct {
	w, h int
	puts int
}

func (c *recordCanvas) Size() (int, int) { return c.w, c.h }

func (c *recordCanvas) Put(x, y int, glyph string, style render.Style) bool {
	c.puts++
	return true
}

func newTestEngine(cfg Config, canvas Canvas, seed int64) *Engine {
	return NewEngine(cfg, canvas, rand.New(rand.NewSource(seed)))
}

func record(e *Engine) *[]write {
	var writes []write
	e.SetHooks(Hooks{OnDraw: func(d Draw) error {
		writes = append(writes, write{X: d.Cursor.X, Y: d.Cursor.Y, Kind: d.Cursor.Kind, Glyph: d.Glyph})
		return nil
	}})
	return &writes
}

func TestGrowTerminates(t *testing.T) {
	for _, base := range []render.Base{render.BaseNone, render.BaseBowl, render.BasePot, render.BaseRoots} {
		for _, life := range []int{0, 1, 3, 10, 32, 60} {
			for _, mult := range []int{0, 1, 2, 5, 12, 20} {
				cfg := DefaultConfig()
				cfg.Base = base
				cfg.Life = life
				cfg.Multiplier = mult

				canvas := &recordCanvas{w: 80, h: 24}
				counters, err := newTestEngine(cfg, canvas, int64(life*31+mult)).Grow(context.Background())
				if err != nil {
					t.Fatalf("base=%s life=%d mult=%d: unexpected error %v", base, life, mult, err)
				}
				if counters.Branches < 1 {
					t.Errorf("base=%s life=%d mult=%d: expected root branch counted, got %d", base, life, mult, counters.Branches)
				}
			}
		}
	}
}

func TestBranchCountedOncePerCursor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Life = 48
	cfg.Multiplier = 8

	e := newTestEngine(cfg, &recordCanvas{w: 120, h: 40}, 7)
	spawns := 0
	e.SetHooks(Hooks{OnSpawn: func(parent, child Cursor) { spawns++ }})

	counters, err := e.Grow(context.Background())
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if counters.Branches != spawns+1 {
		t.Errorf("Expected %d branches (spawns + root), got %d", spawns+1, counters.Branches)
	}
}

func TestWideGlyphWrittenOnlyOnAlignedColumns(t *testing.T) {
	for _, base := range []render.Base{render.BaseBowl, render.BaseRoots} {
		cfg := DefaultConfig()
		cfg.Base = base
		cfg.Leaves = []string{"🌸", "木", "&"}

		surface := render.NewSurface(render.LayerTree, render.Rect{Width: 100, Height: 30})
		e := newTestEngine(cfg, surface, 99)

		checked := 0
		e.SetHooks(Hooks{OnDraw: func(d Draw) error {
			w := render.GlyphWidth(d.Glyph)
			want := d.Cursor.X%w == 0
			if d.Written != want {
				t.Errorf("glyph %q at x=%d width=%d: written=%v, want %v", d.Glyph, d.Cursor.X, w, d.Written, want)
			}
			checked++
			return nil
		}})

		if _, err := e.Grow(context.Background()); err != nil {
			t.Fatalf("Grow failed: %v", err)
		}
		if checked == 0 {
			t.Fatal("Expected draws to check")
		}
	}
}

func TestShootsAlternateByCounterParity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Life = 80
	cfg.Multiplier = 3

	for seed := int64(1); seed <= 20; seed++ {
		e := newTestEngine(cfg, &recordCanvas{w: 200, h: 60}, seed)
		var kinds []Kind
		var ids []int
		e.SetHooks(Hooks{OnSpawn: func(parent, child Cursor) {
			if child.Kind.Shoot() {
				if parent.Kind != Trunk {
					t.Errorf("seed %d: shoot spawned from %s", seed, parent.Kind)
				}
				kinds = append(kinds, child.Kind)
				ids = append(ids, e.Counters().ShootCounter)
			}
		}})
		if _, err := e.Grow(context.Background()); err != nil {
			t.Fatalf("Grow failed: %v", err)
		}

		for i, k := range kinds {
			if k != shootKind(ids[i]) {
				t.Errorf("seed %d: shoot %d is %s with counter %d", seed, i, k, ids[i])
			}
			if i > 0 && kinds[i-1] == k {
				t.Errorf("seed %d: consecutive shoots %d and %d are both %s", seed, i-1, i, k)
			}
		}
	}
}

func TestSameSeedSameTree(t *testing.T) {
	for _, base := range []render.Base{render.BaseBowl, render.BaseRoots} {
		cfg := DefaultConfig()
		cfg.Base = base
		cfg.Leaves = []string{"&", "*", "@"}

		a := newTestEngine(cfg, &recordCanvas{w: 80, h: 24}, 1234)
		b := newTestEngine(cfg, &recordCanvas{w: 80, h: 24}, 1234)
		wa, wb := record(a), record(b)

		ca, errA := a.Grow(context.Background())
		cb, errB := b.Grow(context.Background())
		if errA != nil || errB != nil {
			t.Fatalf("Grow failed: %v / %v", errA, errB)
		}
		if ca != cb {
			t.Errorf("counters differ: %+v vs %+v", ca, cb)
		}
		if !reflect.DeepEqual(*wa, *wb) {
			t.Errorf("base %s: write sequences differ for the same seed", base)
		}
	}
}

func TestDefaultScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Life = 32
	cfg.Multiplier = 5
	cfg.Base = render.BaseBowl

	canvas := &recordCanvas{w: 80, h: 20}
	e := newTestEngine(cfg, canvas, 42)
	writes := record(e)

	counters, err := e.Grow(context.Background())
	if err != nil {
		t.Fatalf("Grow failed: %v", err)
	}
	if counters.Branches <= 0 {
		t.Errorf("Expected branches > 0, got %d", counters.Branches)
	}

	dead := 0
	for _, w := range *writes {
		if w.Kind == Dead {
			dead++
		}
		if w.Y > canvas.h-1 {
			t.Errorf("write at row %d below canvas floor %d", w.Y, canvas.h-1)
		}
	}
	if dead == 0 {
		t.Error("Expected at least one dead-branch write")
	}
	if canvas.puts != len(*writes) {
		t.Errorf("Expected one canvas write per draw, got %d puts for %d draws", canvas.puts, len(*writes))
	}
}

func TestGrowStopsOnCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Life = 60

	ctx, cancel := context.WithCancel(context.Background())
	e := newTestEngine(cfg, &recordCanvas{w: 80, h: 24}, 3)
	draws := 0
	e.SetHooks(Hooks{OnDraw: func(d Draw) error {
		draws++
		if draws == 5 {
			cancel()
		}
		return nil
	}})

	_, err := e.Grow(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if draws != 5 {
		t.Errorf("Expected run to stop right after cancel, got %d draws", draws)
	}
}

func TestGrowStopsOnHookError(t *testing.T) {
	stop := errors.New("stop")
	e := newTestEngine(DefaultConfig(), &recordCanvas{w: 80, h: 24}, 3)
	draws := 0
	e.SetHooks(Hooks{OnDraw: func(d Draw) error {
		draws++
		return stop
	}})

	if _, err := e.Grow(context.Background()); !errors.Is(err, stop) {
		t.Fatalf("Expected hook error, got %v", err)
	}
	if draws != 1 {
		t.Errorf("Expected a single draw, got %d", draws)
	}
}

func TestTinyCanvasDoesNotPanic(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 1}, {3, 2}} {
		surface := render.NewSurface(render.LayerTree, render.Rect{Width: size[0], Height: size[1]})
		cfg := DefaultConfig()
		cfg.Base = render.BaseRoots
		if _, err := newTestEngine(cfg, surface, 5).Grow(context.Background()); err != nil {
			t.Fatalf("size %v: unexpected error %v", size, err)
		}
	}
}
