// Package growth generates a tree by walking branches across a canvas.
//
// A run starts with one trunk at the bottom centre of the canvas. Each step consumes one unit
// of a branch's life, moves it, and may start a child branch (another trunk, a shoot, or a
// cluster of leaves). A child runs to completion before its parent takes its next step.
// Children are kept on an explicit stack so the depth of the tree never grows the Go stack.
package growth

import (
	"context"
	"math/rand"

	"github.com/lixenwraith/bonsai/render"
)

// Canvas is the drawing target of a run, in canvas-local cells
type Canvas interface {
	Size() (width, height int)
	// Put writes glyph at (x, y) and reports whether the write was accepted
	Put(x, y int, glyph string, style render.Style) bool
}

// Counters tracks the shape of one tree
type Counters struct {
	Branches     int // cursors started, root included
	Shoots       int // shoots started
	ShootCounter int // running id, its parity picks the next shoot direction
}

// Cursor is the walking state of one branch
type Cursor struct {
	X, Y     int
	Kind     Kind
	Life     int
	Cooldown int // steps before a trunk may start another shoot
	start    int
}

// Age is the number of steps since the run's start life, as used by the direction tables
func (c Cursor) Age() int {
	return c.start - c.Life
}

// Draw describes one drawn step
type Draw struct {
	Cursor   Cursor
	DX, DY   int
	Glyph    string
	Style    render.Style
	Written  bool
	Counters Counters
}

// Hooks observe a run. Both are optional
type Hooks struct {
	// OnSpawn is called when a child cursor is started, before its first step
	OnSpawn func(parent, child Cursor)
	// OnDraw is called after every glyph write. A non-nil error ends the run with that error
	OnDraw func(d Draw) error
}

// frame is one entry of the work stack
type frame struct {
	cur    Cursor
	dx, dy int
	resume bool // a child finished, the parent still owes the draw half of its step
}

// Engine grows one tree onto a canvas
type Engine struct {
	cfg      Config
	canvas   Canvas
	rng      *rand.Rand
	policy   *Policy
	hooks    Hooks
	counters Counters
}

// NewEngine prepares a run of cfg drawing onto canvas with randomness from rng
func NewEngine(cfg Config, canvas Canvas, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:    cfg,
		canvas: canvas,
		rng:    rng,
		policy: NewPolicy(cfg, rng),
	}
}

// SetHooks installs run observers
func (e *Engine) SetHooks(h Hooks) {
	e.hooks = h
}

// Counters returns the counters of the current or last run
func (e *Engine) Counters() Counters {
	return e.counters
}

// Grow runs the tree to completion
// Cancelling ctx or an OnDraw error stops the run at the next step, whatever the branch depth
func (e *Engine) Grow(ctx context.Context) (Counters, error) {
	e.counters = Counters{ShootCounter: e.rng.Int()}

	w, h := e.canvas.Size()
	root := Cursor{
		X:        w / 2,
		Y:        h - 1,
		Kind:     Trunk,
		Life:     e.cfg.Life,
		Cooldown: e.cfg.Multiplier,
		start:    e.cfg.Life,
	}
	e.counters.Branches++
	stack := []*frame{{cur: root}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return e.counters, err
		}

		f := stack[len(stack)-1]

		if f.resume {
			f.resume = false
			if err := e.draw(f); err != nil {
				return e.counters, err
			}
			continue
		}

		if f.cur.Life <= 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		f.cur.Life--
		f.dx, f.dy = e.policy.Deltas(f.cur.Kind, f.cur.Life, f.cur.Age())

		// keep off the floor
		_, maxY := e.canvas.Size()
		if f.dy > 0 && f.cur.Y > maxY-2 {
			f.dy--
		}

		if child, ok := e.spawn(&f.cur); ok {
			e.counters.Branches++
			if e.hooks.OnSpawn != nil {
				e.hooks.OnSpawn(f.cur, child)
			}
			f.resume = true
			stack = append(stack, &frame{cur: child})
			continue
		}

		if err := e.draw(f); err != nil {
			return e.counters, err
		}
	}

	return e.counters, nil
}

// spawn decides whether the cursor starts a child this step. First matching rule wins
func (e *Engine) spawn(c *Cursor) (Cursor, bool) {
	m := e.cfg.Multiplier
	child := Cursor{X: c.X, Y: c.Y, Life: c.Life, Cooldown: m, start: c.start}

	switch {
	case c.Life < 3:
		child.Kind = Dead
		return child, true

	case (c.Kind == Trunk || c.Kind.Shoot()) && c.Life < m+2:
		child.Kind = Dying
		return child, true

	case c.Kind == Trunk:
		chance := e.rng.Intn(3) == 0
		if !chance && !(m > 0 && c.Life%m == 0) {
			return Cursor{}, false
		}

		if e.rng.Intn(8) == 0 && c.Life > 7 {
			c.Cooldown = m * 2
			child.Kind = Trunk
			child.Life = c.Life + (e.rng.Intn(5) - 2)
			return child, true
		}

		if c.Cooldown <= 0 {
			c.Cooldown = m * 2
			e.counters.Shoots++
			e.counters.ShootCounter++
			child.Kind = shootKind(e.counters.ShootCounter)
			child.Life = c.Life + m
			return child, true
		}
	}
	return Cursor{}, false
}

// draw finishes a step: cool down, move, pick style and glyph, write
func (e *Engine) draw(f *frame) error {
	c := &f.cur
	c.Cooldown--
	c.X += f.dx
	c.Y += f.dy

	style := e.policy.Style(c.Kind)
	glyph := e.policy.Glyph(c.Kind, c.Life, c.Age(), f.dx, f.dy)
	written := e.canvas.Put(c.X, c.Y, glyph, style)

	if e.hooks.OnDraw == nil {
		return nil
	}
	return e.hooks.OnDraw(Draw{
		Cursor:   *c,
		DX:       f.dx,
		DY:       f.dy,
		Glyph:    glyph,
		Style:    style,
		Written:  written,
		Counters: e.counters,
	})
}
