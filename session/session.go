// Package session drives growth runs on a terminal screen.
//
// A Session lays out the compositor, grows one tree per iteration and paces live
// drawing. It polls the screen's events between steps: a quit key aborts, a resize
// regrows the current tree at the new size. Progress is saved on the way out.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bonsai/config"
	"github.com/lixenwraith/bonsai/growth"
	"github.com/lixenwraith/bonsai/render"
	"github.com/lixenwraith/bonsai/terminal"
)

// ErrAborted is returned when the user quits before the session ends on its own
var ErrAborted = errors.New("session aborted")

// errResized stops a run so it can be regrown at the new screen size
var errResized = errors.New("screen resized")

// eventBuffer is the capacity of the screen event channel
const eventBuffer = 16

// Chimer plays a notification when a tree completes
type Chimer interface {
	Chime()
}

// Option customizes a Session
type Option func(*Session)

// WithChime plays c after every completed tree
func WithChime(c Chimer) Option {
	return func(s *Session) { s.chime = c }
}

// WithClock replaces the time source used to seed trees
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session owns the screen for the duration of Run
type Session struct {
	cfg    config.Config
	screen tcell.Screen
	comp   *render.Compositor
	chime  Chimer
	now    func() time.Time

	events chan tcell.Event
	quit   chan struct{}

	seed     int64
	grow     growth.Config
	counters growth.Counters
	debug    map[int]string
	trees    int
	warnings []error
}

// New binds a session to an initialized screen
func New(cfg config.Config, screen tcell.Screen, opts ...Option) *Session {
	s := &Session{
		cfg:    cfg,
		screen: screen,
		comp:   render.NewCompositor(screen, cfg.Noir),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed returns the seed of the current or last tree
func (s *Session) Seed() int64 { return s.seed }

// Counters returns the counters of the current or last tree
func (s *Session) Counters() growth.Counters { return s.counters }

// Trees returns the number of completed trees
func (s *Session) Trees() int { return s.trees }

// Warnings returns the non-fatal errors collected during Run, such as progress file failures
func (s *Session) Warnings() []error { return s.warnings }

func (s *Session) warn(err error) {
	log.Printf("session: %v", err)
	s.warnings = append(s.warnings, err)
}

// Run grows trees until the session ends: after one tree, or on quit in infinite mode
// Outside infinite and print modes it waits for a key before returning
// Returns ErrAborted when the user quit, ctx.Err() when ctx was cancelled
func (s *Session) Run(ctx context.Context) error {
	s.events = make(chan tcell.Event, eventBuffer)
	s.quit = make(chan struct{})
	go s.screen.ChannelEvents(s.events, s.quit)
	defer close(s.quit)

	err := s.run(ctx)
	s.saveProgress()
	return err
}

func (s *Session) run(ctx context.Context) error {
	seed, target := s.cfg.Seed, 0
	if s.cfg.Load {
		if p, err := config.LoadProgress(s.cfg.LoadPath); err != nil {
			s.warn(err)
		} else {
			seed, target = p.Seed, p.Branches
			log.Printf("session: resuming seed %d at %d branches", seed, target)
		}
	}
	if seed == 0 {
		seed = s.now().Unix()
	}

	for {
		if err := s.growTree(ctx, seed, target); err != nil {
			return err
		}
		s.trees++
		if s.chime != nil {
			s.chime.Chime()
		}

		// only the first tree resumes from the progress file
		target = 0

		if !s.cfg.Infinite {
			break
		}
		if err := s.wait(ctx, s.cfg.Wait); err != nil {
			return err
		}
		seed = s.now().UnixNano()
	}

	if s.cfg.Print {
		return nil
	}
	return s.waitForKey(ctx)
}

// growTree draws one tree, starting over at the new size whenever the screen is resized
// target is the branch count below which live pacing is skipped
func (s *Session) growTree(ctx context.Context, seed int64, target int) error {
	for {
		s.seed = seed
		s.grow = s.cfg.Growth()
		s.grow.TargetBranches = target
		s.debug = make(map[int]string)
		g := s.comp.Layout(s.cfg.Base, s.cfg.Message)
		log.Printf("session: tree seed=%d target=%d size=%dx%d", seed, target, g.Screen.Width, g.Screen.Height)

		engine := growth.NewEngine(s.grow, s.comp.Tree(), rand.New(rand.NewSource(seed)))
		engine.SetHooks(growth.Hooks{OnDraw: s.onDraw})
		if s.cfg.Verbosity > 0 {
			s.drawDebug(2, fmt.Sprintf("maxX: %03d, maxY: %03d", g.Tree.Width, g.Tree.Height))
		}

		counters, err := engine.Grow(ctx)
		s.counters = counters
		if errors.Is(err, errResized) {
			// regrow the same tree silently up to where it was
			target = counters.Branches
			s.screen.Sync()
			continue
		}
		if err != nil {
			return err
		}
		s.comp.Flush()
		return nil
	}
}

// onDraw paces live growth and checks for input after every step
func (s *Session) onDraw(d growth.Draw) error {
	if err := s.pollEvents(); err != nil {
		return err
	}
	if s.cfg.Verbosity > 0 {
		s.drawStep(d)
	}
	if !s.grow.Paced(d.Counters.Branches) {
		return nil
	}
	s.comp.Flush()
	return s.pause(s.grow.StepDelay)
}

func (s *Session) drawStep(d growth.Draw) {
	s.drawDebug(4, fmt.Sprintf("shoots: %02d", d.Counters.Shoots))
	s.drawDebug(5, fmt.Sprintf("dx: %02d", d.DX))
	s.drawDebug(6, fmt.Sprintf("dy: %02d", d.DY))
	s.drawDebug(7, fmt.Sprintf("type: %s", d.Cursor.Kind))
	s.drawDebug(8, fmt.Sprintf("shootCooldown: % 3d", d.Cursor.Cooldown))
}

// debugColumn is where run state lines start in the tree surface
const debugColumn = 5

// drawDebug writes a line of run state into the tree surface
// Cells left over from a longer previous value are blanked unless the tree has drawn over them
func (s *Session) drawDebug(row int, text string) {
	tree := s.comp.Tree()
	if tree == nil {
		return
	}
	if s.debug == nil {
		s.debug = make(map[int]string)
	}
	prev := s.debug[row]
	for i := len(text); i < len(prev); i++ {
		if tree.Get(debugColumn+i, row).Rune == rune(prev[i]) {
			tree.SetString(debugColumn+i, row, " ", render.StyleDefault)
		}
	}
	tree.SetString(debugColumn, row, text, render.StyleDefault)
	s.debug[row] = text
}

// handle maps a screen event to a session outcome
func (s *Session) handle(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if s.cfg.Screensaver || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return ErrAborted
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		if g := s.comp.Geometry(); w != g.Screen.Width || h != g.Screen.Height {
			return errResized
		}
	}
	return nil
}

// pollEvents handles every queued event without blocking
func (s *Session) pollEvents() error {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return nil
			}
			if err := s.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// pause sleeps for d while staying responsive to input
func (s *Session) pause(d time.Duration) error {
	if d <= 0 {
		return s.pollEvents()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return nil
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				continue
			}
			if err := s.handle(ev); err != nil {
				return err
			}
		}
	}
}

// wait holds the finished tree between infinite runs
// A quit key aborts, any other key skips the rest of the wait
func (s *Session) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				continue
			}
			switch err := s.handle(ev); {
			case errors.Is(err, errResized):
				if err := s.redraw(ctx); err != nil {
					return err
				}
			case err != nil:
				return err
			default:
				if _, isKey := ev.(*tcell.EventKey); isKey {
					return nil
				}
			}
		}
	}
}

// waitForKey holds the finished tree until any key is pressed
func (s *Session) waitForKey(ctx context.Context) error {
	if s.events == nil {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.events:
			if !ok {
				return nil
			}
			switch ev.(type) {
			case *tcell.EventKey:
				return nil
			case *tcell.EventResize:
				if errors.Is(s.handle(ev), errResized) {
					if err := s.redraw(ctx); err != nil {
						return err
					}
				}
			}
		}
	}
}

// redraw regrows the finished tree at the current screen size without pacing
func (s *Session) redraw(ctx context.Context) error {
	s.screen.Sync()
	return s.growTree(ctx, s.seed, math.MaxInt)
}

func (s *Session) saveProgress() {
	if !s.cfg.Save {
		return
	}
	p := config.Progress{Seed: s.seed, Branches: s.counters.Branches}
	if err := config.SaveProgress(s.cfg.SavePath, p); err != nil {
		s.warn(err)
		return
	}
	log.Printf("session: saved seed %d at %d branches to %s", p.Seed, p.Branches, s.cfg.SavePath)
}

// Print writes the composed screen to w as ANSI text
func (s *Session) Print(w io.Writer, noir bool) error {
	s.comp.Invalidate()
	s.comp.Compose()
	return terminal.Serialize(w, s.screen, terminal.SerializeOptions{Noir: noir || s.cfg.Noir})
}
