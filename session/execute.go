package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bonsai/config"
	"github.com/lixenwraith/bonsai/terminal"
)

// Outcome is what a finished session leaves behind once its screen is released
type Outcome struct {
	Frame    []byte // print mode output, empty otherwise
	Trees    int
	Seed     int64
	Warnings []error
}

// OpenScreen returns an initialized screen for cfg
// A plain print never touches the terminal: the tree grows off-screen at the size of out
func OpenScreen(cfg config.Config, out *os.File) (tcell.Screen, error) {
	if cfg.Print && !cfg.Live && !cfg.Infinite {
		sim := tcell.NewSimulationScreen("UTF-8")
		if err := sim.Init(); err != nil {
			return nil, fmt.Errorf("init off-screen buffer: %w", err)
		}
		sim.SetSize(terminal.Size(out))
		return sim, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return screen, nil
}

// openScreen is swapped in tests to observe the screen lifecycle
var openScreen = OpenScreen

// Execute runs one session on a fresh screen and releases the screen before returning
// In print mode the last frame is serialized while the screen is still alive, so the caller
// can write it after the terminal is restored. A quit skips the print
// A panic during the session releases the screen before it propagates
func Execute(ctx context.Context, cfg config.Config, out *os.File, opts ...Option) (Outcome, error) {
	screen, err := openScreen(cfg, out)
	if err != nil {
		return Outcome{}, err
	}
	released := false
	defer func() {
		if r := recover(); r != nil {
			if !released {
				screen.Fini()
			}
			panic(r)
		}
	}()

	s := New(cfg, screen, opts...)
	runErr := s.Run(ctx)

	var frame bytes.Buffer
	if cfg.Print && runErr == nil {
		if err := s.Print(&frame, terminal.PrintNoir(out)); err != nil {
			runErr = fmt.Errorf("print tree: %w", err)
		}
	}
	screen.Fini()
	released = true

	if runErr != nil && !errors.Is(runErr, ErrAborted) {
		log.Printf("session: %v", runErr)
	}
	return Outcome{
		Frame:    frame.Bytes(),
		Trees:    s.Trees(),
		Seed:     s.Seed(),
		Warnings: s.Warnings(),
	}, runErr
}
