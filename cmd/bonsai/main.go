package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/bonsai/audio"
	"github.com/lixenwraith/bonsai/config"
	"github.com/lixenwraith/bonsai/session"
	"github.com/lixenwraith/bonsai/terminal"
)

func main() {
	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBONSAI CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:]))
}

func run(name string, args []string) int {
	cfg, err := config.Load(name, args, os.Stderr)
	if err != nil {
		if config.IsHelp(err) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	var opts []session.Option
	if cfg.Chime {
		player := audio.NewPlayer(nil)
		if err := player.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "%s: chime unavailable: %v\n", name, err)
		} else {
			defer player.Cleanup()
			opts = append(opts, session.WithChime(player))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := session.Execute(ctx, cfg, os.Stdout, opts...)
	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "%s: warning: %v\n", name, w)
	}
	if len(out.Frame) > 0 {
		os.Stdout.Write(out.Frame)
	}

	switch {
	case err == nil, errors.Is(err, session.ErrAborted), errors.Is(err, context.Canceled):
		return 0
	default:
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
}
