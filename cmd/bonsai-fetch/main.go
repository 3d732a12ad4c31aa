package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/bonsai/config"
	"github.com/lixenwraith/bonsai/render"
	"github.com/lixenwraith/bonsai/session"
	"github.com/lixenwraith/bonsai/sysinfo"
	"github.com/lixenwraith/bonsai/terminal"
)

// liveStep paces the header tree so it finishes in well under a second
const liveStep = 3 * time.Millisecond

// options are the fetch flags; site fields override the site files
type options struct {
	site        sysinfo.Site
	siteDir     string
	hideSupport bool
	hideIP      bool
	noir        bool
	print       bool
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mBONSAI-FETCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout))
}

func parseFlags(name string, args []string, output io.Writer) (options, error) {
	opts := options{siteDir: sysinfo.DefaultSiteDir}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	both := func(short, long string, fn func(name string)) {
		fn(short)
		fn(long)
	}
	both("o", "owner", func(n string) { fs.StringVar(&opts.site.Owner, n, "", "owner in the welcome line") })
	both("L", "location", func(n string) { fs.StringVar(&opts.site.Location, n, "", "location") })
	both("s", "support", func(n string) { fs.StringVar(&opts.site.Support, n, "", "support contact") })
	both("d", "docs", func(n string) { fs.StringVar(&opts.site.Docs, n, "", "documentation URL") })
	both("S", "no-support", func(n string) { fs.BoolVar(&opts.hideSupport, n, false, "hide support and docs") })
	both("I", "hide-ip", func(n string) { fs.BoolVar(&opts.hideIP, n, false, "hide node IP") })
	both("n", "noir", func(n string) { fs.BoolVar(&opts.noir, n, false, "no color, bold labels") })
	both("p", "print", func(n string) { fs.BoolVar(&opts.print, n, false, "no animation") })
	fs.StringVar(&opts.siteDir, "site-dir", opts.siteDir, "directory of site files")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage(name)) }

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, nil
}

// treeConfig is the header tree: roots base, grown live unless printing only
func treeConfig(opts options) config.Config {
	cfg := config.Default()
	cfg.Base = render.BaseRoots
	cfg.Print = true
	cfg.Noir = opts.noir
	if !opts.print {
		cfg.Live = true
		cfg.TimeStep = liveStep
	}
	return cfg
}

func run(name string, args []string, stdout *os.File) int {
	opts, err := parseFlags(name, args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	// gather before the tree takes the terminal
	info := sysinfo.Gather(time.Now())
	site := sysinfo.ReadSite(opts.siteDir).Override(opts.site)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(stdout)
	out, err := session.Execute(ctx, treeConfig(opts), stdout)
	stdout.Write(out.Frame)
	if err != nil {
		if errors.Is(err, session.ErrAborted) || errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}

	width, _ := terminal.Size(stdout)
	report := sysinfo.Report{
		Info:        info,
		Site:        site,
		Width:       width,
		Noir:        opts.noir || terminal.PrintNoir(stdout),
		HideIP:      opts.hideIP,
		HideSupport: opts.hideSupport,
	}
	if err := report.Render(stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	return 0
}

func usage(name string) string {
	return "Usage: " + name + ` [OPTION]...

Display system information below a bonsai tree.

Options:
  -o, --owner=TEXT       owner name in the welcome line
  -L, --location=TEXT    location
  -s, --support=TEXT     support contact
  -d, --docs=URL         documentation URL
  -S, --no-support       hide the support and docs section
  -I, --hide-ip          hide the NODE IP field
  -n, --noir             no colors, bold labels
  -p, --print            no animation, instant display
      --site-dir=DIR     read site files from DIR [default: ` + sysinfo.DefaultSiteDir + `]
  -h, --help             show this help

Site files hold one value on their first line; options override them:
  owner, location, support, docs
`
}
