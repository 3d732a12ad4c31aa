package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// parseSeconds accepts a number of seconds ("0.03") or a Go duration ("30ms")
func parseSeconds(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(f * float64(time.Second)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return d, nil
}

// secondsValue is a duration flag given in seconds
type secondsValue struct{ d *time.Duration }

func (v secondsValue) String() string {
	if v.d == nil {
		return ""
	}
	return strconv.FormatFloat(v.d.Seconds(), 'g', -1, 64)
}

func (v secondsValue) Set(s string) error {
	d, err := parseSeconds(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

// countValue increments on every occurrence, as in -v -v
type countValue struct{ n *int }

func (v countValue) String() string {
	if v.n == nil {
		return "0"
	}
	return strconv.Itoa(*v.n)
}

func (v countValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		n, nerr := strconv.Atoi(s)
		if nerr != nil {
			return fmt.Errorf("invalid count %q", s)
		}
		*v.n = n
		return nil
	}
	if b {
		*v.n++
	}
	return nil
}

func (v countValue) IsBoolFlag() bool { return true }

// pathValue enables a feature with an optional file: -W alone or -W=FILE
type pathValue struct {
	enabled *bool
	path    *string
}

func (v pathValue) String() string {
	if v.path == nil {
		return ""
	}
	return *v.path
}

func (v pathValue) Set(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*v.enabled = b
		return nil
	}
	*v.enabled = true
	*v.path = s
	return nil
}

func (v pathValue) IsBoolFlag() bool { return true }

// NewFlagSet binds every command line option to c
// Each option is reachable by its short and long name
func NewFlagSet(name string, c *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	both := func(short, long string, fn func(name string)) {
		fn(short)
		fn(long)
	}

	both("l", "live", func(n string) { fs.BoolVar(&c.Live, n, c.Live, "live mode") })
	both("t", "time", func(n string) { fs.Var(secondsValue{&c.TimeStep}, n, "step delay in live mode") })
	both("i", "infinite", func(n string) { fs.BoolVar(&c.Infinite, n, c.Infinite, "infinite mode") })
	both("w", "wait", func(n string) { fs.Var(secondsValue{&c.Wait}, n, "wait between trees in infinite mode") })
	both("S", "screensaver", func(n string) { fs.BoolVar(&c.Screensaver, n, c.Screensaver, "screensaver mode") })
	both("m", "message", func(n string) { fs.StringVar(&c.Message, n, c.Message, "message beside the tree") })
	both("b", "base", func(n string) { fs.TextVar(&c.Base, n, c.Base, "base style") })
	both("c", "leaf", func(n string) { fs.StringVar(&c.Leaves, n, c.Leaves, "comma separated leaf glyphs") })
	both("M", "multiplier", func(n string) { fs.IntVar(&c.Multiplier, n, c.Multiplier, "branch multiplier") })
	both("L", "life", func(n string) { fs.IntVar(&c.Life, n, c.Life, "tree life") })
	both("p", "print", func(n string) { fs.BoolVar(&c.Print, n, c.Print, "print the tree on exit") })
	both("s", "seed", func(n string) { fs.Int64Var(&c.Seed, n, c.Seed, "random seed") })
	both("W", "save", func(n string) { fs.Var(pathValue{&c.Save, &c.SavePath}, n, "save progress") })
	both("C", "load", func(n string) { fs.Var(pathValue{&c.Load, &c.LoadPath}, n, "load progress") })
	both("n", "noir", func(n string) { fs.BoolVar(&c.Noir, n, c.Noir, "no color") })
	both("v", "verbose", func(n string) { fs.Var(countValue{&c.Verbosity}, n, "verbosity") })
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "config file")
	fs.BoolVar(&c.Chime, "chime", c.Chime, "chime when a tree completes")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write a debug log")

	fs.Usage = func() { fmt.Fprint(fs.Output(), Usage(name)) }
	return fs
}

// Load resolves the settings for the command line args, program name excluded
// Returns flag.ErrHelp when help was requested
func Load(name string, args []string, output io.Writer) (Config, error) {
	// first pass finds the config file and rejects bad syntax before anything is read
	first := Default()
	fs := NewFlagSet(name, &first, output)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return Config{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := Default()
	path, required := first.ConfigPath, true
	if path == "" {
		path, required = DefaultConfigPath(), false
	}
	if err := cfg.LoadFile(path, required); err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()

	if err := NewFlagSet(name, &cfg, io.Discard).Parse(args); err != nil {
		return Config{}, err
	}
	cfg.ConfigPath = path
	cfg.applyModes()

	if err := cfg.Validate(); err != nil {
		fmt.Fprint(output, Usage(name))
		return cfg, err
	}
	return cfg, nil
}

// IsHelp reports whether err is a help request rather than a failure
func IsHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Usage is the help text for the program called name
func Usage(name string) string {
	return "Usage: " + name + ` [OPTION]...

Grow a bonsai tree in the terminal.

Options:
  -l, --live             live mode: show each step of growth
  -t, --time=TIME        in live mode, wait TIME seconds between steps
                         [default: 0.03]
  -i, --infinite         infinite mode: keep growing trees
  -w, --wait=TIME        in infinite mode, wait TIME seconds between trees
                         [default: 4]
  -S, --screensaver      screensaver mode: -l -i with -W -C, any key quits
  -m, --message=STR      attach a message next to the tree
  -b, --base=INT         base style: 0 none, 1 bowl, 2 pot, 3 roots
                         [default: 1]
  -c, --leaf=LIST        comma separated leaf glyphs drawn at random
                         [default: &]
  -M, --multiplier=INT   branch multiplier, 0-20 [default: 5]
  -L, --life=INT         tree life, higher grows larger trees [default: 32]
  -p, --print            print the tree to the terminal on exit
  -s, --seed=INT         seed the random number generator
  -W, --save[=FILE]      save progress to FILE [default: $XDG_CACHE_HOME/bonsai]
  -C, --load[=FILE]      load progress from FILE [default: $XDG_CACHE_HOME/bonsai]
  -n, --noir             no color, bold only
  -v, --verbose          increase output verbosity
      --config=FILE      config file [default: $XDG_CONFIG_HOME/bonsai/config.toml]
      --chime            chime when a tree completes
      --debug            write a debug log to logs/bonsai.log
  -h, --help             show this help
`
}
