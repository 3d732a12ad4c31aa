package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/bonsai/render"
	"github.com/lixenwraith/bonsai/sysinfo"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags("bonsai-fetch", []string{"-o", "ops", "--docs", "docs.example.org", "-I", "-p", "--site-dir", "/srv/site"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags failed: %v", err)
	}
	want := sysinfo.Site{Owner: "ops", Docs: "docs.example.org"}
	if opts.site != want {
		t.Errorf("site = %+v, want %+v", opts.site, want)
	}
	if !opts.hideIP || !opts.print || opts.hideSupport || opts.noir {
		t.Errorf("unexpected switches %+v", opts)
	}
	if opts.siteDir != "/srv/site" {
		t.Errorf("siteDir = %q", opts.siteDir)
	}

	if _, err := parseFlags("bonsai-fetch", []string{"extra"}, io.Discard); err == nil {
		t.Error("Expected positional argument to be rejected")
	}
}

func TestTreeConfig(t *testing.T) {
	tests := []struct {
		name     string
		opts     options
		wantLive bool
		wantStep time.Duration
	}{
		{"animated", options{}, true, liveStep},
		{"print only", options{print: true}, false, 30 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := treeConfig(tt.opts)
			if cfg.Base != render.BaseRoots || !cfg.Print {
				t.Errorf("Expected printed roots tree, got base=%s print=%v", cfg.Base, cfg.Print)
			}
			if cfg.Live != tt.wantLive || cfg.TimeStep != tt.wantStep {
				t.Errorf("live=%v step=%v, want live=%v step=%v", cfg.Live, cfg.TimeStep, tt.wantLive, tt.wantStep)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestRunPrint(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "owner"), []byte("file owner\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if code := run("bonsai-fetch", []string{"-p", "-o", "flag owner", "--site-dir", dir}, f); code != 0 {
		t.Fatalf("run exited %d", code)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "\x1b[3") {
		t.Error("Expected no color under NO_COLOR")
	}
	if !strings.Contains(out, " - flag owner\n") {
		t.Error("Expected flag to override the owner file")
	}
	for _, label := range []string{"OS", "UPTIME", "NODE IP", "LOCAL TIME"} {
		if !strings.Contains(out, label) {
			t.Errorf("Expected %s in report", label)
		}
	}
}
