package sysinfo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0m"},
		{59 * time.Second, "0m"},
		{42 * time.Minute, "42m"},
		{3*time.Hour + 7*time.Minute, "3h 7m"},
		{2*24*time.Hour + 5*time.Minute, "2d 0h 5m"},
		{-time.Hour, "0m"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.in); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCPUInfo(t *testing.T) {
	listing := `processor	: 0
model name	: Example CPU @ 3.00GHz
flags		: fpu vme

processor	: 1
model name	: Example CPU @ 3.00GHz
`
	if got, want := ParseCPUInfo(strings.NewReader(listing)), "Example CPU @ 3.00GHz 2 core"; got != want {
		t.Errorf("ParseCPUInfo = %q, want %q", got, want)
	}
	if got, want := ParseCPUInfo(strings.NewReader("")), "Unknown 0 core"; got != want {
		t.Errorf("ParseCPUInfo(empty) = %q, want %q", got, want)
	}
}

func TestParseMemInfo(t *testing.T) {
	listing := "MemTotal:        8192000 kB\nMemFree:  100 kB\nMemAvailable:    2048000 kB\n"
	used, total, ok := ParseMemInfo(strings.NewReader(listing))
	if !ok {
		t.Fatal("Expected meminfo to parse")
	}
	if got, want := FormatMemory(used, total), "6000 MB / 8000 MB"; got != want {
		t.Errorf("FormatMemory = %q, want %q", got, want)
	}

	if _, _, ok := ParseMemInfo(strings.NewReader("MemTotal: 10 kB\n")); ok {
		t.Error("Expected failure without MemAvailable")
	}
}

func TestFormatStorage(t *testing.T) {
	if got, want := FormatStorage(3<<29, 10<<30), "1.5G / 10.0G"; got != want {
		t.Errorf("FormatStorage = %q, want %q", got, want)
	}
}

func TestOSName(t *testing.T) {
	release := "NAME=\"Example\"\nPRETTY_NAME=\"Example Linux 12\"\nID=example\n"
	pretty := ParseOSRelease(strings.NewReader(release))
	if pretty != "Example Linux 12" {
		t.Fatalf("ParseOSRelease = %q", pretty)
	}

	tests := []struct {
		pretty, sysname, release string
		want                     string
	}{
		{pretty, "Linux", "6.1.0", "Example Linux 12 (6.1.0)"},
		{"", "Linux", "6.1.0", "Linux 6.1.0"},
		{"", "", "", Unknown},
	}
	for _, tt := range tests {
		if got := FormatOS(tt.pretty, tt.sysname, tt.release); got != tt.want {
			t.Errorf("FormatOS(%q, %q, %q) = %q, want %q", tt.pretty, tt.sysname, tt.release, got, tt.want)
		}
	}
}

func TestReadSite(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("owner", "Lab Team\nsecond line ignored\n")
	write("docs", "docs.example.org\r\n")

	site := ReadSite(dir)
	want := Site{Owner: "Lab Team", Docs: "docs.example.org"}
	if site != want {
		t.Errorf("ReadSite = %+v, want %+v", site, want)
	}

	merged := site.Override(Site{Owner: "ops", Location: "rack 4"})
	want = Site{Owner: "ops", Location: "rack 4", Docs: "docs.example.org"}
	if merged != want {
		t.Errorf("Override = %+v, want %+v", merged, want)
	}
}

func TestLinkSpeed(t *testing.T) {
	dir := t.TempDir()
	iface := func(name, state, speed string) {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
		os.WriteFile(filepath.Join(p, "operstate"), []byte(state+"\n"), 0o644)
		os.WriteFile(filepath.Join(p, "speed"), []byte(speed+"\n"), 0o644)
	}

	iface("lo", "unknown", "")
	iface("wlan0", "up", "300")
	iface("eth0", "down", "1000")
	if got, want := linkSpeed(dir), "300 Mbps (Wi-Fi)"; got != want {
		t.Errorf("linkSpeed = %q, want %q", got, want)
	}

	iface("eno1", "up", "1000")
	if got, want := linkSpeed(dir), "1000 Mbps (Ethernet)"; got != want {
		t.Errorf("linkSpeed with wired link = %q, want %q", got, want)
	}

	if got := linkSpeed(filepath.Join(dir, "missing")); got != Unknown {
		t.Errorf("linkSpeed(missing) = %q, want %q", got, Unknown)
	}
}

func TestGather(t *testing.T) {
	now := time.Date(2026, time.March, 4, 14, 15, 9, 0, time.UTC)
	info := Gather(now)

	if info.LocalTime != "March 04 2026, 02:15:09 PM UTC" {
		t.Errorf("LocalTime = %q", info.LocalTime)
	}
	fields := map[string]string{
		"Hostname": info.Hostname, "OS": info.OS, "Uptime": info.Uptime, "Hardware": info.Hardware,
		"Memory": info.Memory, "Storage": info.Storage, "Bandwidth": info.Bandwidth, "IP": info.IP,
	}
	for name, v := range fields {
		if v == "" {
			t.Errorf("%s is empty", name)
		}
	}
	if info.Hostname != strings.ToLower(info.Hostname) {
		t.Errorf("Expected lowercase hostname, got %q", info.Hostname)
	}
}
