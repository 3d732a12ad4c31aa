// Package sysinfo gathers host facts and formats the bonsai-fetch report.
package sysinfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Unknown is shown for any fact that could not be read
const Unknown = "Unknown"

// DefaultSiteDir holds one-line site files: owner, location, support, docs
const DefaultSiteDir = "/etc/bonsai-fetch"

// timeLayout renders e.g. "March 04 2026, 02:15:09 PM UTC"
const timeLayout = "January 02 2006, 03:04:05 PM MST"

// Info is one snapshot of host facts, already formatted for display
type Info struct {
	Hostname  string
	OS        string
	Uptime    string
	Hardware  string
	Memory    string
	Storage   string
	Bandwidth string
	IP        string
	LocalTime string
}

// Site holds operator-provided details for the welcome and support lines
type Site struct {
	Owner    string
	Location string
	Support  string
	Docs     string
}

// Override replaces every field that is set in o
func (s Site) Override(o Site) Site {
	if o.Owner != "" {
		s.Owner = o.Owner
	}
	if o.Location != "" {
		s.Location = o.Location
	}
	if o.Support != "" {
		s.Support = o.Support
	}
	if o.Docs != "" {
		s.Docs = o.Docs
	}
	return s
}

// ReadSite loads the site files under dir; missing files leave fields empty
func ReadSite(dir string) Site {
	return Site{
		Owner:    readLine(filepath.Join(dir, "owner")),
		Location: readLine(filepath.Join(dir, "location")),
		Support:  readLine(filepath.Join(dir, "support")),
		Docs:     readLine(filepath.Join(dir, "docs")),
	}
}

// readLine returns the first line of path, or "" when unreadable
func readLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimRight(sc.Text(), "\r")
}

// Gather collects a snapshot of the running host
func Gather(now time.Time) Info {
	info := gather()
	info.LocalTime = now.Format(timeLayout)
	if host, err := os.Hostname(); err == nil {
		info.Hostname = strings.ToLower(host)
	} else {
		info.Hostname = "unknown"
	}
	if info.IP == "" {
		info.IP = primaryIP()
	}
	return info
}

// FormatUptime renders d as "3d 4h 5m", dropping leading zero units
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	hours := int(d/time.Hour) % 24
	mins := int(d/time.Minute) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatMemory renders used and total bytes in MiB
func FormatMemory(used, total uint64) string {
	return fmt.Sprintf("%d MB / %d MB", used>>20, total>>20)
}

// FormatStorage renders available and total bytes in GiB
func FormatStorage(avail, total uint64) string {
	const gib = 1 << 30
	return fmt.Sprintf("%.1fG / %.1fG", float64(avail)/gib, float64(total)/gib)
}

// ParseCPUInfo reads a /proc/cpuinfo listing into "model N core"
func ParseCPUInfo(r io.Reader) string {
	model := Unknown
	cores := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		switch {
		case key == "model name":
			model = strings.TrimSpace(value)
		case key == "processor":
			cores++
		}
	}
	return fmt.Sprintf("%s %d core", model, cores)
}

// ParseMemInfo returns used and total bytes from a /proc/meminfo listing
func ParseMemInfo(r io.Reader) (used, total uint64, ok bool) {
	var avail uint64
	var haveTotal, haveAvail bool

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, haveTotal = kb<<10, true
		case "MemAvailable:":
			avail, haveAvail = kb<<10, true
		}
	}
	if !haveTotal || !haveAvail || avail > total {
		return 0, 0, false
	}
	return total - avail, total, true
}

// ParseOSRelease returns PRETTY_NAME from an os-release file
func ParseOSRelease(r io.Reader) string {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		value, ok := strings.CutPrefix(sc.Text(), "PRETTY_NAME=")
		if !ok {
			continue
		}
		if unq, err := strconv.Unquote(value); err == nil {
			return unq
		}
		return strings.Trim(value, `"'`)
	}
	return ""
}

// FormatOS combines the distribution name with the kernel release
func FormatOS(pretty, sysname, release string) string {
	switch {
	case pretty != "" && release != "":
		return fmt.Sprintf("%s (%s)", pretty, release)
	case pretty != "":
		return pretty
	case sysname != "":
		return strings.TrimSpace(sysname + " " + release)
	default:
		return Unknown
	}
}
