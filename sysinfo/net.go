package sysinfo

import (
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// netClassDir lists network interfaces with their link state and speed
var netClassDir = "/sys/class/net"

// primaryIP returns the first IPv4 address of a non-loopback interface
func primaryIP() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return Unknown
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipnet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			if ip4 := ipnet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "127.0.0.1"
}

// linkSpeed reports the speed of the first up interface with a known rate
func linkSpeed(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Unknown
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Name() != "lo" {
			names = append(names, e.Name())
		}
	}
	// wired links first, then by name
	sort.SliceStable(names, func(i, j int) bool {
		wi, wj := wireless(names[i]), wireless(names[j])
		if wi != wj {
			return !wi
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		if readLine(filepath.Join(dir, name, "operstate")) != "up" {
			continue
		}
		mbps, err := strconv.Atoi(readLine(filepath.Join(dir, name, "speed")))
		if err != nil || mbps <= 0 {
			continue
		}
		kind := "Ethernet"
		if wireless(name) {
			kind = "Wi-Fi"
		}
		return strconv.Itoa(mbps) + " Mbps (" + kind + ")"
	}
	return Unknown
}

func wireless(name string) bool {
	return strings.HasPrefix(name, "w")
}
