//go:build !linux

package sysinfo

import (
	"fmt"
	"runtime"
)

func gather() Info {
	return Info{
		OS:        runtime.GOOS,
		Uptime:    Unknown,
		Hardware:  fmt.Sprintf("%s %d core", runtime.GOARCH, runtime.NumCPU()),
		Memory:    Unknown,
		Storage:   Unknown,
		Bandwidth: Unknown,
	}
}
