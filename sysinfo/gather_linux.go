//go:build linux

package sysinfo

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func gather() Info {
	var info Info

	var uts unix.Utsname
	sysname, release := "", ""
	if err := unix.Uname(&uts); err == nil {
		sysname = unix.ByteSliceToString(uts.Sysname[:])
		release = unix.ByteSliceToString(uts.Release[:])
	}
	pretty := ""
	if f, err := os.Open("/etc/os-release"); err == nil {
		pretty = ParseOSRelease(f)
		f.Close()
	}
	info.OS = FormatOS(pretty, sysname, release)

	info.Hardware = Unknown
	if f, err := os.Open("/proc/cpuinfo"); err == nil {
		info.Hardware = ParseCPUInfo(f)
		f.Close()
	}

	var si unix.Sysinfo_t
	haveSysinfo := unix.Sysinfo(&si) == nil
	info.Uptime = Unknown
	if haveSysinfo {
		info.Uptime = FormatUptime(time.Duration(si.Uptime) * time.Second)
	}

	info.Memory = Unknown
	if f, err := os.Open("/proc/meminfo"); err == nil {
		if used, total, ok := ParseMemInfo(f); ok {
			info.Memory = FormatMemory(used, total)
		}
		f.Close()
	}
	if info.Memory == Unknown && haveSysinfo {
		unit := uint64(si.Unit)
		total := uint64(si.Totalram) * unit
		free := uint64(si.Freeram) * unit
		info.Memory = FormatMemory(total-free, total)
	}

	info.Storage = Unknown
	var fs unix.Statfs_t
	if err := unix.Statfs("/", &fs); err == nil {
		block := uint64(fs.Frsize)
		if block == 0 {
			block = uint64(fs.Bsize)
		}
		info.Storage = FormatStorage(fs.Bavail*block, fs.Blocks*block)
	}

	info.Bandwidth = linkSpeed(netClassDir)
	return info
}
