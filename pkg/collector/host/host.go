// Package host collects kernel identity, distribution, user and
// environment data for osinfo.
package host

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	gopshost "github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
)

// System describes kernel and host identity.
type System struct {
	KernelName    string
	KernelRelease string
	KernelVersion string
	Architecture  string
	Hostname      string
	DomainName    string
	UptimeSeconds uint64
	BootTime      time.Time
	Timezone      string
}

// Collector reads host state from uname(2), sysinfo(2) and /etc.
// The root fields exist so tests can point the collector at fixtures;
// zero values mean the real system paths.
type Collector struct {
	EtcRoot  string
	ProcRoot string
}

func (c *Collector) etc() string {
	if c.EtcRoot != "" {
		return c.EtcRoot
	}
	return "/etc"
}

func (c *Collector) proc() string {
	if c.ProcRoot != "" {
		return c.ProcRoot
	}
	return "/proc"
}

// System gathers kernel identity, uptime, boot time and timezone.
// Sources that fail leave their fields at zero values.
func (c *Collector) System(ctx context.Context) (*System, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &System{}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		info.KernelName = unix.ByteSliceToString(uts.Sysname[:])
		info.KernelRelease = unix.ByteSliceToString(uts.Release[:])
		info.KernelVersion = unix.ByteSliceToString(uts.Version[:])
		info.Architecture = unix.ByteSliceToString(uts.Machine[:])
		info.Hostname = unix.ByteSliceToString(uts.Nodename[:])
		info.DomainName = unix.ByteSliceToString(uts.Domainname[:])
	}

	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil && si.Uptime > 0 {
		info.UptimeSeconds = uint64(si.Uptime)
	}

	if bt, err := gopshost.BootTimeWithContext(ctx); err == nil && bt > 0 {
		info.BootTime = time.Unix(int64(bt), 0)
	}

	if b, err := os.ReadFile(filepath.Join(c.etc(), "timezone")); err == nil {
		info.Timezone = strings.TrimSpace(string(b))
	} else if tz := os.Getenv("TZ"); tz != "" {
		info.Timezone = tz
	}

	return info, nil
}

// KernelBanner returns the first line of /proc/version, truncated to 80
// characters for display. Empty when the file cannot be read.
func (c *Collector) KernelBanner() string {
	b, err := os.ReadFile(filepath.Join(c.proc(), "version"))
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(b), "\n")
	if len(line) > 80 {
		line = line[:77] + "..."
	}
	return line
}
