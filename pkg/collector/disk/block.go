// Package disk collects block device, mounted filesystem and I/O
// statistics data for diskls.
package disk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Device describes one /sys/block entry.
type Device struct {
	Device     string
	Model      string
	Vendor     string
	Type       string
	SizeBytes  uint64
	Removable  bool
	Rotational bool
	Scheduler  string
	QueueDepth uint64
	Partitions []string
}

// Collector reads storage state from sysfs and procfs. The root fields
// exist for tests; zero values mean the real system paths. Statfs can
// be replaced so mount sizing is testable without real filesystems.
type Collector struct {
	SysRoot  string
	ProcRoot string
	Statfs   func(path string, st *unix.Statfs_t) error
}

func (c *Collector) sys() string {
	if c.SysRoot != "" {
		return c.SysRoot
	}
	return "/sys"
}

func (c *Collector) proc() string {
	if c.ProcRoot != "" {
		return c.ProcRoot
	}
	return "/proc"
}

func (c *Collector) statfs(path string, st *unix.Statfs_t) error {
	if c.Statfs != nil {
		return c.Statfs(path, st)
	}
	return unix.Statfs(path, st)
}

// Devices enumerates /sys/block in name order, skipping loop and ram
// devices. Enumeration failure is an error so the caller can warn and
// render nothing.
func (c *Collector) Devices(ctx context.Context) ([]Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := filepath.Join(c.sys(), "block")
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("failed to list block devices: %w", err)
	}

	var devices []Device
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram") {
			continue
		}
		devices = append(devices, c.readDevice(base, name))
	}
	return devices, nil
}

func (c *Collector) readDevice(base, name string) Device {
	dir := filepath.Join(base, name)
	d := Device{Device: "/dev/" + name, Rotational: true}

	if sectors, ok := readUint(dir, "size"); ok {
		// The size attribute counts 512-byte sectors regardless of
		// the device's logical block size.
		d.SizeBytes = sectors * 512
	}
	d.Model = readAttr(dir, "device/model")
	d.Vendor = readAttr(dir, "device/vendor")
	if v, ok := readUint(dir, "removable"); ok {
		d.Removable = v == 1
	}
	if v, ok := readUint(dir, "queue/rotational"); ok {
		d.Rotational = v == 1
	}

	switch {
	case strings.HasPrefix(name, "nvme"):
		d.Type = "NVMe"
	case !d.Rotational:
		d.Type = "SSD"
	default:
		d.Type = "HDD"
	}

	d.Scheduler = bracketed(readAttr(dir, "queue/scheduler"))
	if v, ok := readUint(dir, "queue/nr_requests"); ok {
		d.QueueDepth = v
	}

	if entries, err := os.ReadDir(dir); err == nil {
		for _, pe := range entries {
			if pe.Name() != name && strings.HasPrefix(pe.Name(), name) {
				d.Partitions = append(d.Partitions, "/dev/"+pe.Name())
			}
		}
	}
	return d
}

// bracketed extracts the active value from a sysfs multi-choice
// attribute like "none [mq-deadline] kyber".
func bracketed(line string) string {
	start := strings.IndexByte(line, '[')
	end := strings.IndexByte(line, ']')
	if start < 0 || end < 0 || end < start {
		return ""
	}
	return line[start+1 : end]
}

func readAttr(dir, name string) string {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line)
}

func readUint(dir, name string) (uint64, bool) {
	s := readAttr(dir, name)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
