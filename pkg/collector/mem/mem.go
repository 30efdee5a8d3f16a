// Package mem collects memory accounting and per-process RSS data for
// meminfo.
package mem

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Memory summarizes /proc/meminfo. All values are kB as reported by
// the kernel.
type Memory struct {
	TotalKB        uint64
	AvailableKB    uint64
	FreeKB         uint64
	BuffersKB      uint64
	CachedKB       uint64
	SwapTotalKB    uint64
	SwapFreeKB     uint64
	SwapCachedKB   uint64
	ShmemKB        uint64
	SReclaimableKB uint64
	SUnreclaimKB   uint64
}

// UsedKB is total minus available, clamped at zero.
func (m *Memory) UsedKB() uint64 {
	if m.TotalKB < m.AvailableKB {
		return 0
	}
	return m.TotalKB - m.AvailableKB
}

// SwapUsedKB is swap total minus swap free, clamped at zero.
func (m *Memory) SwapUsedKB() uint64 {
	if m.SwapTotalKB < m.SwapFreeKB {
		return 0
	}
	return m.SwapTotalKB - m.SwapFreeKB
}

// Collector reads memory state from procfs. ProcRoot exists for tests;
// empty means /proc.
type Collector struct {
	ProcRoot string
}

func (c *Collector) proc() string {
	if c.ProcRoot != "" {
		return c.ProcRoot
	}
	return "/proc"
}

// Memory parses the "Key:  N kB" lines of /proc/meminfo in one pass.
// Lines without a numeric value are skipped; the first occurrence of a
// key wins. A missing file yields an empty record.
func (c *Collector) Memory(ctx context.Context) (*Memory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &Memory{}
	f, err := os.Open(filepath.Join(c.proc(), "meminfo"))
	if err != nil {
		return info, nil
	}
	defer f.Close()

	fields := map[string]*uint64{
		"MemTotal:":     &info.TotalKB,
		"MemAvailable:": &info.AvailableKB,
		"MemFree:":      &info.FreeKB,
		"Buffers:":      &info.BuffersKB,
		"Cached:":       &info.CachedKB,
		"SwapTotal:":    &info.SwapTotalKB,
		"SwapFree:":     &info.SwapFreeKB,
		"SwapCached:":   &info.SwapCachedKB,
		"Shmem:":        &info.ShmemKB,
		"SReclaimable:": &info.SReclaimableKB,
		"SUnreclaim:":   &info.SUnreclaimKB,
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Fields(sc.Text())
		if len(parts) < 2 {
			continue
		}
		value, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			continue
		}
		if dst, ok := fields[parts[0]]; ok && *dst == 0 {
			*dst = value
		}
	}
	return info, sc.Err()
}
