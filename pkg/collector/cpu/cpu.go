// Package cpu collects processor identity, load, frequency scaling and
// topology data for cpuinfo.
package cpu

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Info summarizes /proc/cpuinfo.
type Info struct {
	ModelName     string
	VendorID      string
	Family        string
	Model         string
	Stepping      string
	Microcode     string
	CacheSize     string
	MHz           float64
	Flags         []string
	Siblings      int
	LogicalCores  int
	PhysicalCores int
}

// Collector reads processor state from procfs and sysfs. The root
// fields exist for tests; zero values mean the real system paths.
type Collector struct {
	ProcRoot string
	SysRoot  string
}

func (c *Collector) proc() string {
	if c.ProcRoot != "" {
		return c.ProcRoot
	}
	return "/proc"
}

func (c *Collector) sys() string {
	if c.SysRoot != "" {
		return c.SysRoot
	}
	return "/sys"
}

// Info builds the CPU summary in a single pass over /proc/cpuinfo.
// Keys repeated once per logical CPU keep their first value, except
// "processor" and "core id" which accumulate: processors are counted
// for the logical core total and distinct core ids for the physical
// one. Physical falls back to logical when no core ids are present.
func (c *Collector) Info(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info := &Info{}
	f, err := os.Open(filepath.Join(c.proc(), "cpuinfo"))
	if err != nil {
		return info, nil
	}
	defer f.Close()

	cores := make(map[string]struct{})
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "model name":
			if info.ModelName == "" {
				info.ModelName = value
			}
		case "vendor_id":
			if info.VendorID == "" {
				info.VendorID = value
			}
		case "cpu family":
			if info.Family == "" {
				info.Family = value
			}
		case "model":
			if info.Model == "" {
				info.Model = value
			}
		case "stepping":
			if info.Stepping == "" {
				info.Stepping = value
			}
		case "microcode":
			if info.Microcode == "" {
				info.Microcode = value
			}
		case "cache size":
			if info.CacheSize == "" {
				info.CacheSize = value
			}
		case "cpu MHz":
			if info.MHz == 0 {
				info.MHz, _ = strconv.ParseFloat(value, 64)
			}
		case "siblings":
			info.Siblings, _ = strconv.Atoi(value)
		case "core id":
			cores[value] = struct{}{}
		case "processor":
			info.LogicalCores++
		case "flags":
			if len(info.Flags) == 0 {
				info.Flags = strings.Fields(value)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return info, fmt.Errorf("failed to scan cpuinfo: %w", err)
	}

	info.PhysicalCores = len(cores)
	if info.PhysicalCores == 0 {
		info.PhysicalCores = info.LogicalCores
	}
	return info, nil
}
