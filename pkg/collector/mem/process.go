package mem

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultProcessLimit caps the top-process list when no other limit is
// configured.
const DefaultProcessLimit = 15

// Process is one process's resident memory footprint.
type Process struct {
	PID      int
	Name     string
	MemoryKB uint64
	Cmdline  string
}

// TopProcesses scans the numeric /proc entries and returns the limit
// largest RSS consumers in descending order, ties broken by pid so the
// result does not depend on directory order. Processes with an empty
// name or zero RSS are excluded; processes that exit mid-scan are
// skipped silently.
func (c *Collector) TopProcesses(ctx context.Context, limit int) ([]Process, error) {
	entries, err := os.ReadDir(c.proc())
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var procs []Process
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		if p, ok := c.readProcess(pid); ok {
			procs = append(procs, p)
		}
	}

	sort.Slice(procs, func(i, j int) bool {
		if procs[i].MemoryKB != procs[j].MemoryKB {
			return procs[i].MemoryKB > procs[j].MemoryKB
		}
		return procs[i].PID < procs[j].PID
	})
	if limit > 0 && len(procs) > limit {
		procs = procs[:limit]
	}
	return procs, nil
}

func (c *Collector) readProcess(pid int) (Process, bool) {
	dir := filepath.Join(c.proc(), strconv.Itoa(pid))
	f, err := os.Open(filepath.Join(dir, "status"))
	if err != nil {
		return Process{}, false
	}
	defer f.Close()

	p := Process{PID: pid}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if rest, ok := strings.CutPrefix(line, "Name:"); ok {
			p.Name = strings.TrimSpace(rest)
		} else if rest, ok := strings.CutPrefix(line, "VmRSS:"); ok {
			if parts := strings.Fields(rest); len(parts) > 0 {
				p.MemoryKB, _ = strconv.ParseUint(parts[0], 10, 64)
			}
			break
		}
	}

	if b, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
		cmd := strings.ReplaceAll(strings.TrimRight(string(b), "\x00"), "\x00", " ")
		if len(cmd) > 40 {
			cmd = cmd[:37] + "..."
		}
		p.Cmdline = cmd
	}

	if p.Name == "" || p.MemoryKB == 0 {
		return Process{}, false
	}
	return p, true
}
