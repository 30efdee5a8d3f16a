package cpu

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Load holds instantaneous load averages plus the aggregate jiffie
// breakdown from the first line of /proc/stat.
type Load struct {
	Load1  float64
	Load5  float64
	Load15 float64
	Usage  float64

	User    uint64
	Nice    uint64
	System  uint64
	Idle    uint64
	IOWait  uint64
	IRQ     uint64
	SoftIRQ uint64
}

// Load reads /proc/loadavg and the aggregate cpu line of /proc/stat.
// Usage is (total-idle-iowait)/total*100 over the seven counters,
// guarded against a zero total.
func (c *Collector) Load(ctx context.Context) (*Load, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	load := &Load{}
	if b, err := os.ReadFile(filepath.Join(c.proc(), "loadavg")); err == nil {
		fmt.Sscanf(string(b), "%f %f %f", &load.Load1, &load.Load5, &load.Load15)
	}

	f, err := os.Open(filepath.Join(c.proc(), "stat"))
	if err != nil {
		return load, nil
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() {
		var cpu string
		fmt.Sscanf(sc.Text(), "%s %d %d %d %d %d %d %d", &cpu,
			&load.User, &load.Nice, &load.System, &load.Idle,
			&load.IOWait, &load.IRQ, &load.SoftIRQ)

		total := load.User + load.Nice + load.System + load.Idle +
			load.IOWait + load.IRQ + load.SoftIRQ
		if total > 0 {
			used := total - load.Idle - load.IOWait
			load.Usage = float64(used) / float64(total) * 100
		}
	}
	return load, nil
}
