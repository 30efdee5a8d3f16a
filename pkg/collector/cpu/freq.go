package cpu

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Frequency holds the cpufreq scaling state of one CPU.
type Frequency struct {
	CurrentMHz float64
	MinMHz     float64
	MaxMHz     float64
	Governor   string
	Driver     string
}

// Frequency reads the scaling state of the lowest-numbered CPU that
// exposes a cpufreq directory. A nil result without error means no
// cpufreq data is available, which callers report as a warning.
func (c *Collector) Frequency(ctx context.Context) (*Frequency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := filepath.Join(c.sys(), "devices/system/cpu")
	for _, n := range c.cpuNumbers(base) {
		dir := filepath.Join(base, "cpu"+strconv.Itoa(n), "cpufreq")
		if _, err := os.Stat(dir); err != nil {
			continue
		}

		freq := &Frequency{
			CurrentMHz: readKHz(dir, "scaling_cur_freq"),
			MinMHz:     readKHz(dir, "scaling_min_freq"),
			MaxMHz:     readKHz(dir, "scaling_max_freq"),
			Governor:   readLine(dir, "scaling_governor"),
			Driver:     readLine(dir, "scaling_driver"),
		}
		return freq, nil
	}
	return nil, nil
}

// cpuNumbers lists the cpuN entries under base in ascending numeric
// order, so enumeration does not depend on directory order.
func (c *Collector) cpuNumbers(base string) []int {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil
	}
	var nums []int
	for _, e := range entries {
		rest, ok := strings.CutPrefix(e.Name(), "cpu")
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil {
			nums = append(nums, n)
		}
	}
	sort.Ints(nums)
	return nums
}

func readKHz(dir, name string) float64 {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return 0
	}
	khz, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0
	}
	return float64(khz) / 1000
}

func readLine(dir, name string) string {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(b), "\n")
	return strings.TrimSpace(line)
}
