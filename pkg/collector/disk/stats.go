package disk

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Stats is one /proc/diskstats row. Time counters are milliseconds.
type Stats struct {
	Device           string
	ReadsCompleted   uint64
	ReadsMerged      uint64
	SectorsRead      uint64
	TimeReadingMs    uint64
	WritesCompleted  uint64
	WritesMerged     uint64
	SectorsWritten   uint64
	TimeWritingMs    uint64
	IOInProgress     uint64
	TimeIOMs         uint64
	WeightedTimeIOMs uint64
}

// Stats parses /proc/diskstats into a map keyed by device name. Rows
// with fewer than the 14 classic fields are skipped.
func (c *Collector) Stats(ctx context.Context) (map[string]Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := make(map[string]Stats)
	f, err := os.Open(filepath.Join(c.proc(), "diskstats"))
	if err != nil {
		return stats, nil
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 14 {
			continue
		}

		nums := make([]uint64, 11)
		ok := true
		for i := range nums {
			nums[i], err = strconv.ParseUint(fields[i+3], 10, 64)
			if err != nil {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}

		stats[fields[2]] = Stats{
			Device:           fields[2],
			ReadsCompleted:   nums[0],
			ReadsMerged:      nums[1],
			SectorsRead:      nums[2],
			TimeReadingMs:    nums[3],
			WritesCompleted:  nums[4],
			WritesMerged:     nums[5],
			SectorsWritten:   nums[6],
			TimeWritingMs:    nums[7],
			IOInProgress:     nums[8],
			TimeIOMs:         nums[9],
			WeightedTimeIOMs: nums[10],
		}
	}
	return stats, sc.Err()
}
