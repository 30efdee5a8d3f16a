package disk

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Partition describes one mounted filesystem.
type Partition struct {
	Device         string
	Mountpoint     string
	Filesystem     string
	MountOptions   string
	TotalBytes     uint64
	UsedBytes      uint64
	AvailableBytes uint64
	UsagePercent   float64
}

// Virtual filesystems never backed by a block device.
var virtualFilesystems = map[string]bool{
	"proc":     true,
	"sysfs":    true,
	"devtmpfs": true,
	"tmpfs":    true,
}

// Partitions parses /proc/mounts, keeping only /dev/-backed mounts on
// real filesystems, and sizes each mountpoint with statfs. Used space
// is (blocks-bfree)*frsize while available is bavail*frsize, so the
// two do not add up to the total on filesystems with reserved blocks.
// Usage percent is guarded against a zero total.
func (c *Collector) Partitions(ctx context.Context) ([]Partition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(c.proc(), "mounts"))
	if err != nil {
		return nil, nil
	}
	defer f.Close()

	var parts []Partition
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}
		device, mountpoint, fstype, options := fields[0], fields[1], fields[2], fields[3]
		if !strings.HasPrefix(device, "/dev/") || virtualFilesystems[fstype] {
			continue
		}

		p := Partition{
			Device:       device,
			Mountpoint:   mountpoint,
			Filesystem:   fstype,
			MountOptions: options,
		}

		var st unix.Statfs_t
		if err := c.statfs(mountpoint, &st); err == nil {
			frsize := uint64(st.Frsize)
			p.TotalBytes = st.Blocks * frsize
			p.AvailableBytes = st.Bavail * frsize
			if st.Blocks >= st.Bfree {
				p.UsedBytes = (st.Blocks - st.Bfree) * frsize
			}
			if p.TotalBytes > 0 {
				p.UsagePercent = float64(p.UsedBytes) / float64(p.TotalBytes) * 100
			}
		}

		parts = append(parts, p)
	}
	return parts, sc.Err()
}
