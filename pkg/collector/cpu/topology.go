package cpu

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
)

// Topology maps socket and core identifiers to the logical CPUs that
// belong to them.
type Topology struct {
	Sockets map[int][]int
	Cores   map[int][]int
}

// SocketIDs returns the physical package ids in ascending order.
func (t *Topology) SocketIDs() []int {
	ids := make([]int, 0, len(t.Sockets))
	for id := range t.Sockets {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CoresPerSocket divides the distinct core count over the socket count,
// treating a missing socket list as a single socket.
func (t *Topology) CoresPerSocket() int {
	sockets := len(t.Sockets)
	if sockets == 0 {
		sockets = 1
	}
	return len(t.Cores) / sockets
}

// Topology walks /sys/devices/system/cpu/cpuN/topology in ascending
// CPU order. Enumeration failure is an error so the caller can warn
// and skip the section.
func (c *Collector) Topology(ctx context.Context) (*Topology, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base := filepath.Join(c.sys(), "devices/system/cpu")
	nums := c.cpuNumbers(base)
	if len(nums) == 0 {
		return nil, fmt.Errorf("failed to enumerate CPUs under %s", base)
	}

	topo := &Topology{
		Sockets: make(map[int][]int),
		Cores:   make(map[int][]int),
	}
	for _, n := range nums {
		dir := filepath.Join(base, "cpu"+strconv.Itoa(n), "topology")
		if pkg, ok := readInt(dir, "physical_package_id"); ok {
			topo.Sockets[pkg] = append(topo.Sockets[pkg], n)
		}
		if core, ok := readInt(dir, "core_id"); ok {
			topo.Cores[core] = append(topo.Cores[core], n)
		}
	}
	return topo, nil
}

func readInt(dir, name string) (int, bool) {
	s := readLine(dir, name)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
