package cpu

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	sys := t.TempDir()
	base := filepath.Join("devices", "system", "cpu")

	// cpu0 has no cpufreq directory; cpu2 comes before cpu10 numerically.
	writeFixture(t, sys, filepath.Join(base, "cpu0", "topology", "core_id"), "0\n")
	writeFixture(t, sys, filepath.Join(base, "cpu10", "cpufreq", "scaling_cur_freq"), "999999\n")
	writeFixture(t, sys, filepath.Join(base, "cpu2", "cpufreq", "scaling_cur_freq"), "2100000\n")
	writeFixture(t, sys, filepath.Join(base, "cpu2", "cpufreq", "scaling_min_freq"), "400000\n")
	writeFixture(t, sys, filepath.Join(base, "cpu2", "cpufreq", "scaling_max_freq"), "4700000\n")
	writeFixture(t, sys, filepath.Join(base, "cpu2", "cpufreq", "scaling_governor"), "powersave\n")
	writeFixture(t, sys, filepath.Join(base, "cpu2", "cpufreq", "scaling_driver"), "intel_pstate\n")

	c := &Collector{SysRoot: sys}
	freq, err := c.Frequency(context.Background())
	require.NoError(t, err)
	require.NotNil(t, freq)

	assert.InDelta(t, 2100.0, freq.CurrentMHz, 0.001)
	assert.InDelta(t, 400.0, freq.MinMHz, 0.001)
	assert.InDelta(t, 4700.0, freq.MaxMHz, 0.001)
	assert.Equal(t, "powersave", freq.Governor)
	assert.Equal(t, "intel_pstate", freq.Driver)
}

func TestFrequencyNoCpufreq(t *testing.T) {
	sys := t.TempDir()
	writeFixture(t, sys, filepath.Join("devices", "system", "cpu", "cpu0", "topology", "core_id"), "0\n")

	c := &Collector{SysRoot: sys}
	freq, err := c.Frequency(context.Background())
	require.NoError(t, err)
	assert.Nil(t, freq)
}

func TestTopology(t *testing.T) {
	sys := t.TempDir()
	base := filepath.Join("devices", "system", "cpu")
	cpus := map[string]struct{ pkg, core string }{
		"cpu0": {"0", "0"},
		"cpu1": {"0", "0"},
		"cpu2": {"0", "1"},
		"cpu3": {"0", "1"},
		"cpu4": {"1", "2"},
		"cpu5": {"1", "2"},
	}
	for name, ids := range cpus {
		writeFixture(t, sys, filepath.Join(base, name, "topology", "physical_package_id"), ids.pkg+"\n")
		writeFixture(t, sys, filepath.Join(base, name, "topology", "core_id"), ids.core+"\n")
	}

	c := &Collector{SysRoot: sys}
	topo, err := c.Topology(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, topo.SocketIDs())
	assert.Equal(t, []int{0, 1, 2, 3}, topo.Sockets[0])
	assert.Equal(t, []int{4, 5}, topo.Sockets[1])
	assert.Len(t, topo.Cores, 3)
	assert.Equal(t, 1, topo.CoresPerSocket())
}

func TestTopologyNoCPUs(t *testing.T) {
	c := &Collector{SysRoot: t.TempDir()}
	_, err := c.Topology(context.Background())
	assert.Error(t, err)
}
