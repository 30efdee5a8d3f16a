package cpu

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(filepath.Join(dir, name)), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const cpuinfoFixture = `processor	: 0
vendor_id	: GenuineIntel
cpu family	: 6
model		: 154
model name	: 12th Gen Intel(R) Core(TM) i7-1260P
stepping	: 3
microcode	: 0x430
cpu MHz		: 2100.000
cache size	: 18432 KB
siblings	: 4
core id		: 0
flags		: fpu vme de pse tsc msr

processor	: 1
vendor_id	: GenuineIntel
model name	: should keep the first value
cpu MHz		: 400.000
core id		: 0
flags		: different flags ignored

processor	: 2
core id		: 1

processor	: 3
core id		: 1
`

func TestInfo(t *testing.T) {
	proc := t.TempDir()
	writeFixture(t, proc, "cpuinfo", cpuinfoFixture)

	c := &Collector{ProcRoot: proc}
	info, err := c.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "12th Gen Intel(R) Core(TM) i7-1260P", info.ModelName)
	assert.Equal(t, "GenuineIntel", info.VendorID)
	assert.Equal(t, "6", info.Family)
	assert.Equal(t, "154", info.Model)
	assert.Equal(t, "3", info.Stepping)
	assert.Equal(t, "0x430", info.Microcode)
	assert.Equal(t, "18432 KB", info.CacheSize)
	assert.InDelta(t, 2100.0, info.MHz, 0.001)
	assert.Equal(t, []string{"fpu", "vme", "de", "pse", "tsc", "msr"}, info.Flags)
	assert.Equal(t, 4, info.LogicalCores)
	assert.Equal(t, 2, info.PhysicalCores)
}

func TestInfoPhysicalFallsBackToLogical(t *testing.T) {
	proc := t.TempDir()
	writeFixture(t, proc, "cpuinfo", "processor\t: 0\nprocessor\t: 1\n")

	c := &Collector{ProcRoot: proc}
	info, err := c.Info(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, info.LogicalCores)
	assert.Equal(t, 2, info.PhysicalCores)
}

func TestInfoMissingFile(t *testing.T) {
	c := &Collector{ProcRoot: t.TempDir()}
	info, err := c.Info(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Info{}, info)
}

func TestLoad(t *testing.T) {
	proc := t.TempDir()
	writeFixture(t, proc, "loadavg", "0.52 0.58 0.59 1/1234 99999\n")
	writeFixture(t, proc, "stat", "cpu  50 0 30 20 0 0 0 0 0 0\ncpu0 1 2 3 4 5 6 7\n")

	c := &Collector{ProcRoot: proc}
	load, err := c.Load(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 0.52, load.Load1, 0.001)
	assert.InDelta(t, 0.58, load.Load5, 0.001)
	assert.InDelta(t, 0.59, load.Load15, 0.001)
	assert.Equal(t, uint64(50), load.User)
	assert.Equal(t, uint64(30), load.System)
	assert.Equal(t, uint64(20), load.Idle)
	assert.InDelta(t, 80.0, load.Usage, 0.001)
}

func TestLoadZeroTotal(t *testing.T) {
	proc := t.TempDir()
	writeFixture(t, proc, "loadavg", "0.00 0.00 0.00 1/1 1\n")
	writeFixture(t, proc, "stat", "cpu  0 0 0 0 0 0 0\n")

	c := &Collector{ProcRoot: proc}
	load, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, load.Usage)
}
