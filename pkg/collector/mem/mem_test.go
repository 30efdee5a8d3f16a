package mem

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

func TestMemory(t *testing.T) {
	proc := t.TempDir()
	writeFixture(t, proc, "meminfo", `MemTotal:       16054572 kB
MemFree:         2049348 kB
MemAvailable:    9388140 kB
Buffers:          523812 kB
Cached:          6376040 kB
SwapCached:            0 kB
SwapTotal:       2097148 kB
SwapFree:        2097148 kB
Shmem:            702184 kB
SReclaimable:     412956 kB
SUnreclaim:       186520 kB
HugePages_Total:       0
NotANumber:       oops kB
`)

	c := &Collector{ProcRoot: proc}
	m, err := c.Memory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(16054572), m.TotalKB)
	assert.Equal(t, uint64(9388140), m.AvailableKB)
	assert.Equal(t, uint64(2049348), m.FreeKB)
	assert.Equal(t, uint64(523812), m.BuffersKB)
	assert.Equal(t, uint64(6376040), m.CachedKB)
	assert.Equal(t, uint64(2097148), m.SwapTotalKB)
	assert.Equal(t, uint64(2097148), m.SwapFreeKB)
	assert.Equal(t, uint64(702184), m.ShmemKB)
	assert.Equal(t, uint64(412956), m.SReclaimableKB)
	assert.Equal(t, uint64(186520), m.SUnreclaimKB)

	assert.Equal(t, uint64(16054572-9388140), m.UsedKB())
	assert.Zero(t, m.SwapUsedKB())
}

func TestMemoryMissingFile(t *testing.T) {
	c := &Collector{ProcRoot: t.TempDir()}
	m, err := c.Memory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Memory{}, m)
}

func TestUsedClampsAtZero(t *testing.T) {
	m := &Memory{TotalKB: 100, AvailableKB: 200}
	assert.Zero(t, m.UsedKB())

	m = &Memory{SwapTotalKB: 100, SwapFreeKB: 200}
	assert.Zero(t, m.SwapUsedKB())
}
