package host

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

func TestDistro(t *testing.T) {
	etc := t.TempDir()
	writeFixture(t, etc, "os-release", `NAME="Ubuntu"
VERSION="24.04.1 LTS (Noble Numbat)"
ID=ubuntu
ID_LIKE=debian
PRETTY_NAME="Ubuntu 24.04.1 LTS"
VERSION_ID="24.04"
HOME_URL="https://www.ubuntu.com/"
VERSION_CODENAME=noble
this line has no delimiter
NAME="Should Not Win"
`)

	c := &Collector{EtcRoot: etc}
	d, err := c.Distro(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ubuntu", d.Name)
	assert.Equal(t, "24.04.1 LTS (Noble Numbat)", d.Version)
	assert.Equal(t, "ubuntu", d.ID)
	assert.Equal(t, "debian", d.IDLike)
	assert.Equal(t, "Ubuntu 24.04.1 LTS", d.PrettyName)
	assert.Equal(t, "24.04", d.VersionID)
	assert.Equal(t, "noble", d.VersionCodename)
	assert.Equal(t, "https://www.ubuntu.com/", d.HomeURL)
	assert.Empty(t, d.SupportURL)
}

func TestDistroMissingFile(t *testing.T) {
	c := &Collector{EtcRoot: t.TempDir()}
	d, err := c.Distro(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &Distro{}, d)
}

func TestDistroFirstNonEmptyWins(t *testing.T) {
	etc := t.TempDir()
	writeFixture(t, etc, "os-release", "ID=\nID=fedora\n")

	c := &Collector{EtcRoot: etc}
	d, err := c.Distro(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fedora", d.ID)
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"quoted"`, "quoted"},
		{"bare", "bare"},
		{`"`, `"`},
		{"", ""},
		{`"unterminated`, `"unterminated`},
		{`""`, ""},
	}
	for _, tt := range tests {
		if got := unquote(tt.in); got != tt.want {
			t.Errorf("unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
