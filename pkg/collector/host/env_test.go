package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment(t *testing.T) {
	t.Setenv("PATH", "/usr/local/bin:/usr/bin")
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("EDITOR", "vim")
	t.Setenv("SHELL", "/bin/bash")
	t.Setenv("XDG_CURRENT_DESKTOP", "GNOME")
	t.Setenv("WINDOWMANAGER", "/usr/bin/mutter")

	c := &Collector{}
	env := c.Environment()

	assert.Equal(t, "/usr/local/bin:/usr/bin", env.Path)
	assert.Equal(t, "en_US.UTF-8", env.Lang)
	assert.Equal(t, "vim", env.Editor)
	assert.Equal(t, "/bin/bash", env.Shell)
	assert.Equal(t, "GNOME", env.WindowManager)
}

func TestEnvironmentWindowManagerFallback(t *testing.T) {
	t.Setenv("XDG_CURRENT_DESKTOP", "")
	t.Setenv("WINDOWMANAGER", "/usr/bin/i3")

	c := &Collector{}
	assert.Equal(t, "/usr/bin/i3", c.Environment().WindowManager)
}
