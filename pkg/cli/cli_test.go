package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestUnknownFlagIsAnError(t *testing.T) {
	for _, build := range []func() *cli.Command{OsinfoCmd, CpuinfoCmd, MeminfoCmd, DisklsCmd} {
		cmd := build()
		err := cmd.Run(context.Background(), []string{cmd.Name, "--bogus"})
		require.Error(t, err, cmd.Name)
		assert.Contains(t, err.Error(), "bogus", cmd.Name)
	}
}

func TestPositionalArgsAreRejected(t *testing.T) {
	cmd := OsinfoCmd()
	err := cmd.Run(context.Background(), []string{"osinfo", "stray"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option -- 'stray'")
}

func TestSuggestFlag(t *testing.T) {
	cmd := OsinfoCmd()
	tests := []struct {
		name    string
		errText string
		want    string
	}{
		{
			name:    "close miss gets a suggestion",
			errText: "flag provided but not defined: -detialed",
			want:    "--detailed",
		},
		{
			name:    "single transposition",
			errText: "flag provided but not defined: -verison",
			want:    "--version",
		},
		{
			name:    "nothing close enough",
			errText: "flag provided but not defined: -zzzzzzzz",
			want:    "",
		},
		{
			name:    "no parse-error shape",
			errText: "something else went wrong",
			want:    "",
		},
		{
			name:    "empty token",
			errText: "flag provided but not defined: ",
			want:    "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestFlag(cmd, tt.errText))
		})
	}
}

func TestVersionFlagShortCircuits(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, build := range []func() *cli.Command{OsinfoCmd, CpuinfoCmd, MeminfoCmd, DisklsCmd} {
		cmd := build()
		err := cmd.Run(context.Background(), []string{cmd.Name, "--version"})
		assert.NoError(t, err, cmd.Name)
	}
}
