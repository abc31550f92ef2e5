package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/gnafload/pkg/gnafload"
)

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["load"], "load command should be registered")
	assert.True(t, names["list"], "list command should be registered")
	assert.True(t, names["version"], "version command should be registered")
}

func TestRootCommand_SilencesUsage(t *testing.T) {
	assert.True(t, rootCmd.SilenceUsage)
}

func TestFlagErrorsMapToUsageExitCode(t *testing.T) {
	err := rootCmd.FlagErrorFunc()(rootCmd, errors.New("unknown flag: --frobnicate"))
	require.Error(t, err)
	assert.ErrorIs(t, err, gnafload.ErrUsage)
	assert.Contains(t, err.Error(), "unknown flag: --frobnicate")
	assert.Equal(t, gnafload.ExitUsageError, gnafload.ExitCodeForError(err))
}

func TestMaxArgs(t *testing.T) {
	check := maxArgs(1)

	assert.NoError(t, check(listCmd, nil))
	assert.NoError(t, check(listCmd, []string{"/data"}))

	err := check(listCmd, []string{"/data", "extra"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gnafload.ErrUsage)
	assert.Equal(t, gnafload.ExitUsageError, gnafload.ExitCodeForError(err))
}

func TestVersionDefaults(t *testing.T) {
	assert.Equal(t, "dev", version)
	assert.Equal(t, "unknown", commit)
	assert.Equal(t, "unknown", date)
}
