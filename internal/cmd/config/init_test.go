package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faspi/cli/internal/cmdtypes"
	"github.com/faspi/cli/internal/config"
	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/testutil"
)

func TestNewConfigInitCmd(t *testing.T) {
	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{})

	assert.Equal(t, "init", c.Use)
	assert.NotEmpty(t, c.Short)
	assert.NotEmpty(t, c.Long)

	f := c.Flags().Lookup("force")
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Shorthand)
}

func TestConfigInit_CreatesFile(t *testing.T) {
	testutil.CaptureOutput(t)
	path := filepath.Join(t.TempDir(), "faspi", "config.yaml")

	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# faspi configuration")
	assert.Contains(t, string(data), "default_method: GET")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_RoundTripsThroughLoader(t *testing.T) {
	testutil.CaptureOutput(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	c.SetArgs([]string{})
	require.NoError(t, c.Execute())

	loaded, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	buf := testutil.CaptureOutput(t)
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "update_check: false\n")

	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	c.SetArgs([]string{})
	err := c.Execute()
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitConfigurationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, buf.String(), "--force")

	assert.Equal(t, "update_check: false\n", testutil.ReadFile(t, dir, "config.yaml"))
}

func TestConfigInit_Force(t *testing.T) {
	testutil.CaptureOutput(t)
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "config.yaml", "update_check: false\n")

	c := NewConfigInitCmd(&cmdtypes.GlobalConfig{ConfigPath: path})
	c.SetArgs([]string{"--force"})
	require.NoError(t, c.Execute())

	assert.Contains(t, testutil.ReadFile(t, dir, "config.yaml"), "update_check: true")
}
