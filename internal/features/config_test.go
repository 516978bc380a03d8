package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Immutable(t *testing.T) {
	base := NewConfig()
	withSQL := base.With(SQL, true)

	assert.False(t, base.Enabled(SQL))
	assert.True(t, withSQL.Enabled(SQL))
	assert.False(t, withSQL.With(SQL, false).Enabled(SQL))
	assert.True(t, withSQL.Enabled(SQL))
}

func TestConfig_EnabledFlagsDeclarationOrder(t *testing.T) {
	cfg := NewConfig(Supabase, Cache, SQL, Tasks)
	assert.Equal(t, []Flag{SQL, Cache, Tasks, Supabase}, cfg.EnabledFlags())
	assert.Equal(t, []string{"sql", "cache", "tasks", "supabase"}, cfg.Names())
}

func TestConfig_Empty(t *testing.T) {
	cfg := NewConfig()
	assert.Empty(t, cfg.EnabledFlags())
	for _, f := range All {
		assert.False(t, cfg.Enabled(f))
	}
}

func TestConfig_OutOfRangeFlag(t *testing.T) {
	cfg := NewConfig().With(Flag(99), true)
	assert.False(t, cfg.Enabled(Flag(99)))
	assert.Empty(t, cfg.EnabledFlags())
}

func TestParseFlag(t *testing.T) {
	for _, f := range All {
		got, err := ParseFlag(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFlag("CORS")
	require.NoError(t, err)
	assert.Equal(t, CORS, got)

	_, err = ParseFlag("graphql")
	assert.Error(t, err)
}

func TestFlag_Description(t *testing.T) {
	for _, f := range All {
		assert.NotEmpty(t, f.Description(), f.String())
	}
	assert.Equal(t, "Flag(42)", Flag(42).String())
}
