package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/faspi/cli/internal/errors"
	"github.com/faspi/cli/internal/features"
)

// scriptedAsker answers from a map keyed by title and records every question.
type scriptedAsker struct {
	answers map[string]bool
	asked   []string
	err     error
}

func (s *scriptedAsker) Confirm(title string, def bool) (bool, error) {
	s.asked = append(s.asked, title)
	if s.err != nil {
		return false, s.err
	}
	if v, ok := s.answers[title]; ok {
		return v, nil
	}
	return def, nil
}

func title(f features.Flag) string {
	return "Include " + f.Description() + "?"
}

func TestResolve_AsksOnlyUnforced(t *testing.T) {
	asker := &scriptedAsker{answers: map[string]bool{
		title(features.Cache): true,
	}}
	forced := map[features.Flag]bool{
		features.SQL:  true,
		features.Auth: false,
	}

	cfg, err := Resolve(features.NewConfig(), forced, asker)
	require.NoError(t, err)

	assert.Len(t, asker.asked, 4)
	assert.NotContains(t, asker.asked, title(features.SQL))
	assert.NotContains(t, asker.asked, title(features.Auth))
	assert.Equal(t, []features.Flag{features.SQL, features.Cache}, cfg.EnabledFlags())
}

func TestResolve_AllForced(t *testing.T) {
	forced := make(map[features.Flag]bool)
	for _, f := range features.All {
		forced[f] = f == features.Tasks
	}
	asker := &scriptedAsker{}

	cfg, err := Resolve(features.NewConfig(), forced, asker)
	require.NoError(t, err)
	assert.Empty(t, asker.asked)
	assert.Equal(t, []features.Flag{features.Tasks}, cfg.EnabledFlags())
}

func TestResolve_QuestionOrder(t *testing.T) {
	asker := &scriptedAsker{}
	_, err := Resolve(features.NewConfig(), nil, asker)
	require.NoError(t, err)

	var want []string
	for _, f := range features.All {
		want = append(want, title(f))
	}
	assert.Equal(t, want, asker.asked)
}

func TestResolve_Cancelled(t *testing.T) {
	asker := &scriptedAsker{err: oerrors.ErrCancelled}
	_, err := Resolve(features.NewConfig(), nil, asker)
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
}

func TestInteractive_Disabled(t *testing.T) {
	assert.False(t, Interactive(true, true))
	assert.False(t, Interactive(false, false))
}
