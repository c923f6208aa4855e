package evolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/config"
)

func names(ms []Mutation) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestCategoryNamesMatchConfig(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, len(config.Categories))
	for i, c := range cats {
		assert.Equal(t, config.Categories[i], c.String())
		back, ok := ParseCategory(c.String())
		assert.True(t, ok)
		assert.Equal(t, c, back)
	}
	_, ok := ParseCategory("percussion")
	assert.False(t, ok)
	assert.Equal(t, "{effect,reunion}", Set(Reunion, Effect).String())
}

func TestRegistryDefaults(t *testing.T) {
	reg, err := NewRegistry(config.Default())
	require.NoError(t, err)
	assert.Equal(t, 30, reg.Len())
	for _, m := range reg.Mutations() {
		assert.Equal(t, config.DefaultProbability, m.Probability, m.Name)
		assert.NotNil(t, m.apply, m.Name)
	}

	assert.Equal(t, []string{"bifurcate"}, names(reg.InCategory(Bifurcation)))
	assert.Equal(t, []string{"terminate"}, names(reg.InCategory(Termination)))
	assert.Equal(t, []string{"reunion_amp", "modulator"}, names(reg.InCategory(Reunion)))
	assert.Len(t, reg.InCategory(Synth), 9)
	assert.Len(t, reg.InCategory(Effect), 17)
	assert.Nil(t, reg.InCategory(numCategories))
}

func TestRegistryOverrides(t *testing.T) {
	params := config.Default()
	params.Mutations = map[string]int{"reverb": 90, "feedback": 0}
	reg, err := NewRegistry(params)
	require.NoError(t, err)

	m, ok := reg.Lookup("reverb")
	require.True(t, ok)
	assert.Equal(t, 90, m.Probability)
	assert.Equal(t, Effect, m.Category)
	m, _ = reg.Lookup("feedback")
	assert.Zero(t, m.Probability)

	_, ok = reg.Lookup("theremin")
	assert.False(t, ok)
}

func TestRegistryRejectsUnknownNames(t *testing.T) {
	params := config.Default()
	params.Mutations = map[string]int{"theremin": 10, "reverb": 20}
	_, err := NewRegistry(params)
	assert.ErrorIs(t, err, ErrUnknownMutation)
	assert.Contains(t, err.Error(), "theremin")
}

func TestTemplatesNameEveryMutation(t *testing.T) {
	for _, f := range []config.Format{config.FormatTOML, config.FormatYAML} {
		raw, err := config.Template(f)
		require.NoError(t, err)
		params, err := config.Parse([]byte(raw), f)
		require.NoError(t, err, f)

		_, err = NewRegistry(params)
		require.NoError(t, err, f)
		for _, name := range MutationNames() {
			assert.Contains(t, params.Mutations, name, "%s template", f)
		}
	}
}
