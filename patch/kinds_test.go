package patch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/patch"
)

func TestCatalogConsistency(t *testing.T) {
	for _, name := range patch.KindNames() {
		k, ok := patch.LookupKind(name)
		require.True(t, ok, name)
		assert.Equal(t, name, k.Name)
		assert.False(t, k.Behaviors.Empty(), "%s has no behaviors", name)

		seen := map[string]bool{}
		for i, c := range k.Controllers {
			assert.Equal(t, i, c.Index, "%s.%s index", name, c.Name)
			assert.False(t, seen[c.Name], "%s.%s declared twice", name, c.Name)
			seen[c.Name] = true
			assert.LessOrEqual(t, c.Type.Min, c.Type.Max, "%s.%s bounds", name, c.Name)
		}
	}
}

func TestBehaviorSet(t *testing.T) {
	s := patch.Behaviors(patch.SendsAudio, patch.ReceivesNotes)
	assert.True(t, s.Has(patch.SendsAudio))
	assert.False(t, s.Has(patch.SendsNotes))
	assert.Equal(t, "{sends_audio,receives_notes}", s.String())
	assert.Equal(t, "{}", patch.BehaviorSet(0).String())
}

func TestValueTypes(t *testing.T) {
	e := patch.Enum("a", "b", "c", "d")
	assert.Equal(t, patch.EnumValue, e.Kind)
	assert.Equal(t, 3, e.Max)
	assert.True(t, e.Contains(3))
	assert.False(t, e.Contains(4))

	b := patch.Bool()
	assert.True(t, b.Contains(1))
	assert.False(t, b.Contains(-1))

	r := patch.Range(1, 32)
	assert.False(t, r.Contains(0))
	assert.Equal(t, "range[1,32]", r.String())
}

func TestAmplifierDeclaresDcOffset(t *testing.T) {
	k, ok := patch.LookupKind(patch.KindAmplifier)
	require.True(t, ok)
	_, ok = k.Controller("dc_offset")
	assert.True(t, ok)
}
