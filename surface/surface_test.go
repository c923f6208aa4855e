package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/naming"
	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
	"github.com/katalvlaran/kipple/surface"
)

func TestMappingFor(t *testing.T) {
	cases := []struct {
		name string
		in   patch.ValueType
		want patch.Mapping
	}{
		{"enum of 4", patch.Enum("a", "b", "c", "d"), patch.Mapping{Min: 0, Max: 3, Gain: 341}},
		{"enum of 2", patch.Enum("a", "b"), patch.Mapping{Min: 0, Max: 1, Gain: 512}},
		{"enum of 1", patch.Enum("a"), patch.Mapping{Min: 0, Max: 0, Gain: 256}},
		{"bool", patch.Bool(), patch.Mapping{Min: 0, Max: 1, Gain: 512}},
		{"range from 1", patch.Range(1, 32), patch.Mapping{Min: 1, Max: 32, Gain: 264}},
		{"range from 1 to 1", patch.Range(1, 1), patch.Mapping{Min: 1, Max: 1, Gain: 512}},
		{"range from 0", patch.Range(0, 256), patch.Mapping{Min: 0, Max: surface.FullScale, Gain: 256}},
		{"signed range", patch.Range(-600, 600), patch.Mapping{Min: 0, Max: surface.FullScale, Gain: 256}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, surface.MappingFor(tc.in))
		})
	}
}

func build(t *testing.T, kinds ...string) *patch.Patch {
	t.Helper()
	p := patch.New("test")
	prev := patch.NoteInID
	for _, k := range kinds {
		id, err := p.CreateModule(k)
		require.NoError(t, err)
		require.NoError(t, p.Connect(prev, id))
		prev = id
	}
	return p
}

func TestGenerateSmallPatch(t *testing.T) {
	p := build(t, patch.KindFM, patch.KindReverb)
	fm, _ := patch.LookupKind(patch.KindFM)
	rev, _ := patch.LookupKind(patch.KindReverb)
	want := len(fm.Controllers) + len(rev.Controllers)
	require.LessOrEqual(t, want, surface.Groups*surface.Slots)

	m := rng.New(7)
	s, err := surface.Generate(p, naming.New(m.Names()), m.Names())
	require.NoError(t, err)
	require.Len(t, s.Groups, surface.Groups, "every group exists even when empty")
	assert.Equal(t, want, s.Len())
	assert.Equal(t, 2+want, p.ModuleCount())

	targets := map[patch.ModuleID]int{}
	for gi, g := range s.Groups {
		assert.NotEmpty(t, g.Name)
		for slot, b := range g.Bindings {
			targets[b.Target]++
			assert.Equal(t, surface.ValueController, b.Controller)
			assert.True(t, p.Connected(b.Module, b.Target))

			mod, err := p.Module(b.Module)
			require.NoError(t, err)
			assert.Equal(t, patch.KindMultiCtl, mod.Kind)
			assert.Equal(t, b.Label, mod.Name)
			assert.Equal(t, surface.Layer, mod.Layer)
			assert.Equal(t, patch.Position{X: slot * surface.Spacing, Y: gi * surface.Spacing}, mod.Position)
			require.NotNil(t, mod.Mapping)
			assert.Equal(t, b.Mapping, *mod.Mapping)
			gain, ok := p.Value(b.Module, surface.GainController)
			assert.True(t, ok)
			assert.Equal(t, b.Mapping.Gain, gain)

			ctls, err := p.Controllers(b.Target)
			require.NoError(t, err)
			assert.Equal(t, b.TargetController, ctls[b.Mapping.Controller].Name)
		}
	}
	assert.Equal(t, map[patch.ModuleID]int{2: len(fm.Controllers), 3: len(rev.Controllers)}, targets)
}

func TestGenerateCapsAtSixtyFour(t *testing.T) {
	kinds := make([]string, 12)
	for i := range kinds {
		kinds[i] = patch.KindAnalogGenerator
	}
	p := build(t, kinds...)
	m := rng.New(3)
	s, err := surface.Generate(p, naming.New(m.Names()), m.Names())
	require.NoError(t, err)
	assert.Equal(t, surface.Groups*surface.Slots, s.Len())
	for _, g := range s.Groups {
		assert.Len(t, g.Bindings, surface.Slots)
	}
}

func TestGenerateEmptyPatch(t *testing.T) {
	p := patch.New("test")
	m := rng.New(1)
	names := naming.New(m.Names())
	s, err := surface.Generate(p, names, m.Names())
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Len(t, s.Groups, surface.Groups)
	assert.Equal(t, surface.Groups, names.Used())
	assert.Zero(t, p.ModuleCount())
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := func() *surface.Surface {
		p := build(t, patch.KindDrumSynth, patch.KindEcho, patch.KindFilter)
		m := rng.New(99)
		s, err := surface.Generate(p, naming.New(m.Names()), m.Names())
		require.NoError(t, err)
		return s
	}
	assert.Equal(t, gen(), gen())
}

func TestGenerateReportsExhaustion(t *testing.T) {
	p := build(t, patch.KindFM)
	m := rng.New(1)
	names := naming.New(m.Names(), naming.WithStructures(naming.Structure{{Literal: "only"}}), naming.WithMaxAttempts(2))
	_, err := surface.Generate(p, names, m.Names())
	assert.ErrorIs(t, err, naming.ErrExhausted)
}
