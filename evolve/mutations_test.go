package evolve

import (
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/config"
	"github.com/katalvlaran/kipple/patch"
	"github.com/katalvlaran/kipple/rng"
)

func newRun(t *testing.T, maxBifurcations int) (*run, *Track) {
	t.Helper()
	params := config.Default()
	params.MaxBifurcations = maxBifurcations
	reg, err := NewRegistry(params)
	require.NoError(t, err)

	p, a, root := newArena(t)
	return &run{
		params:   params,
		registry: reg,
		log:      zerolog.Nop(),
		rec:      nopRecorder{},
		rngs:     a.rngs,
		patch:    p,
		arena:    a,
	}, root
}

func TestModuleMutationExtendsTrack(t *testing.T) {
	r, root := newRun(t, 4)
	m, ok := r.registry.Lookup("fm")
	require.True(t, ok)

	applied, err := m.apply(r, root)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, r.patch.ModuleCount())

	tail, _ := root.Tail()
	mod, err := r.patch.Module(tail)
	require.NoError(t, err)
	assert.Equal(t, patch.KindFM, mod.Kind)
	assert.True(t, r.patch.Connected(patch.NoteInID, tail))
}

func TestBifurcateSpawnsNMinusOneChildren(t *testing.T) {
	r, root := newRun(t, 2)
	applied, err := bifurcate(r, root)
	require.NoError(t, err)
	assert.True(t, applied)
	require.Equal(t, 2, r.arena.Len(), "fan-out 2 adds exactly one child")
	assert.Equal(t, root.ID(), r.arena.Tracks()[1].Ancestor())

	r, root = newRun(t, 10)
	_, err = bifurcate(r, root)
	require.NoError(t, err)
	children := r.arena.Len() - 1
	assert.GreaterOrEqual(t, children, 1)
	assert.LessOrEqual(t, children, 9)
	for _, c := range r.arena.Tracks()[1:] {
		assert.Equal(t, root.ID(), c.Ancestor())
		assert.False(t, c.Finished())
		assert.Empty(t, c.Mods())
	}
	assert.False(t, root.Finished(), "the parent finishes on a child's first append")
	assert.Zero(t, r.patch.ModuleCount())
}

// Every child of one bifurcation hangs off the parent's tail at bifurcation
// time, even when the finished parent takes an effect between two child
// activations. That effect is the parent's own branch off the same fork.
func TestBifurcationTopology(t *testing.T) {
	r, root := newRun(t, 4)
	fork := grow(t, r.patch, root, patch.KindFM)

	_, err := bifurcate(r, root)
	require.NoError(t, err)
	children := r.arena.Tracks()[1:]
	require.NotEmpty(t, children)

	var want []patch.ModuleID
	for i, c := range children {
		first := grow(t, r.patch, c, patch.KindReverb)
		want = append(want, first)
		assert.Equal(t, []patch.ModuleID{first, fork, patch.NoteInID}, slices.Collect(c.Lineage()))
		if i == 0 {
			require.True(t, root.Finished())
			want = append(want, grow(t, r.patch, root, patch.KindDelay))
		}
	}

	outs, err := r.patch.Outputs(fork)
	require.NoError(t, err)
	assert.Equal(t, want, outs, "one edge per child plus the parent's own continuation")
}

func TestTerminate(t *testing.T) {
	r, root := newRun(t, 4)
	applied, err := terminate(r, root)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, root.Finished())
	assert.Equal(t, Set(Synth), root.SupportedMutations())
}

func TestFeedbackWithoutHistoryIsNoop(t *testing.T) {
	r, root := newRun(t, 4)
	applied, err := feedback(r, root)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Zero(t, r.patch.ModuleCount())
}

func TestFeedbackClosesLoop(t *testing.T) {
	r, root := newRun(t, 4)
	grow(t, r.patch, root, patch.KindFM)
	rev := grow(t, r.patch, root, patch.KindReverb)

	applied, err := feedback(r, root)
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, 4, r.patch.ModuleCount(), "two Feedback modules added")

	tail, _ := root.Tail()
	assert.Equal(t, rev, tail, "feedback modules are not appended")
	assert.Len(t, root.Mods(), 3)

	outs, err := r.patch.Outputs(rev)
	require.NoError(t, err)
	require.Len(t, outs, 1)
	fb1, err := r.patch.Module(outs[0])
	require.NoError(t, err)
	assert.Equal(t, patch.KindFeedback, fb1.Kind)

	loops, err := r.patch.FeedbackLoops()
	require.NoError(t, err)
	assert.Len(t, loops, 1)
}

func TestReunionWithoutPartnerIsNoop(t *testing.T) {
	r, root := newRun(t, 4)
	grow(t, r.patch, root, patch.KindFM)

	applied, err := reunite(patch.KindModulator)(r, root)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Equal(t, 1, r.patch.ModuleCount())
}

func TestReunionMergesPartner(t *testing.T) {
	r, root := newRun(t, 4)
	fm := grow(t, r.patch, root, patch.KindFM)
	left, err := r.arena.Spawn(root.ID())
	require.NoError(t, err)
	right, err := r.arena.Spawn(root.ID())
	require.NoError(t, err)
	rev := grow(t, r.patch, left, patch.KindReverb)
	require.True(t, root.Finished())

	// root is finished, so right (still sitting on fm) is the only partner
	applied, err := reunite(patch.KindModulator)(r, left)
	require.NoError(t, err)
	require.True(t, applied)

	mod, _ := left.Tail()
	m, err := r.patch.Module(mod)
	require.NoError(t, err)
	assert.Equal(t, patch.KindModulator, m.Kind)
	ins, err := r.patch.Inputs(mod)
	require.NoError(t, err)
	assert.Equal(t, []patch.ModuleID{rev, fm}, ins)
	assert.Empty(t, right.Mods())
}

func TestRandomizeControllers(t *testing.T) {
	kind, ok := patch.LookupKind(patch.KindAmplifier)
	require.True(t, ok)

	for seed := int64(0); seed < 64; seed++ {
		p := patch.New("test")
		id, err := p.CreateModule(patch.KindAmplifier)
		require.NoError(t, err)
		require.NoError(t, randomizeControllers(p, id, rng.New(seed).Mutations(), "dc_offset"))

		_, set := p.Value(id, "dc_offset")
		assert.False(t, set, "seed %d", seed)
		for _, c := range kind.Controllers {
			if v, ok := p.Value(id, c.Name); ok {
				assert.True(t, c.Type.Contains(v), "seed %d: %s=%d", seed, c.Name, v)
			}
		}
	}
}
