package naming_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/naming"
	"github.com/katalvlaran/kipple/rng"
)

func TestNamesAreUnique(t *testing.T) {
	t.Parallel()

	g := naming.New(rng.New(1).Names())
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		name, err := g.Next()
		require.NoError(t, err)
		require.NotEmpty(t, name)
		require.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
		assert.True(t, g.Seen(name))
	}
	assert.Equal(t, 500, g.Used())
}

func TestNamesDeterministic(t *testing.T) {
	t.Parallel()

	a := naming.New(rng.New(77).Names())
	b := naming.New(rng.New(77).Names())
	for i := 0; i < 64; i++ {
		na, err := a.Next()
		require.NoError(t, err)
		nb, err := b.Next()
		require.NoError(t, err)
		require.Equal(t, na, nb)
	}
}

func TestNamesUseGrammar(t *testing.T) {
	t.Parallel()

	g := naming.New(rng.New(3).Names())
	for i := 0; i < 100; i++ {
		name, err := g.Next()
		require.NoError(t, err)
		assert.LessOrEqual(t, strings.Count(name, "_"), 1)
		assert.Equal(t, strings.ToLower(name), name)
	}
}

// TestExhaustion: a one-fragment structure has at most len(Head) names.
func TestExhaustion(t *testing.T) {
	t.Parallel()

	single := naming.Structure{{Fragment: naming.Head}}
	g := naming.New(rng.New(5).Names(),
		naming.WithStructures(single),
		naming.WithMaxAttempts(2000),
	)
	heads := len(naming.Fragments(naming.Head))
	for i := 0; i < heads; i++ {
		_, err := g.Next()
		require.NoError(t, err, fmt.Sprintf("name %d of %d", i, heads))
	}
	_, err := g.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, naming.ErrExhausted))
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { naming.WithMaxAttempts(0) })
	assert.Panics(t, func() { naming.WithStructures() })
}
