package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("KIPPLE_LOG_LEVEL", "error")
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateText(t *testing.T) {
	out, _, err := execute(t, "generate", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "7-synth")
	assert.Contains(t, out, "surface")
	assert.Contains(t, out, "kipple_runs_total")
	assert.Regexp(t, `\n\s+1\s+MultiSynth\s+0 `, out, "the note input is listed at depth 0")
}

func TestGenerateJSONIsDeterministic(t *testing.T) {
	first, _, err := execute(t, "generate", "-s", "3", "-f", "json")
	require.NoError(t, err)
	second, _, err := execute(t, "generate", "-s", "3", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(first), &doc))
	assert.EqualValues(t, 3, doc["seed"])
}

func TestGenerateFromConfigWithMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 11\nmodule_count_min: 4\nmodule_count_max: 6\n"), 0o600))

	out, errOut, err := execute(t, "generate", "--config", path, "--format", "yaml", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "seed: 11")
	assert.Contains(t, errOut, "kipple_runs_total 1")
}

func TestGenerateRejectsFormat(t *testing.T) {
	_, _, err := execute(t, "generate", "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestNames(t *testing.T) {
	out, _, err := execute(t, "names", "--count", "5", "--seed", "9")
	require.NoError(t, err)
	lines := strings.Fields(out)
	require.Len(t, lines, 5)
	seen := map[string]bool{}
	for _, l := range lines {
		assert.False(t, seen[l], l)
		seen[l] = true
	}

	_, _, err = execute(t, "names", "--count", "0")
	assert.Error(t, err)
}

func TestMutationsList(t *testing.T) {
	out, _, err := execute(t, "mutations")
	require.NoError(t, err)
	assert.Contains(t, out, "bifurcate")
	assert.Contains(t, out, "reunion_amp")
}

func TestConfigInitAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kipple.toml")
	out, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	_, _, err = execute(t, "config", "init", path)
	assert.Error(t, err, "existing files are kept")
	_, _, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)

	out, _, err = execute(t, "config", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok ")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"mutations":{"theremin":5}}`), 0o600))
	_, _, err = execute(t, "config", "validate", bad)
	assert.ErrorContains(t, err, "theremin")
}

func TestBadLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "names")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestWatchGeneratesOnStart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kipple.yaml")
	require.NoError(t, config.WriteTemplate(path, false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	a := &app{log: zerolog.Nop()}
	require.NoError(t, a.watch(ctx, path, &out, formatJSON))
	assert.True(t, json.Valid(out.Bytes()))
}
