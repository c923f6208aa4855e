package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kipple/config"
)

func TestDefaultIsValid(t *testing.T) {
	p := config.Default()
	require.NoError(t, p.Validate())
	assert.Equal(t, "0-synth", p.ProjectName())
	assert.Equal(t, 50, p.CategoryProbability("reunion"))
	assert.Equal(t, 50, p.MutationProbability("reverb"))
	assert.Equal(t, 4, p.MaxBifurcations)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*config.Params){
		"min above max":       func(p *config.Params) { p.ModuleCountMin, p.ModuleCountMax = 10, 5 },
		"zero modules":        func(p *config.Params) { p.ModuleCountMin = 0 },
		"too many modules":    func(p *config.Params) { p.ModuleCountMax = 201 },
		"negative seed":       func(p *config.Params) { p.Seed = -1 },
		"seed too large":      func(p *config.Params) { p.Seed = config.MaxSeed + 1 },
		"fan-out of one":      func(p *config.Params) { p.MaxBifurcations = 1 },
		"probability > 100":   func(p *config.Params) { p.Categories["synth"] = 101 },
		"negative mutation":   func(p *config.Params) { p.Mutations["reverb"] = -5 },
		"unknown category":    func(p *config.Params) { p.Categories["percussion"] = 10 },
		"blank mutation name": func(p *config.Params) { p.Mutations[""] = 10 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := config.Default()
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), config.ErrInvalidParams)
		})
	}
}

func TestCategoryKeysFollowCategories(t *testing.T) {
	p := config.Default()
	for _, c := range config.Categories {
		p.Categories[c] = 100
	}
	require.NoError(t, p.Validate(), "every listed category is accepted")

	p.Categories["percussion"] = 10
	err := p.Validate()
	require.ErrorIs(t, err, config.ErrInvalidParams)
	assert.Contains(t, err.Error(), "unknown category percussion")
}

func TestBoundaryValuesAccepted(t *testing.T) {
	p := config.Default()
	p.Seed = config.MaxSeed
	p.ModuleCountMin, p.ModuleCountMax = 200, 200
	p.MaxBifurcations = 10
	p.Categories["synth"] = 0
	p.Mutations["fm"] = 100
	assert.NoError(t, p.Validate())
}

func TestParseOverlaysDefaults(t *testing.T) {
	docs := map[config.Format]string{
		config.FormatYAML: "seed: 42\nmodule_count_max: 30\ncategories:\n  reunion: 5\nmutations:\n  reverb: 90\n",
		config.FormatTOML: "seed = 42\nmodule_count_max = 30\n[categories]\nreunion = 5\n[mutations]\nreverb = 90\n",
		config.FormatJSON: `{"seed": 42, "module_count_max": 30, "categories": {"reunion": 5}, "mutations": {"reverb": 90}}`,
	}
	for format, doc := range docs {
		t.Run(string(format), func(t *testing.T) {
			p, err := config.Parse([]byte(doc), format)
			require.NoError(t, err)
			assert.EqualValues(t, 42, p.Seed)
			assert.Equal(t, 1, p.ModuleCountMin, "unset keys keep defaults")
			assert.Equal(t, 30, p.ModuleCountMax)
			assert.Equal(t, 5, p.CategoryProbability("reunion"))
			assert.Equal(t, 50, p.CategoryProbability("synth"))
			assert.Equal(t, 90, p.MutationProbability("reverb"))
			assert.Equal(t, "42-synth", p.ProjectName())
		})
	}
}

func TestParseValidates(t *testing.T) {
	_, err := config.Parse([]byte("module_count_min: 9\nmodule_count_max: 3\n"), config.FormatYAML)
	assert.ErrorIs(t, err, config.ErrInvalidParams)

	_, err = config.Parse([]byte(`seed = "abc"`), config.FormatTOML)
	assert.Error(t, err)

	_, err = config.Parse([]byte(`bogus = 1`), config.FormatTOML)
	assert.Error(t, err, "unknown keys are rejected")

	_, err = config.Parse(nil, config.Format("ini"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	docs := map[config.Format]string{
		config.FormatYAML: "module_cont_max: 3\n",
		config.FormatTOML: "module_cont_max = 3\n",
		config.FormatJSON: `{"module_cont_max": 3}`,
	}
	for format, doc := range docs {
		t.Run(string(format), func(t *testing.T) {
			_, err := config.Parse([]byte(doc), format)
			require.Error(t, err, "a misspelled key must not fall back to the default")
			assert.Contains(t, err.Error(), "module_cont_max")
		})
	}

	p, err := config.Parse(nil, config.FormatYAML)
	require.NoError(t, err, "an empty YAML document keeps the defaults")
	assert.Equal(t, config.Default().Fingerprint(), p.Fingerprint())
}

func TestTemplatesRoundTrip(t *testing.T) {
	for _, format := range []config.Format{config.FormatYAML, config.FormatTOML, config.FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			tmpl, err := config.Template(format)
			require.NoError(t, err)
			p, err := config.Parse([]byte(tmpl), format)
			require.NoError(t, err)
			assert.Equal(t, config.Default().Fingerprint(), withoutMutations(p).Fingerprint())
		})
	}
}

func withoutMutations(p config.Params) config.Params {
	p = p.Clone()
	p.Mutations = map[string]int{}
	return p
}

func TestWriteTemplateAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kipple.toml")

	require.NoError(t, config.WriteTemplate(path, false))
	assert.Error(t, config.WriteTemplate(path, false), "existing file is kept")
	require.NoError(t, config.WriteTemplate(path, true))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	p, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, p.ModuleCountMax)

	_, err = config.Load(filepath.Join(dir, "kipple.ini"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFingerprint(t *testing.T) {
	a, b := config.Default(), config.Default()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	b.Seed = 1
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestParseFormat(t *testing.T) {
	f, err := config.ParseFormat(".YML")
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, f)
	_, err = config.FormatOf("x.txt")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}
