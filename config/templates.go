// SPDX-License-Identifier: MIT
// Package: kipple/config
//
// templates.go - starter configuration files.

package config

import (
	"fmt"
	"os"
)

// Template returns a commented starter file holding the default parameters.
func Template(format Format) (string, error) {
	switch format {
	case FormatTOML:
		return tomlTemplate, nil
	case FormatYAML:
		return yamlTemplate, nil
	case FormatJSON:
		return jsonTemplate, nil
	default:
		return "", fmt.Errorf("template %q: %w", format, ErrUnsupportedFormat)
	}
}

// WriteTemplate writes the template matching path's extension.
// An existing file is kept unless overwrite is set.
func WriteTemplate(path string, overwrite bool) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	template, err := Template(format)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `# kipple generation parameters
name = ""             # blank: "<seed>-synth"
seed = 0              # 0 .. 1073741824
module_count_min = 1  # 1 .. 200
module_count_max = 20 # 1 .. 200, >= module_count_min
max_bifurcations = 4  # 2 .. 10

# category gates, 0 .. 100
[categories]
synth = 50
effect = 50
bifurcation = 50
termination = 50
reunion = 50

# per-mutation gates, 0 .. 100; omitted mutations use 50
[mutations]
analog_gen = 50
drumsynth = 50
fm = 50
generator = 50
kicker = 50
sampler = 50
spectravoice = 50
glide = 50
multisynth = 50
amplifier = 50
compressor = 50
dc_blocker = 50
delay = 50
distortion = 50
echo = 50
eq = 50
filter = 50
filter_pro = 50
lfo = 50
loop = 50
pitch_shifter = 50
reverb = 50
vibrato = 50
vocal_filter = 50
waveshaper = 50
feedback = 50
bifurcate = 50
terminate = 50
reunion_amp = 50
modulator = 50
`

const yamlTemplate = `# kipple generation parameters
name: ""             # blank: "<seed>-synth"
seed: 0              # 0 .. 1073741824
module_count_min: 1  # 1 .. 200
module_count_max: 20 # 1 .. 200, >= module_count_min
max_bifurcations: 4  # 2 .. 10

# category gates, 0 .. 100
categories:
  synth: 50
  effect: 50
  bifurcation: 50
  termination: 50
  reunion: 50

# per-mutation gates, 0 .. 100; omitted mutations use 50
mutations:
  analog_gen: 50
  drumsynth: 50
  fm: 50
  generator: 50
  kicker: 50
  sampler: 50
  spectravoice: 50
  glide: 50
  multisynth: 50
  amplifier: 50
  compressor: 50
  dc_blocker: 50
  delay: 50
  distortion: 50
  echo: 50
  eq: 50
  filter: 50
  filter_pro: 50
  lfo: 50
  loop: 50
  pitch_shifter: 50
  reverb: 50
  vibrato: 50
  vocal_filter: 50
  waveshaper: 50
  feedback: 50
  bifurcate: 50
  terminate: 50
  reunion_amp: 50
  modulator: 50
`

const jsonTemplate = `{
  "name": "",
  "seed": 0,
  "module_count_min": 1,
  "module_count_max": 20,
  "max_bifurcations": 4,
  "categories": {
    "synth": 50,
    "effect": 50,
    "bifurcation": 50,
    "termination": 50,
    "reunion": 50
  },
  "mutations": {}
}
`
