// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// kinds.go - catalog of module kinds the adapter can instantiate.
//
// Controller lists mirror the host's modules closely enough for generation:
// names, value types and order. Defaults are not modelled; a controller that
// was never Set has no stored value.

package patch

import "sort"

// Module kind names.
const (
	KindOutput          = "Output"
	KindMultiSynth      = "MultiSynth"
	KindAnalogGenerator = "AnalogGenerator"
	KindDrumSynth       = "DrumSynth"
	KindFM              = "FM"
	KindGenerator       = "Generator"
	KindKicker          = "Kicker"
	KindSampler         = "Sampler"
	KindSpectraVoice    = "SpectraVoice"
	KindGlide           = "Glide"
	KindAmplifier       = "Amplifier"
	KindCompressor      = "Compressor"
	KindDcBlocker       = "DcBlocker"
	KindDelay           = "Delay"
	KindDistortion      = "Distortion"
	KindEcho            = "Echo"
	KindEq              = "Eq"
	KindFilter          = "Filter"
	KindFilterPro       = "FilterPro"
	KindLfo             = "Lfo"
	KindLoop            = "Loop"
	KindPitchShifter    = "PitchShifter"
	KindReverb          = "Reverb"
	KindVibrato         = "Vibrato"
	KindVocalFilter     = "VocalFilter"
	KindWaveShaper      = "WaveShaper"
	KindFeedback        = "Feedback"
	KindModulator       = "Modulator"
	KindMultiCtl        = "MultiCtl"
)

// Kind is a module type: its capabilities and ordered controllers.
type Kind struct {
	Name        string
	Behaviors   BehaviorSet
	Controllers []Controller
}

// Controller looks up a controller by name.
func (k Kind) Controller(name string) (Controller, bool) {
	for _, c := range k.Controllers {
		if c.Name == name {
			return c, true
		}
	}
	return Controller{}, false
}

type ctl struct {
	name string
	t    ValueType
}

func kind(name string, behaviors BehaviorSet, ctls ...ctl) Kind {
	k := Kind{Name: name, Behaviors: behaviors, Controllers: make([]Controller, len(ctls))}
	for i, c := range ctls {
		k.Controllers[i] = Controller{Name: c.name, Index: i, Type: c.t}
	}
	return k
}

var (
	synth  = Behaviors(SendsAudio, ReceivesNotes)
	effect = Behaviors(SendsAudio, ReceivesAudio)
	notes  = Behaviors(SendsNotes, ReceivesNotes)

	synthModes  = Enum("hq", "hq_mono", "lq", "lq_mono")
	channels    = Enum("stereo", "mono")
	waveforms   = Enum("triangle", "saw", "square", "noise", "dirty", "sin", "half_sin", "abs_sin", "pulse")
	lfoWaves    = Enum("sin", "saw", "saw2", "square", "random")
	timeUnits   = Enum("sec/16384", "ms", "hz", "tick", "line", "line/2", "line/3")
	rolloffs    = Enum("12db", "24db", "36db", "48db")
	filterTypes = Enum("off", "lp_12db", "hp_12db", "bp_12db", "br_12db", "lp_24db", "hp_24db", "bp_24db", "br_24db")
)

var catalog = buildCatalog()

func buildCatalog() map[string]Kind {
	kinds := []Kind{
		kind(KindOutput, Behaviors(ReceivesAudio)),
		kind(KindMultiSynth, notes,
			ctl{"transpose", Range(0, 256)},
			ctl{"random_pitch", Range(0, 4096)},
			ctl{"velocity", Range(0, 256)},
			ctl{"finetune", Range(0, 512)},
			ctl{"random_phase", Range(0, 32768)},
			ctl{"random_velocity", Range(0, 32768)},
			ctl{"phase", Range(0, 32768)},
			ctl{"curve2_influence", Range(0, 256)},
		),
		kind(KindAnalogGenerator, synth,
			ctl{"volume", Range(0, 256)},
			ctl{"waveform", waveforms},
			ctl{"panning", Range(0, 256)},
			ctl{"attack", Range(0, 512)},
			ctl{"release", Range(0, 512)},
			ctl{"sustain", Bool()},
			ctl{"exponential_envelope", Bool()},
			ctl{"duty_cycle", Range(0, 1022)},
			ctl{"freq2", Range(0, 2000)},
			ctl{"filter", filterTypes},
			ctl{"f_freq_hz", Range(0, 22000)},
			ctl{"f_resonance", Range(0, 1530)},
			ctl{"polyphony", Range(1, 32)},
			ctl{"mode", synthModes},
			ctl{"noise", Range(0, 256)},
		),
		kind(KindDrumSynth, synth,
			ctl{"volume", Range(0, 512)},
			ctl{"panning", Range(0, 256)},
			ctl{"polyphony", Range(1, 8)},
			ctl{"bass_volume", Range(0, 512)},
			ctl{"bass_power", Range(0, 256)},
			ctl{"bass_tone", Range(0, 256)},
			ctl{"bass_length", Range(0, 256)},
			ctl{"hihat_volume", Range(0, 512)},
			ctl{"hihat_length", Range(0, 256)},
			ctl{"snare_volume", Range(0, 512)},
			ctl{"snare_tone", Range(0, 256)},
			ctl{"snare_length", Range(0, 256)},
		),
		kind(KindFM, synth,
			ctl{"volume", Range(0, 256)},
			ctl{"panning", Range(0, 256)},
			ctl{"carrier_volume", Range(0, 256)},
			ctl{"modulator_volume", Range(0, 256)},
			ctl{"carrier_frequency_multiplier", Range(0, 16)},
			ctl{"modulator_frequency_multiplier", Range(0, 16)},
			ctl{"modulator_feedback", Range(0, 256)},
			ctl{"polyphony", Range(1, 16)},
			ctl{"mode", synthModes},
		),
		kind(KindGenerator, synth,
			ctl{"volume", Range(0, 256)},
			ctl{"waveform", waveforms},
			ctl{"panning", Range(0, 256)},
			ctl{"attack", Range(0, 512)},
			ctl{"release", Range(0, 512)},
			ctl{"polyphony", Range(1, 32)},
			ctl{"mode", synthModes},
			ctl{"sustain", Bool()},
			ctl{"freq_modulation_input", Range(0, 256)},
			ctl{"duty_cycle", Range(0, 1022)},
		),
		kind(KindKicker, synth,
			ctl{"volume", Range(0, 256)},
			ctl{"waveform", Enum("triangle", "square", "sin")},
			ctl{"panning", Range(0, 256)},
			ctl{"attack", Range(0, 512)},
			ctl{"release", Range(0, 512)},
			ctl{"boost", Range(0, 1024)},
			ctl{"acceleration", Range(0, 1024)},
			ctl{"polyphony", Range(1, 4)},
			ctl{"anticlick", Bool()},
		),
		kind(KindSampler, synth,
			ctl{"volume", Range(0, 512)},
			ctl{"panning", Range(0, 256)},
			ctl{"sample_interpolation", Enum("off", "linear", "spline")},
			ctl{"envelope_interpolation", Enum("off", "linear")},
			ctl{"polyphony", Range(1, 32)},
			ctl{"rec_threshold", Range(0, 10000)},
		),
		kind(KindSpectraVoice, synth,
			ctl{"volume", Range(0, 256)},
			ctl{"panning", Range(0, 256)},
			ctl{"polyphony", Range(1, 32)},
			ctl{"mode", Enum("hq", "hq_mono", "lq", "lq_mono", "hq_spline")},
			ctl{"sustain", Bool()},
			ctl{"spectrum_resolution", Range(0, 5)},
			ctl{"harmonic", Range(0, 15)},
			ctl{"h_freq_hz", Range(0, 22050)},
			ctl{"h_volume", Range(0, 255)},
			ctl{"h_width", Range(0, 255)},
			ctl{"h_type", Enum("hsin", "rect", "org1", "org2", "org3", "org4", "sin", "random",
				"triangle1", "triangle2", "overtones1", "overtones2", "overtones3", "overtones4")},
		),
		kind(KindGlide, notes,
			ctl{"response", Range(0, 1000)},
			ctl{"sample_rate_hz", Range(1, 32768)},
			ctl{"reset_on_first_note", Bool()},
			ctl{"polyphony", Bool()},
			ctl{"pitch", Range(-600, 600)},
			ctl{"pitch_scale", Range(0, 200)},
		),
		kind(KindAmplifier, effect,
			ctl{"volume", Range(0, 1024)},
			ctl{"panning", Range(0, 256)},
			ctl{"dc_offset", Range(0, 256)},
			ctl{"inverse", Bool()},
			ctl{"stereo_width", Range(0, 256)},
			ctl{"absolute", Bool()},
			ctl{"fine_volume", Range(0, 32768)},
			ctl{"gain", Range(0, 5000)},
		),
		kind(KindCompressor, effect,
			ctl{"volume", Range(0, 512)},
			ctl{"threshold", Range(0, 512)},
			ctl{"slope_pct", Range(0, 200)},
			ctl{"attack_ms", Range(0, 500)},
			ctl{"release_ms", Range(1, 1000)},
			ctl{"channels", channels},
			ctl{"mode", Enum("peak", "rms", "peak_zero_latency")},
			ctl{"sidechain_input", Range(0, 32)},
		),
		kind(KindDcBlocker, effect,
			ctl{"channels", channels},
		),
		kind(KindDelay, effect,
			ctl{"dry", Range(0, 512)},
			ctl{"wet", Range(0, 512)},
			ctl{"delay_l", Range(0, 256)},
			ctl{"delay_r", Range(0, 256)},
			ctl{"volume_l", Range(0, 256)},
			ctl{"volume_r", Range(0, 256)},
			ctl{"channels", channels},
			ctl{"inverse", Bool()},
			ctl{"delay_units", timeUnits},
		),
		kind(KindDistortion, effect,
			ctl{"volume", Range(0, 256)},
			ctl{"type", Enum("lim", "sat", "sat2", "sin", "sin2", "linear")},
			ctl{"power", Range(0, 256)},
			ctl{"bit_depth", Range(1, 16)},
			ctl{"freq_hz", Range(0, 44100)},
			ctl{"noise", Range(0, 256)},
		),
		kind(KindEcho, effect,
			ctl{"dry", Range(0, 256)},
			ctl{"wet", Range(0, 256)},
			ctl{"feedback", Range(0, 256)},
			ctl{"delay", Range(0, 256)},
			ctl{"channels", channels},
			ctl{"delay_units", timeUnits},
			ctl{"filter", Enum("off", "lp_12db", "hp_12db")},
			ctl{"filter_freq_hz", Range(100, 22000)},
		),
		kind(KindEq, effect,
			ctl{"low", Range(0, 512)},
			ctl{"middle", Range(0, 512)},
			ctl{"high", Range(0, 512)},
			ctl{"channels", channels},
		),
		kind(KindFilter, effect,
			ctl{"volume", Range(0, 256)},
			ctl{"freq_hz", Range(0, 14000)},
			ctl{"resonance", Range(0, 1530)},
			ctl{"type", Enum("lp", "hp", "bp", "notch")},
			ctl{"response", Range(0, 256)},
			ctl{"mode", synthModes},
			ctl{"impulse", Range(0, 14000)},
			ctl{"mix", Range(0, 256)},
			ctl{"lfo_freq", Range(0, 1024)},
			ctl{"lfo_amp", Range(0, 256)},
			ctl{"set_lfo_phase", Range(0, 256)},
			ctl{"exponential_freq", Bool()},
			ctl{"rolloff", rolloffs},
			ctl{"lfo_waveform", lfoWaves},
		),
		kind(KindFilterPro, effect,
			ctl{"volume", Range(0, 32768)},
			ctl{"type", Enum("lp", "hp", "bp_const_skirt_gain", "bp_const_peak_gain", "notch", "all_pass",
				"peaking", "low_shelf", "high_shelf", "lp_6db", "hp_6db")},
			ctl{"freq_hz", Range(0, 22000)},
			ctl{"freq_finetune", Range(0, 2000)},
			ctl{"freq_scale", Range(0, 200)},
			ctl{"exponential_freq", Bool()},
			ctl{"q", Range(0, 32768)},
			ctl{"gain", Range(0, 32768)},
			ctl{"rolloff", rolloffs},
			ctl{"response", Range(0, 1000)},
			ctl{"mode", channels},
			ctl{"mix", Range(0, 32768)},
			ctl{"lfo_freq", Range(0, 1024)},
			ctl{"lfo_amp", Range(0, 32768)},
			ctl{"lfo_waveform", lfoWaves},
		),
		kind(KindLfo, effect,
			ctl{"volume", Range(0, 512)},
			ctl{"type", Enum("amplitude", "panning")},
			ctl{"amplitude", Range(0, 256)},
			ctl{"freq", Range(0, 2048)},
			ctl{"waveform", Enum("sin", "square", "sin2", "saw", "saw2", "random", "triangle", "random_interpolated")},
			ctl{"set_phase", Range(0, 256)},
			ctl{"channels", channels},
			ctl{"frequency_unit", timeUnits},
			ctl{"duty_cycle", Range(0, 256)},
			ctl{"generator", Bool()},
		),
		kind(KindLoop, effect,
			ctl{"volume", Range(0, 256)},
			ctl{"delay", Range(0, 256)},
			ctl{"channels", channels},
			ctl{"repeats", Range(0, 64)},
			ctl{"mode", Enum("normal", "ping_pong")},
		),
		kind(KindPitchShifter, effect,
			ctl{"volume", Range(0, 512)},
			ctl{"pitch", Range(-600, 600)},
			ctl{"pitch_scale", Range(0, 200)},
			ctl{"feedback", Range(0, 256)},
			ctl{"grain_size", Range(0, 256)},
			ctl{"mode", synthModes},
		),
		kind(KindReverb, effect,
			ctl{"dry", Range(0, 256)},
			ctl{"wet", Range(0, 256)},
			ctl{"feedback", Range(0, 256)},
			ctl{"damp", Range(0, 256)},
			ctl{"stereo_width", Range(0, 256)},
			ctl{"freeze", Bool()},
			ctl{"mode", synthModes},
			ctl{"all_pass_filter", Bool()},
			ctl{"room_size", Range(0, 128)},
			ctl{"random_seed", Range(0, 32768)},
		),
		kind(KindVibrato, effect,
			ctl{"volume", Range(0, 256)},
			ctl{"amplitude", Range(0, 256)},
			ctl{"freq", Range(1, 2048)},
			ctl{"channels", channels},
			ctl{"set_phase", Range(0, 256)},
			ctl{"frequency_unit", timeUnits},
			ctl{"exponential_amplitude", Bool()},
		),
		kind(KindVocalFilter, effect,
			ctl{"volume", Range(0, 512)},
			ctl{"bandwidth", Range(0, 256)},
			ctl{"amp_add", Range(0, 256)},
			ctl{"formants", Range(1, 5)},
			ctl{"vowel", Range(0, 256)},
			ctl{"voice_type", Enum("soprano", "alto", "tenor", "bass")},
			ctl{"channels", channels},
		),
		kind(KindWaveShaper, effect,
			ctl{"input_volume", Range(0, 512)},
			ctl{"mix", Range(0, 256)},
			ctl{"output_volume", Range(0, 512)},
			ctl{"symmetric", Bool()},
			ctl{"mode", synthModes},
			ctl{"dc_blocker", Bool()},
		),
		kind(KindFeedback, effect,
			ctl{"volume", Range(0, 10000)},
			ctl{"channels", channels},
		),
		kind(KindModulator, effect,
			ctl{"volume", Range(0, 512)},
			ctl{"modulation_type", Enum("amplitude", "phase", "phase_abs", "frequency")},
			ctl{"channels", channels},
			ctl{"max_phase_modulation_delay", Range(0, 32768)},
			ctl{"max_frequency_modulation_delay", Range(0, 32768)},
		),
		kind(KindMultiCtl, Behaviors(SendsControls),
			ctl{"value", Range(0, 32768)},
			ctl{"gain", Range(0, 1024)},
			ctl{"quantization", Range(0, 32768)},
			ctl{"out_offset", Range(-16384, 16384)},
			ctl{"response", Range(0, 1000)},
			ctl{"sample_rate_hz", Range(1, 32768)},
		),
	}

	out := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		out[k.Name] = k
	}
	return out
}

// LookupKind returns the catalog entry for name.
func LookupKind(name string) (Kind, bool) {
	k, ok := catalog[name]
	return k, ok
}

// KindNames lists every known kind, sorted.
func KindNames() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
