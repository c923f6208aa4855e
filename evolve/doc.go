// SPDX-License-Identifier: MIT

// Package evolve grows a patch from a single note input by applying random
// mutations to a set of tracks.
//
// A Track is a lane of modules hanging off the note input. Its tail decides
// which mutation categories it can take:
//
//	synth        add a sound source after a note-sending tail
//	effect       add a processor after an audio-sending tail
//	bifurcation  spawn child tracks that continue from the current tail
//	termination  finish the track
//	reunion      merge another open track into this one
//
// A Generator owns validated config.Params and a Registry binding every
// catalog mutation to its probability. Each Run re-derives all random streams
// from the seed, grows the patch to a drawn module count, connects every
// audio tail to the output sink and wires a control surface over the result:
//
//	g, err := evolve.New(params, evolve.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	res, err := g.Run()
//
// Each Run is single-threaded and synchronous.
package evolve
