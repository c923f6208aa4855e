// Package kipple grows modular-synthesizer patches from a single seed.
//
// 🎛 What does it build?
//
//	Starting from one note input, kipple stochastically adds synthesizers and
//	effects, splits the signal into branches, merges branches back together,
//	closes feedback loops and finally wires up to 64 labeled knobs to a random
//	selection of module controllers. The same parameters always give the same
//	patch, module for module and value for value.
//
// ✨ How is it organized?
//
//	rng/        one master seed, independent never-reseeded streams
//	naming/     grammar-driven unique names for knobs and groups
//	core/       thread-safe directed connection graph
//	dfs/        topological order and feedback-cycle detection
//	bfs/        hop depth from the note input
//	patch/      module kinds, capabilities, controllers, Create/Connect
//	config/     parameters: defaults, YAML/TOML/JSON files, validation
//	evolve/     tracks, mutation registry and the growth loop
//	surface/    the 8×8 control surface
//	logging/    zerolog setup with environment overrides
//	metrics/    prometheus instruments for growth runs
//	cmd/kipple  the command-line front end
//
// Quick start:
//
//	params := config.Default()
//	params.Seed = 42
//	g, err := evolve.New(params)
//	if err != nil {
//		return err
//	}
//	res, err := g.Run()
//	// res.Patch holds modules and connections, res.Surface the knobs.
//
// Or from a shell:
//
//	go run ./cmd/kipple generate --seed 42
package kipple
