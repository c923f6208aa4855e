// SPDX-License-Identifier: MIT
// Package: kipple/patch
//
// patch.go - Patch: module table over a core.Graph of connections.
//
// Contract:
//   - New pre-creates the reserved Output sink (OutputID) and the note input (NoteInID).
//   - Module IDs are dense and assigned in creation order.
//   - Connect is directed and idempotent; many sources may feed one destination.
//   - ModuleCount excludes the two reserved modules.

package patch

import (
	"errors"
	"fmt"
	"maps"

	"github.com/katalvlaran/kipple/core"
)

// ModuleID addresses a module within its Patch.
type ModuleID int

// Reserved modules present in every Patch.
const (
	OutputID ModuleID = 0
	NoteInID ModuleID = 1

	// Reserved is the number of pre-created modules.
	Reserved = 2

	// NoteInName is the label of the note input module.
	NoteInName = "note in"
	// OutputName is the label of the output sink.
	OutputName = "output"
)

// Position is a grid placement hint.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Mapping routes a control value into one controller of the connected module.
type Mapping struct {
	Min        int `json:"min" yaml:"min"`
	Max        int `json:"max" yaml:"max"`
	Gain       int `json:"gain" yaml:"gain"`
	Controller int `json:"controller" yaml:"controller"` // target controller index
}

// Module is one instantiated module.
type Module struct {
	ID       ModuleID
	Kind     string
	Name     string
	Layer    int
	Position Position
	Mapping  *Mapping
	Values   map[string]int
}

// Connection is one directed link.
type Connection struct {
	From ModuleID `json:"from" yaml:"from"`
	To   ModuleID `json:"to" yaml:"to"`
}

// ModuleOption sets initial attributes in CreateModule.
type ModuleOption func(*Module)

// WithName sets the module label.
func WithName(name string) ModuleOption {
	return func(m *Module) { m.Name = name }
}

// WithLayer sets the module layer.
func WithLayer(layer int) ModuleOption {
	return func(m *Module) { m.Layer = layer }
}

// WithPosition sets the grid placement.
func WithPosition(x, y int) ModuleOption {
	return func(m *Module) { m.Position = Position{X: x, Y: y} }
}

// WithMapping attaches control mappings (MultiCtl modules).
func WithMapping(mp Mapping) ModuleOption {
	return func(m *Module) {
		cp := mp
		m.Mapping = &cp
	}
}

// WithValue sets an initial controller value; it is validated like Set.
func WithValue(controller string, v int) ModuleOption {
	return func(m *Module) { m.Values[controller] = v }
}

// Patch is the module/connection graph handed back to the host.
type Patch struct {
	name    string
	graph   *core.Graph
	modules []*Module
}

// New returns a Patch holding only the reserved modules.
func New(name string) *Patch {
	p := &Patch{name: name, graph: core.NewGraph()}
	p.mustCreate(KindOutput, WithName(OutputName))
	p.mustCreate(KindMultiSynth, WithName(NoteInName))

	return p
}

// mustCreate is CreateModule for reserved modules; failing means the kind
// catalog itself is broken.
func (p *Patch) mustCreate(kindName string, opts ...ModuleOption) {
	if _, err := p.CreateModule(kindName, opts...); err != nil {
		panic(fmt.Sprintf("patch: reserved module: %v", err))
	}
}

// Name returns the project name.
func (p *Patch) Name() string { return p.name }

// CreateModule instantiates a module of the named kind.
// Initial values passed WithValue must be legal for the kind.
func (p *Patch) CreateModule(kindName string, opts ...ModuleOption) (ModuleID, error) {
	k, ok := LookupKind(kindName)
	if !ok {
		return 0, fmt.Errorf("CreateModule(%q): %w", kindName, ErrUnknownKind)
	}
	id := ModuleID(len(p.modules))
	m := &Module{ID: id, Kind: kindName, Name: kindName, Values: make(map[string]int)}
	for _, opt := range opts {
		opt(m)
	}
	for c, v := range m.Values {
		if err := check(k, c, v); err != nil {
			return 0, fmt.Errorf("CreateModule(%q): %w", kindName, err)
		}
	}
	if err := p.graph.AddVertex(int(id)); err != nil {
		return 0, fmt.Errorf("CreateModule(%q): %w", kindName, err)
	}
	p.modules = append(p.modules, m)

	return id, nil
}

// Connect adds the directed link src → dst. Connecting an existing pair is a no-op.
func (p *Patch) Connect(src, dst ModuleID) error {
	if !p.has(src) {
		return fmt.Errorf("Connect(%d→%d): source: %w", src, dst, ErrModuleNotFound)
	}
	if !p.has(dst) {
		return fmt.Errorf("Connect(%d→%d): target: %w", src, dst, ErrModuleNotFound)
	}
	if src == dst {
		return fmt.Errorf("Connect(%d→%d): %w", src, dst, ErrSelfConnection)
	}
	_, err := p.graph.AddEdge(int(src), int(dst))
	if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return fmt.Errorf("Connect(%d→%d): %w", src, dst, err)
	}

	return nil
}

// Connected reports whether src → dst exists.
func (p *Patch) Connected(src, dst ModuleID) bool {
	return p.graph.HasEdge(int(src), int(dst))
}

// Set stores a controller value after validating it against the kind.
func (p *Patch) Set(id ModuleID, controller string, v int) error {
	m, err := p.module(id)
	if err != nil {
		return err
	}
	k, _ := LookupKind(m.Kind)
	if err = check(k, controller, v); err != nil {
		return fmt.Errorf("Set(%d): %w", id, err)
	}
	m.Values[controller] = v

	return nil
}

// Value returns a stored controller value; ok is false if it was never set.
func (p *Patch) Value(id ModuleID, controller string) (v int, ok bool) {
	m, err := p.module(id)
	if err != nil {
		return 0, false
	}
	v, ok = m.Values[controller]
	return v, ok
}

// Module returns a copy of the module.
func (p *Patch) Module(id ModuleID) (Module, error) {
	m, err := p.module(id)
	if err != nil {
		return Module{}, err
	}
	return copyModule(m), nil
}

// Modules returns copies of all modules in ID order, reserved ones included.
func (p *Patch) Modules() []Module {
	out := make([]Module, len(p.modules))
	for i, m := range p.modules {
		out[i] = copyModule(m)
	}
	return out
}

// Behaviors returns the capability set of the module's kind.
// Unknown IDs yield the empty set.
func (p *Patch) Behaviors(id ModuleID) BehaviorSet {
	m, err := p.module(id)
	if err != nil {
		return 0
	}
	k, _ := LookupKind(m.Kind)
	return k.Behaviors
}

// Controllers returns the module's controller descriptors in definition order.
func (p *Patch) Controllers(id ModuleID) ([]Controller, error) {
	m, err := p.module(id)
	if err != nil {
		return nil, err
	}
	k, _ := LookupKind(m.Kind)
	return append([]Controller(nil), k.Controllers...), nil
}

// Inputs returns the modules feeding id, in connection order.
func (p *Patch) Inputs(id ModuleID) ([]ModuleID, error) {
	ids, err := p.graph.Predecessors(int(id))
	if err != nil {
		return nil, fmt.Errorf("Inputs(%d): %w", id, ErrModuleNotFound)
	}
	return toModuleIDs(ids), nil
}

// Outputs returns the modules fed by id, in connection order.
func (p *Patch) Outputs(id ModuleID) ([]ModuleID, error) {
	ids, err := p.graph.Successors(int(id))
	if err != nil {
		return nil, fmt.Errorf("Outputs(%d): %w", id, ErrModuleNotFound)
	}
	return toModuleIDs(ids), nil
}

// Connections returns every link in connection order.
func (p *Patch) Connections() []Connection {
	edges := p.graph.Edges()
	out := make([]Connection, len(edges))
	for i, e := range edges {
		out[i] = Connection{From: ModuleID(e.From), To: ModuleID(e.To)}
	}
	return out
}

// ModuleCount is the number of modules excluding the reserved ones.
func (p *Patch) ModuleCount() int {
	return len(p.modules) - Reserved
}

func (p *Patch) has(id ModuleID) bool {
	return id >= 0 && int(id) < len(p.modules)
}

func (p *Patch) module(id ModuleID) (*Module, error) {
	if !p.has(id) {
		return nil, fmt.Errorf("module %d: %w", id, ErrModuleNotFound)
	}
	return p.modules[id], nil
}

func check(k Kind, controller string, v int) error {
	c, ok := k.Controller(controller)
	if !ok {
		return fmt.Errorf("%s.%s: %w", k.Name, controller, ErrUnknownController)
	}
	if !c.Type.Contains(v) {
		return fmt.Errorf("%s.%s=%d not in %s: %w", k.Name, controller, v, c.Type, ErrValueOutOfRange)
	}
	return nil
}

func copyModule(m *Module) Module {
	cp := *m
	cp.Values = maps.Clone(m.Values)
	if m.Mapping != nil {
		mp := *m.Mapping
		cp.Mapping = &mp
	}
	return cp
}

func toModuleIDs(ids []int) []ModuleID {
	out := make([]ModuleID, len(ids))
	for i, id := range ids {
		out[i] = ModuleID(id)
	}
	return out
}
