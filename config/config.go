// SPDX-License-Identifier: MIT
// Package: kipple/config
//
// config.go - generation parameters, defaults and validation.

package config

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Parameter bounds.
const (
	MaxSeed            = 1 << 30
	MinModules         = 1
	MaxModules         = 200
	MinBifurcations    = 2
	MaxBifurcations    = 10
	DefaultProbability = 50
)

var (
	// ErrInvalidParams wraps every validation failure.
	ErrInvalidParams = errors.New("config: invalid parameters")

	// ErrUnsupportedFormat indicates a file extension or format name that is not yaml, toml or json.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
)

// Categories lists the mutation category names in draw order. It is the one
// list of names: validation and evolve.Category both read it.
var Categories = []string{"synth", "effect", "bifurcation", "termination", "reunion"}

// Params is everything a generation run consumes.
//
// Probabilities are percentages in [0, 100]. A category or mutation missing
// from its map uses DefaultProbability.
type Params struct {
	Name            string         `yaml:"name" toml:"name" json:"name"`
	Seed            int64          `yaml:"seed" toml:"seed" json:"seed" validate:"gte=0,lte=1073741824"`
	ModuleCountMin  int            `yaml:"module_count_min" toml:"module_count_min" json:"module_count_min" validate:"gte=1,lte=200"`
	ModuleCountMax  int            `yaml:"module_count_max" toml:"module_count_max" json:"module_count_max" validate:"gte=1,lte=200,gtefield=ModuleCountMin"`
	MaxBifurcations int            `yaml:"max_bifurcations" toml:"max_bifurcations" json:"max_bifurcations" validate:"gte=2,lte=10"`
	Categories      map[string]int `yaml:"categories" toml:"categories" json:"categories" validate:"dive,keys,category,endkeys,gte=0,lte=100"`
	Mutations       map[string]int `yaml:"mutations" toml:"mutations" json:"mutations" validate:"dive,keys,required,endkeys,gte=0,lte=100"`
}

// Default returns the stock parameters: seed 0, 1..20 modules, fan-out up to
// 4 and every category at DefaultProbability.
func Default() Params {
	cats := make(map[string]int, len(Categories))
	for _, c := range Categories {
		cats[c] = DefaultProbability
	}
	return Params{
		Seed:            0,
		ModuleCountMin:  1,
		ModuleCountMax:  20,
		MaxBifurcations: 4,
		Categories:      cats,
		Mutations:       map[string]int{},
	}
}

// ProjectName returns Name, or "<seed>-synth" when Name is blank.
func (p Params) ProjectName() string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return fmt.Sprintf("%d-synth", p.Seed)
}

// CategoryProbability returns the gate for category c.
func (p Params) CategoryProbability(c string) int {
	if v, ok := p.Categories[c]; ok {
		return v
	}
	return DefaultProbability
}

// MutationProbability returns the gate for the named mutation.
func (p Params) MutationProbability(name string) int {
	if v, ok := p.Mutations[name]; ok {
		return v
	}
	return DefaultProbability
}

// Clone returns a deep copy.
func (p Params) Clone() Params {
	cp := p
	cp.Categories = make(map[string]int, len(p.Categories))
	for k, v := range p.Categories {
		cp.Categories[k] = v
	}
	cp.Mutations = make(map[string]int, len(p.Mutations))
	for k, v := range p.Mutations {
		cp.Mutations[k] = v
	}
	return cp
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(Categories, fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("config: register category validation: %v", err))
	}
	return v
}

// Validate rejects out-of-range or inconsistent parameters. Nothing is clamped.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("%w: %s", ErrInvalidParams, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gtefield":
		return fmt.Sprintf("%s (%v) must be >= %s", fe.Namespace(), fe.Value(), fe.Param())
	case "category":
		return fmt.Sprintf("%s: unknown category %v", fe.Namespace(), fe.Value())
	case "":
		return fe.Error()
	default:
		return fmt.Sprintf("%s=%v violates %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
	}
}

// Fingerprint is a stable hex digest of the parameters. encoding/json sorts
// map keys, so equal Params always hash equally.
func (p Params) Fingerprint() string {
	raw, _ := json.Marshal(p)
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])
}
