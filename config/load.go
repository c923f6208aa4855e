// SPDX-License-Identifier: MIT
// Package: kipple/config
//
// load.go - file loading with default overlay.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a supported file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%q: %w", raw, ErrUnsupportedFormat)
	}
}

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// fileParams marks which keys a YAML or JSON document actually set.
type fileParams struct {
	Name            *string        `yaml:"name" json:"name"`
	Seed            *int64         `yaml:"seed" json:"seed"`
	ModuleCountMin  *int           `yaml:"module_count_min" json:"module_count_min"`
	ModuleCountMax  *int           `yaml:"module_count_max" json:"module_count_max"`
	MaxBifurcations *int           `yaml:"max_bifurcations" json:"max_bifurcations"`
	Categories      map[string]int `yaml:"categories" json:"categories"`
	Mutations       map[string]int `yaml:"mutations" json:"mutations"`
}

// Load reads path, overlays it on Default() and validates the result.
func Load(path string) (Params, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Params{}, fmt.Errorf("load config: %w", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("load config: %w", err)
	}
	p, err := Parse(raw, format)
	if err != nil {
		return Params{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes raw in the given format over Default() and validates the result.
func Parse(raw []byte, format Format) (Params, error) {
	p := Default()
	var err error
	switch format {
	case FormatTOML:
		err = overlayTOML(&p, raw)
	case FormatYAML:
		var fp fileParams
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err = dec.Decode(&fp); errors.Is(err, io.EOF) {
			err = nil // empty document keeps the defaults
		}
		if err == nil {
			fp.apply(&p)
		}
	case FormatJSON:
		var fp fileParams
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&fp); err == nil {
			fp.apply(&p)
		}
	default:
		return Params{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return Params{}, fmt.Errorf("decode %s: %w", format, err)
	}
	if err = p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

func (fp fileParams) apply(p *Params) {
	if fp.Name != nil {
		p.Name = strings.TrimSpace(*fp.Name)
	}
	if fp.Seed != nil {
		p.Seed = *fp.Seed
	}
	if fp.ModuleCountMin != nil {
		p.ModuleCountMin = *fp.ModuleCountMin
	}
	if fp.ModuleCountMax != nil {
		p.ModuleCountMax = *fp.ModuleCountMax
	}
	if fp.MaxBifurcations != nil {
		p.MaxBifurcations = *fp.MaxBifurcations
	}
	for k, v := range fp.Categories {
		p.Categories[k] = v
	}
	for k, v := range fp.Mutations {
		p.Mutations[k] = v
	}
}

func overlayTOML(p *Params, raw []byte) error {
	var file Params
	meta, err := toml.Decode(string(raw), &file)
	if err != nil {
		return err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v", undecoded)
	}

	if meta.IsDefined("name") {
		p.Name = strings.TrimSpace(file.Name)
	}
	if meta.IsDefined("seed") {
		p.Seed = file.Seed
	}
	if meta.IsDefined("module_count_min") {
		p.ModuleCountMin = file.ModuleCountMin
	}
	if meta.IsDefined("module_count_max") {
		p.ModuleCountMax = file.ModuleCountMax
	}
	if meta.IsDefined("max_bifurcations") {
		p.MaxBifurcations = file.MaxBifurcations
	}
	for k, v := range file.Categories {
		p.Categories[k] = v
	}
	for k, v := range file.Mutations {
		p.Mutations[k] = v
	}
	return nil
}
