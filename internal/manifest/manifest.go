package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/ext/typeexpr"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/mechload/internal/ctxlog"
	"github.com/vk/mechload/internal/fsutil"
)

// Range is a declared range variable: its type constraint, an optional
// default (cty.NilVal when absent), and a display unit.
type Range struct {
	Name    string
	Type    cty.Type
	Default cty.Value
	Unit    string
}

// Manifest is the parsed, format-agnostic contract of one mechanism.
type Manifest struct {
	Name   string
	Kind   string
	Ion    string
	Ranges map[string]Range
	States []string
	File   string
}

// fileBody is the top-level HCL schema of a manifest file.
type fileBody struct {
	Mechanisms []mechanismBody `hcl:"mechanism,block"`
}

type mechanismBody struct {
	Name   string      `hcl:"name,label"`
	Kind   string      `hcl:"kind"`
	Ion    string      `hcl:"ion,optional"`
	Ranges []rangeBody `hcl:"range,block"`
	States []stateBody `hcl:"state,block"`
}

type rangeBody struct {
	Name    string         `hcl:"name,label"`
	Type    hcl.Expression `hcl:"type"`
	Default cty.Value      `hcl:"default,optional"`
	Unit    string         `hcl:"unit,optional"`
}

type stateBody struct {
	Name string `hcl:"name,label"`
}

// ParseFile reads and decodes a single manifest file.
func ParseFile(path string) ([]Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes manifest source from memory. The filename is used only for
// diagnostics.
func Parse(src []byte, filename string) ([]Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", filename, diags)
	}
	return decode(file, filename)
}

// LoadDir walks a directory tree and loads every .hcl manifest it finds,
// rejecting duplicate mechanism names across files.
func LoadDir(ctx context.Context, dir string) ([]Manifest, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading mechanism manifests...", "path", dir)

	filePaths, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to walk manifest directory %s: %w", dir, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", dir)
		return nil, nil
	}

	seen := make(map[string]string)
	var manifests []Manifest
	for _, filePath := range filePaths {
		parsed, err := ParseFile(filePath)
		if err != nil {
			return nil, err
		}
		for _, m := range parsed {
			if prev, ok := seen[m.Name]; ok {
				return nil, fmt.Errorf("mechanism '%s' declared in both %s and %s", m.Name, prev, m.File)
			}
			seen[m.Name] = m.File
			manifests = append(manifests, m)
		}
	}

	logger.Debug("Manifests loaded.", "count", len(manifests), "files", len(filePaths))
	return manifests, nil
}

func decode(file *hcl.File, path string) ([]Manifest, error) {
	var body fileBody
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	manifests := make([]Manifest, 0, len(body.Mechanisms))
	for _, mech := range body.Mechanisms {
		m, err := decodeMechanism(mech, path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, m)
	}
	return manifests, nil
}

func decodeMechanism(mech mechanismBody, path string) (Manifest, error) {
	if mech.Kind != "density" && mech.Kind != "point" {
		return Manifest{}, fmt.Errorf("mechanism '%s' in %s: kind must be 'density' or 'point', got '%s'", mech.Name, path, mech.Kind)
	}

	m := Manifest{
		Name:   mech.Name,
		Kind:   mech.Kind,
		Ion:    mech.Ion,
		Ranges: make(map[string]Range, len(mech.Ranges)),
		File:   path,
	}

	for _, r := range mech.Ranges {
		if _, exists := m.Ranges[r.Name]; exists {
			return Manifest{}, fmt.Errorf("mechanism '%s' in %s: duplicate range '%s'", mech.Name, path, r.Name)
		}

		ty, diags := typeexpr.TypeConstraint(r.Type)
		if diags.HasErrors() {
			return Manifest{}, fmt.Errorf("mechanism '%s' in %s: invalid type for range '%s': %w", mech.Name, path, r.Name, diags)
		}

		def := r.Default
		if !def.IsNull() {
			converted, err := convert.Convert(def, ty)
			if err != nil {
				return Manifest{}, fmt.Errorf("mechanism '%s' in %s: default for range '%s' does not match its type: %w", mech.Name, path, r.Name, err)
			}
			def = converted
		}

		m.Ranges[r.Name] = Range{Name: r.Name, Type: ty, Default: def, Unit: r.Unit}
	}

	stateSeen := make(map[string]struct{}, len(mech.States))
	for _, s := range mech.States {
		if _, exists := stateSeen[s.Name]; exists {
			return Manifest{}, fmt.Errorf("mechanism '%s' in %s: duplicate state '%s'", mech.Name, path, s.Name)
		}
		stateSeen[s.Name] = struct{}{}
		m.States = append(m.States, s.Name)
	}

	return m, nil
}
