// Package gaba implements a GABAergic synapse as a two-state kinetic point process.
package gaba

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "gaba",
		Kind:   registry.Point,
		Ranges: map[string]registry.Range{
			"tau1": {Type: cty.Number, Default: cty.NumberFloatVal(0.5), Unit: "ms"},
			"tau2": {Type: cty.Number, Default: cty.NumberFloatVal(7.5), Unit: "ms"},
			"e":    {Type: cty.Number, Default: cty.NumberFloatVal(-60), Unit: "mV"},
		},
		States: []string{"A", "B"},
	})
}
