// Package glutamate implements a combined AMPA/NMDA glutamatergic synapse
// point process. The NMDA component carries its own kinetic state pair and is
// scaled relative to AMPA by the ratio range variable.
package glutamate

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "glutamate",
		Kind:   registry.Point,
		Ranges: map[string]registry.Range{
			"tau1_ampa": {Type: cty.Number, Default: cty.NumberFloatVal(1.9), Unit: "ms"},
			"tau2_ampa": {Type: cty.Number, Default: cty.NumberFloatVal(4.8), Unit: "ms"},
			"tau1_nmda": {Type: cty.Number, Default: cty.NumberFloatVal(5.52), Unit: "ms"},
			"tau2_nmda": {Type: cty.Number, Default: cty.NumberFloatVal(231), Unit: "ms"},
			"e":         {Type: cty.Number, Default: cty.Zero, Unit: "mV"},
			"ratio":     {Type: cty.Number, Default: cty.NumberFloatVal(1), Unit: "1"},
		},
		States: []string{"A", "B", "C", "D"},
	})
}
