// Package caldyn implements submembrane calcium dynamics for the L-type cal pool.
package caldyn

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "caldyn",
		Kind:   registry.Density,
		Ion:    "cal",
		Ranges: map[string]registry.Range{
			"drive": {Type: cty.Number, Default: cty.NumberFloatVal(10000), Unit: "1"},
			"depth": {Type: cty.Number, Default: cty.NumberFloatVal(0.2), Unit: "um"},
			"taur":  {Type: cty.Number, Default: cty.NumberFloatVal(43), Unit: "ms"},
			"cainf": {Type: cty.Number, Default: cty.NumberFloatVal(1e-4), Unit: "mM"},
		},
	})
}
