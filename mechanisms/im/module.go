// Package im implements the muscarinic M-type potassium current (Kv7/KCNQ).
package im

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "Im",
		Kind:   registry.Density,
		Ion:    "k",
		Ranges: map[string]registry.Range{
			"gbar": {Type: cty.Number, Default: cty.Zero, Unit: "S/cm2"},
		},
		States: []string{"m"},
	})
}
