// Package bk implements the large-conductance calcium-activated potassium channel.
package bk

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "bk",
		Kind:   registry.Density,
		Ion:    "k",
		Ranges: map[string]registry.Range{
			"gbar": {Type: cty.Number, Default: cty.Zero, Unit: "S/cm2"},
		},
		States: []string{"o"},
	})
}
