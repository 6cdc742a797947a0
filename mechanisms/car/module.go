// Package car implements the R-type calcium channel (Cav2.3).
package car

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "car",
		Kind:   registry.Density,
		Ion:    "ca",
		Ranges: map[string]registry.Range{
			"pbar": {Type: cty.Number, Default: cty.Zero, Unit: "cm/s"},
		},
		States: []string{"m", "h"},
	})
}
