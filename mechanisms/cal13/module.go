// Package cal13 implements the L-type calcium channel Cav1.3.
package cal13

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "cal13",
		Kind:   registry.Density,
		Ion:    "cal",
		Ranges: map[string]registry.Range{
			"pbar": {Type: cty.Number, Default: cty.Zero, Unit: "cm/s"},
		},
		States: []string{"m", "h"},
	})
}
