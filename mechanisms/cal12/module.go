// Package cal12 implements the L-type calcium channel Cav1.2.
//
// L-type channels write the dedicated cal pool tracked by caldyn rather than
// the generic ca pool.
package cal12

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name:   "cal12",
		Kind:   registry.Density,
		Ion:    "cal",
		Ranges: map[string]registry.Range{
			"pbar": {Type: cty.Number, Default: cty.Zero, Unit: "cm/s"},
		},
		States: []string{"m", "h"},
	})
}
