// Package vecevent implements VecStim, an artificial spike source that replays
// event times from a vector. It has no membrane mechanism of its own; it exists
// so network stimulation can be scripted.
package vecevent

import (
	"github.com/vk/mechload/internal/registry"
)

// Module implements the registry.Mechanism interface for this package.
type Module struct{}

// Register adds the mechanism to the engine's table.
func (m *Module) Register(r *registry.Registry) error {
	return r.RegisterMechanism(&registry.Spec{
		Name: "vecevent",
		Kind: registry.Point,
	})
}
