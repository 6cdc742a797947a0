package registry

import (
	"fmt"
	"log/slog"

	"github.com/zclconf/go-cty/cty"
)

// Mechanism is the interface every compiled-in mechanism package implements
// to be registered into the mechanism table.
type Mechanism interface {
	Register(r *Registry) error
}

// Kind classifies how a mechanism attaches to the model.
type Kind string

const (
	// Density mechanisms are distributed over a membrane area (ion
	// channels, ion accumulation models).
	Density Kind = "density"
	// Point mechanisms exist at a discrete location (synapses, artificial
	// spike sources).
	Point Kind = "point"
)

// Valid reports whether k is a known mechanism kind.
func (k Kind) Valid() bool {
	return k == Density || k == Point
}

// Range describes a single range variable exposed by a mechanism.
type Range struct {
	Type    cty.Type
	Default cty.Value
	Unit    string
}

// Spec is the record a mechanism registers into the table: its engine name,
// kind, the ion it reads or writes, and its range and state variables.
type Spec struct {
	Name   string
	Kind   Kind
	Ion    string
	Ranges map[string]Range
	States []string
}

// Registry holds the mechanism table for a single process. It is populated
// once during startup and read-only afterwards; no locking is needed.
type Registry struct {
	specs map[string]*Spec
	order []string
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		specs: make(map[string]*Spec),
	}
}

// RegisterMechanism adds a mechanism spec to the table. A duplicate or empty
// name is rejected; the caller is expected to treat that as fatal.
func (r *Registry) RegisterMechanism(spec *Spec) error {
	if spec == nil || spec.Name == "" {
		return fmt.Errorf("mechanism spec must have a name")
	}
	if !spec.Kind.Valid() {
		return fmt.Errorf("mechanism '%s' has unknown kind '%s'", spec.Name, spec.Kind)
	}
	if _, exists := r.specs[spec.Name]; exists {
		return fmt.Errorf("mechanism with name '%s' already registered", spec.Name)
	}
	slog.Debug("Registering mechanism.", "name", spec.Name, "kind", spec.Kind)
	r.specs[spec.Name] = spec
	r.order = append(r.order, spec.Name)
	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (*Spec, bool) {
	spec, ok := r.specs[name]
	return spec, ok
}

// Names returns all registered mechanism names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered mechanisms.
func (r *Registry) Len() int {
	return len(r.order)
}
