package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/ctxlog"
	"github.com/vk/mechload/internal/manifest"
)

// Validate performs a strict parity check between the public manifests and
// the registered Go specs. It checks both the presence of range variables and
// the compatibility of their types, and collects every problem rather than
// stopping at the first.
func (r *Registry) Validate(ctx context.Context, manifests []manifest.Manifest) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, m := range manifests {
		spec, ok := r.specs[m.Name]
		if !ok {
			errs = append(errs, fmt.Sprintf("mechanism '%s': declared in %s but not compiled into this binary", m.Name, m.File))
			continue
		}

		if string(spec.Kind) != m.Kind {
			errs = append(errs, fmt.Sprintf("mechanism '%s': manifest declares kind '%s' but Go spec registers '%s'", m.Name, m.Kind, spec.Kind))
		}
		if spec.Ion != m.Ion {
			errs = append(errs, fmt.Sprintf("mechanism '%s': manifest declares ion '%s' but Go spec registers '%s'", m.Name, m.Ion, spec.Ion))
		}

		// Presence check, both directions.
		for name := range spec.Ranges {
			if _, ok := m.Ranges[name]; !ok {
				errs = append(errs, fmt.Sprintf("mechanism '%s': Go spec has range '%s' which is not declared in manifest", m.Name, name))
			}
		}
		for name, mr := range m.Ranges {
			sr, ok := spec.Ranges[name]
			if !ok {
				errs = append(errs, fmt.Sprintf("mechanism '%s': manifest declares range '%s' which is not found in Go spec", m.Name, name))
				continue
			}

			if mr.Type.Equals(cty.DynamicPseudoType) {
				logger.Warn("Manifest range uses 'type = any', which disables static type checking. Consider a specific type like 'number', 'string', or 'bool'.", "mechanism", m.Name, "range", name)
				continue
			}
			if !mr.Type.Equals(sr.Type) {
				errs = append(errs, fmt.Sprintf("mechanism '%s', range '%s': type mismatch. Manifest requires '%s' but Go spec provides '%s'",
					m.Name, name, mr.Type.FriendlyName(), sr.Type.FriendlyName()))
			}
		}

		// State variables are an ordered part of the contract.
		if got, want := strings.Join(spec.States, ","), strings.Join(m.States, ","); got != want {
			errs = append(errs, fmt.Sprintf("mechanism '%s': state variables differ. Manifest declares [%s] but Go spec registers [%s]", m.Name, want, got))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("mechanism table validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
