package registrar

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/mechload/internal/ctxlog"
	"github.com/vk/mechload/internal/registry"
)

// Banner is the first line of the startup announcement. Downstream tooling
// greps startup logs for it, so the text is a stable contract.
const Banner = "Additional mechanisms from files"

// Descriptor pairs a mechanism's display name with its registration entry
// point. The ordered descriptor list is fixed at build time.
type Descriptor struct {
	// Name is the human-readable name used only for the banner, e.g.
	// "kaf.mod". The name the engine tables the mechanism under comes from
	// the spec the mechanism registers.
	Name string
	// Mechanism is the registration entry point. The registrar has no
	// visibility into what registration does internally.
	Mechanism registry.Mechanism
}

// Options carries the host environment state the registrar reads. It is
// assembled once before the load and never mutated.
type Options struct {
	// Rank is this process's rank in a parallel execution group. Only rank
	// zero (or below, for non-distributed runs) announces.
	Rank int
	// Quiet suppresses the banner entirely, e.g. for embedding contexts.
	Quiet bool
	// Stderr is the diagnostic stream. Defaults to os.Stderr when nil.
	Stderr io.Writer
}

// Load announces and registers every descriptor, in order.
//
// The banner is written if and only if Quiet is unset and Rank < 1.
// Registration is unconditional and synchronous regardless of the banner
// decision. The first registration error aborts the remaining sequence and
// propagates to the caller; nothing is rolled back.
func Load(ctx context.Context, opts Options, reg *registry.Registry, descriptors []Descriptor) error {
	logger := ctxlog.FromContext(ctx)

	if !opts.Quiet && opts.Rank < 1 {
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		// One logical announcement: a single trailing newline after all
		// tokens, so the listing is one wrapped line rather than a list.
		var b strings.Builder
		b.WriteString(Banner)
		b.WriteString("\n")
		for _, d := range descriptors {
			b.WriteString(" ")
			b.WriteString(d.Name)
		}
		b.WriteString("\n")
		fmt.Fprint(out, b.String())
	}

	for _, d := range descriptors {
		if err := d.Mechanism.Register(reg); err != nil {
			return fmt.Errorf("failed to register mechanism '%s': %w", d.Name, err)
		}
	}

	logger.Debug("Mechanism load complete.", "count", len(descriptors))
	return nil
}
