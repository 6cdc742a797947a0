package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Run reports the loaded mechanism table. Registration itself already
// happened in NewApp; Run only reads.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	names := a.registry.Names()
	a.logger.Info("Mechanism table ready.", "count", len(names))

	tw := tabwriter.NewWriter(a.outW, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tION\tRANGES\tSTATES")
	for _, name := range names {
		spec, ok := a.registry.Lookup(name)
		if !ok {
			return fmt.Errorf("mechanism '%s' listed but not found in table", name)
		}

		ranges := make([]string, 0, len(spec.Ranges))
		for rn := range spec.Ranges {
			ranges = append(ranges, rn)
		}
		sort.Strings(ranges)

		ion := spec.Ion
		if ion == "" {
			ion = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			spec.Name, spec.Kind, ion, dashIfEmpty(strings.Join(ranges, ",")), dashIfEmpty(strings.Join(spec.States, ",")))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write mechanism table: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
