// Package hostenv detects the host process environment the loader runs in:
// the process rank within a parallel launch group, and whether startup
// diagnostics are suppressed.
//
// Launchers export the rank under different variable names. An explicit
// MECHLOAD_RANK always wins; otherwise the first launcher-provided variable
// that is set is used, and a process with no rank variable at all is treated
// as rank 0 (a non-distributed run).
package hostenv

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the immutable host environment snapshot taken once before the
// mechanism load runs.
type Env struct {
	Rank     int
	NoBanner bool
}

// hostVars maps the recognized environment variables. Rank sources are
// pointers so that "unset" and "0" can be told apart.
type hostVars struct {
	Rank     *int `env:"MECHLOAD_RANK"`
	NoBanner bool `env:"MECHLOAD_NOBANNER"`

	OpenMPIRank *int `env:"OMPI_COMM_WORLD_RANK"`
	PMIRank     *int `env:"PMI_RANK"`
	SlurmRank   *int `env:"SLURM_PROCID"`
}

// Detect reads the process environment and resolves the effective rank and
// banner suppression flag.
func Detect() (Env, error) {
	var vars hostVars
	if err := env.Parse(&vars); err != nil {
		return Env{}, fmt.Errorf("failed to parse host environment: %w", err)
	}

	e := Env{NoBanner: vars.NoBanner}
	switch {
	case vars.Rank != nil:
		e.Rank = *vars.Rank
	case vars.OpenMPIRank != nil:
		e.Rank = *vars.OpenMPIRank
	case vars.PMIRank != nil:
		e.Rank = *vars.PMIRank
	case vars.SlurmRank != nil:
		e.Rank = *vars.SlurmRank
	}

	return e, nil
}
