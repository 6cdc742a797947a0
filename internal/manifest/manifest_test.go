package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mechload/internal/manifest"
)

const kafManifest = `
mechanism "kaf" {
  kind = "density"
  ion  = "k"

  range "gbar" {
    type    = number
    default = 0
    unit    = "S/cm2"
  }

  state "m" {}
  state "h" {}
}
`

func TestParse_FullMechanism(t *testing.T) {
	t.Parallel()

	// --- Act ---
	manifests, err := manifest.Parse([]byte(kafManifest), "kaf.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, manifests, 1)

	m := manifests[0]
	require.Equal(t, "kaf", m.Name)
	require.Equal(t, "density", m.Kind)
	require.Equal(t, "k", m.Ion)
	require.Equal(t, []string{"m", "h"}, m.States)
	require.Equal(t, "kaf.hcl", m.File)

	gbar, ok := m.Ranges["gbar"]
	require.True(t, ok)
	require.True(t, gbar.Type.Equals(cty.Number))
	require.True(t, gbar.Default.RawEquals(cty.Zero))
	require.Equal(t, "S/cm2", gbar.Unit)
}

func TestParse_PointMechanismWithoutIon(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
mechanism "vecevent" {
  kind = "point"
}
`

	// --- Act ---
	manifests, err := manifest.Parse([]byte(src), "vecevent.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, manifests, 1)
	require.Equal(t, "point", manifests[0].Kind)
	require.Empty(t, manifests[0].Ion)
	require.Empty(t, manifests[0].Ranges)
	require.Empty(t, manifests[0].States)
}

func TestParse_RangeWithoutDefault(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
mechanism "kdr" {
  kind = "density"
  ion  = "k"

  range "gbar" {
    type = number
  }
}
`

	// --- Act ---
	manifests, err := manifest.Parse([]byte(src), "kdr.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, cty.NilVal, manifests[0].Ranges["gbar"].Default)
}

func TestParse_RejectsUnknownKind(t *testing.T) {
	t.Parallel()

	src := `
mechanism "kaf" {
  kind = "distributed"
}
`

	_, err := manifest.Parse([]byte(src), "kaf.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "kind must be 'density' or 'point'")
}

func TestParse_RejectsDuplicateRange(t *testing.T) {
	t.Parallel()

	src := `
mechanism "kaf" {
  kind = "density"

  range "gbar" {
    type = number
  }

  range "gbar" {
    type = number
  }
}
`

	_, err := manifest.Parse([]byte(src), "kaf.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate range 'gbar'")
}

func TestParse_RejectsDuplicateState(t *testing.T) {
	t.Parallel()

	src := `
mechanism "kaf" {
  kind = "density"

  state "m" {}
  state "m" {}
}
`

	_, err := manifest.Parse([]byte(src), "kaf.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate state 'm'")
}

func TestParse_RejectsMismatchedDefault(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
mechanism "kaf" {
  kind = "density"

  range "gbar" {
    type    = number
    default = "not a number"
  }
}
`

	// --- Act ---
	_, err := manifest.Parse([]byte(src), "kaf.hcl")

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "default for range 'gbar' does not match its type")
}

func TestParse_RejectsInvalidSyntax(t *testing.T) {
	t.Parallel()

	src := `
mechanism "kaf" {
  kind = "density"
`

	_, err := manifest.Parse([]byte(src), "kaf.hcl")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoadDir_LoadsAllManifests(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "kaf.hcl", kafManifest)
	writeManifest(t, tempDir, "vecevent.hcl", `
mechanism "vecevent" {
  kind = "point"
}
`)

	// --- Act ---
	manifests, err := manifest.LoadDir(context.Background(), tempDir)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, manifests, 2)
}

func TestLoadDir_RejectsDuplicateAcrossFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "a.hcl", kafManifest)
	writeManifest(t, tempDir, "b.hcl", kafManifest)

	// --- Act ---
	_, err := manifest.LoadDir(context.Background(), tempDir)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "declared in both")
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	t.Parallel()

	manifests, err := manifest.LoadDir(context.Background(), t.TempDir())

	require.NoError(t, err)
	require.Empty(t, manifests)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := manifest.LoadDir(context.Background(), filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
}

func writeManifest(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0600))
}
