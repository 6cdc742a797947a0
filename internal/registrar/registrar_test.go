package registrar_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/mechload/internal/registrar"
	"github.com/vk/mechload/internal/registry"
)

// fakeMechanism records its registration order and optionally fails.
type fakeMechanism struct {
	name string
	log  *[]string
	fail error
}

func (f *fakeMechanism) Register(r *registry.Registry) error {
	if f.fail != nil {
		return f.fail
	}
	*f.log = append(*f.log, f.name)
	return r.RegisterMechanism(&registry.Spec{Name: f.name, Kind: registry.Density})
}

func fakeDescriptors(log *[]string, names ...string) []registrar.Descriptor {
	descriptors := make([]registrar.Descriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, registrar.Descriptor{
			Name:      name,
			Mechanism: &fakeMechanism{name: name, log: log},
		})
	}
	return descriptors
}

func TestLoad_AnnouncesAtRankZero(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	stderr := &bytes.Buffer{}
	opts := registrar.Options{Rank: 0, Quiet: false, Stderr: stderr}
	reg := registry.New()

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, fakeDescriptors(&log, "A", "B", "C"))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Additional mechanisms from files\n A B C\n", stderr.String())
	require.Equal(t, []string{"A", "B", "C"}, log, "registration must follow descriptor order")
}

func TestLoad_NegativeRankAnnounces(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	stderr := &bytes.Buffer{}
	opts := registrar.Options{Rank: -1, Stderr: stderr}

	// --- Act ---
	err := registrar.Load(context.Background(), opts, registry.New(), fakeDescriptors(&log, "A"))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Additional mechanisms from files\n A\n", stderr.String())
}

func TestLoad_WorkerRankStaysSilentButRegisters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	stderr := &bytes.Buffer{}
	opts := registrar.Options{Rank: 1, Quiet: false, Stderr: stderr}
	reg := registry.New()

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, fakeDescriptors(&log, "A", "B", "C"))

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, stderr.String(), "worker ranks must not produce banner text")
	require.Equal(t, []string{"A", "B", "C"}, log, "registration is unconditional")
}

func TestLoad_QuietSuppressesBannerButRegisters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	stderr := &bytes.Buffer{}
	opts := registrar.Options{Rank: 0, Quiet: true, Stderr: stderr}
	reg := registry.New()

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, fakeDescriptors(&log, "A", "B", "C"))

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, stderr.String())
	require.Equal(t, []string{"A", "B", "C"}, log)
}

func TestLoad_EmptyDescriptorList(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stderr := &bytes.Buffer{}
	opts := registrar.Options{Rank: 0, Stderr: stderr}
	reg := registry.New()

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, nil)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "Additional mechanisms from files\n\n", stderr.String(), "eligible banner with no descriptors prints only the introductory line")
	require.Zero(t, reg.Len())
}

func TestLoad_FirstErrorAbortsRemainingSequence(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	boom := errors.New("table rejected mechanism")
	descriptors := []registrar.Descriptor{
		{Name: "A.mod", Mechanism: &fakeMechanism{name: "A", log: &log}},
		{Name: "B.mod", Mechanism: &fakeMechanism{name: "B", log: &log, fail: boom}},
		{Name: "C.mod", Mechanism: &fakeMechanism{name: "C", log: &log}},
	}
	opts := registrar.Options{Quiet: true}
	reg := registry.New()

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, descriptors)

	// --- Assert ---
	require.Error(t, err)
	require.ErrorIs(t, err, boom, "the registration error must propagate to the caller")
	require.Contains(t, err.Error(), "B.mod")
	require.Equal(t, []string{"A"}, log, "mechanisms after the failure must not be invoked")
}

func TestLoad_SecondLoadDoubleRegisters(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Load is documented as not idempotent: the host calls it once. A second
	// call re-registers every mechanism and trips the duplicate check.
	var log []string
	descriptors := fakeDescriptors(&log, "A")
	opts := registrar.Options{Quiet: true}
	reg := registry.New()
	require.NoError(t, registrar.Load(context.Background(), opts, reg, descriptors))

	// --- Act ---
	err := registrar.Load(context.Background(), opts, reg, descriptors)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}
