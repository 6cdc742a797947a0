// Package registry implements the host engine's mechanism table.
//
// The Registry stores one Spec per mechanism, keyed by the mechanism's engine
// name (e.g. "kaf") and remembered in registration order. Mechanisms are
// compiled into the binary and register themselves exactly once during
// startup; a duplicate name is a programmer error and surfaces as a
// registration error the caller treats as fatal.
//
// The Registry can also be validated against the public HCL manifests to
// ensure that the Go code and the manifests are perfectly in sync, preventing
// a wide class of runtime errors.
package registry
