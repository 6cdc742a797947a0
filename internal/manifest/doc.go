// Package manifest loads the public HCL manifests describing each
// mechanism's contract: its kind, the ion it touches, and its range and
// state variables.
//
// Manifests are the human-facing side of the mechanism table. The compiled
// Go specs are validated against them during startup so that the two can
// never drift apart silently.
package manifest
