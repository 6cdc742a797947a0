// Package app assembles the mechanism loader: it configures logging, runs
// the one-shot mechanism registration, validates the table against the
// public manifests, and reports the resulting mechanism table.
package app
