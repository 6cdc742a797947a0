// Package cli parses command-line arguments into an app.Config, layering
// flags over values detected from the host process environment.
package cli
