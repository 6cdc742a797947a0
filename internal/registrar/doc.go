// Package registrar performs the one-shot mechanism load at process startup.
//
// It takes the static ordered list of mechanism descriptors compiled into the
// binary, optionally announces them on the diagnostic stream, and invokes
// each mechanism's registration entry point exactly once, in order. The
// banner is elected to a single process rank so that parallel runs do not
// interleave duplicate output; registration itself always happens locally in
// every process.
//
// Load is not idempotent. The host startup sequence calls it once; calling it
// twice double-registers every mechanism and fails on the first duplicate.
package registrar
