// Package main hosts the retime CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into the
// compare/calibrate pipeline: diff previews, apply writes, pauses inspects
// timing gaps, history browses the run ledger, and config scaffolds
// configuration. It centralizes config resolution and logger setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
