// Package main hosts the libretto CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into calls
// against the core packages: classification of scraped element streams,
// overlay scaffolding, anchor resolution, timing estimation, interchange
// merging, validation, and library catalog maintenance. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
