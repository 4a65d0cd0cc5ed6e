// Package main hosts the subrefine CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the cue refinement engine: refining
// SRT documents in place or to a derived path, inspecting threshold
// violations, and configuration scaffolding. It centralizes configuration
// resolution and structured logging setup so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
