// Package main hosts the holreg CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into the
// research pipeline's stages: catalog collection, field cleanup, credit
// normalization, vocabulary tagging, JSON export, and site generation. It
// centralizes configuration resolution and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
