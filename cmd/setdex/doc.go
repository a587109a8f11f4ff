// Package main hosts the setdex CLI entrypoint and command graph.
//
// The Cobra-based command tree converts analysis trees into calculator setdex
// files, inspects single analyses, exports sets to SQLite, and scaffolds
// configuration. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on user experience instead of
// wiring.
//
// Keep this package lean: add new functionality to the internal packages
// first, then surface it through dedicated commands or flags here.
package main
