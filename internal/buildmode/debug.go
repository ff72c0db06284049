//go:build dirkit_debug

// Package buildmode exposes whether strict debug checks are compiled in.
// Build with -tags dirkit_debug to turn contract violations into panics.
package buildmode

const Debug = true
