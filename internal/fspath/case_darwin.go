//go:build darwin

package fspath

// HFS+/APFS default volumes are case-preserving but case-insensitive.
const defaultCaseSensitive = false
