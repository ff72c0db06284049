//go:build unix && !darwin

package fspath

const defaultCaseSensitive = true
