//go:build windows

package fspath

const defaultCaseSensitive = false
