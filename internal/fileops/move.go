package fileops

import (
	"fmt"
	"os"
)

// renameFunc is swappable for tests forcing the cross-volume fallback.
var renameFunc = os.Rename

// Move moves src to dst, preferring an atomic native rename. When rename
// fails (typically across volumes) it falls back to copy-then-delete: the
// source stays intact until the copy has been fully verified, so a mid-way
// failure never loses data.
func Move(src, dst string, opts ...Option) error {
	if err := renameFunc(src, dst); err == nil {
		return nil
	}
	if err := Copy(src, dst, opts...); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("move %s to %s: remove source: %w", src, dst, err)
	}
	return nil
}
