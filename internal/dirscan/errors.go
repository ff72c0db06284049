package dirscan

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Sentinel errors distinguishing open and stat failures. Match with errors.Is.
var (
	ErrNotFound   = errors.New("no such file or directory")
	ErrPermission = errors.New("permission denied")
	ErrNotDir     = errors.New("not a directory")
	ErrNotALink   = errors.New("not a symbolic link")
)

// classify maps an os-level error onto the package's sentinel taxonomy,
// keeping the original error in the chain.
func classify(op, path string, err error) error {
	var sentinel error
	switch {
	case errors.Is(err, fs.ErrNotExist):
		sentinel = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		sentinel = ErrPermission
	case errors.Is(err, syscall.ENOTDIR):
		sentinel = ErrNotDir
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, sentinel, err)
}
