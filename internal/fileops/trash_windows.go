//go:build windows

package fileops

import (
	"errors"
	"fmt"
	"os"
)

// The Recycle Bin is only reachable through the shell API, which this build
// does not link. An absent file still counts as success.
func moveToTrashNative(path, trashDir string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
	}
	return false, &TrashError{
		Path:   path,
		Reason: Unsupported,
		Err:    fmt.Errorf("no trash mechanism available"),
	}
}
