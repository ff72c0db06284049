package fileops

import (
	"fmt"
)

// TrashReason classifies a trash failure.
type TrashReason int

const (
	// Unsupported means the platform has no trash mechanism.
	Unsupported TrashReason = iota
	// MechanismFailed means the trash mechanism exists but staging failed.
	MechanismFailed
)

func (r TrashReason) String() string {
	if r == Unsupported {
		return "unsupported"
	}
	return "mechanism failed"
}

// TrashError reports a failed MoveToTrash.
type TrashError struct {
	Path   string
	Reason TrashReason
	Err    error
}

func (e *TrashError) Error() string {
	return fmt.Sprintf("trash %s: %s: %v", e.Path, e.Reason, e.Err)
}

func (e *TrashError) Unwrap() error {
	return e.Err
}

// MoveToTrash stages path into the platform trash. A path that does not exist
// is treated as success (it is already gone), even on platforms with no trash
// concept. TrashDir overrides the trash directory when non-empty; pass "" for
// the platform default.
func MoveToTrash(path, trashDir string) (bool, error) {
	return moveToTrashNative(path, trashDir)
}
