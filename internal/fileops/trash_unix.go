//go:build !windows

package fileops

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// moveToTrashNative implements freedesktop.org trash staging: the item is
// renamed into $XDG_DATA_HOME/Trash/files with a matching .trashinfo record.
func moveToTrashNative(path, trashDir string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
	}

	if trashDir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		trashDir = filepath.Join(dataHome, "Trash")
	}

	filesDir := filepath.Join(trashDir, "files")
	infoDir := filepath.Join(trashDir, "info")
	for _, dir := range []string{filesDir, infoDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
	}

	name := trashName(filesDir, infoDir, filepath.Base(abs))
	infoPath := filepath.Join(infoDir, name+".trashinfo")
	info := fmt.Sprintf("[Trash Info]\nPath=%s\nDeletionDate=%s\n",
		abs, time.Now().Format("2006-01-02T15:04:05"))
	if err := os.WriteFile(infoPath, []byte(info), 0600); err != nil {
		return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
	}

	if err := os.Rename(abs, filepath.Join(filesDir, name)); err != nil {
		os.Remove(infoPath)
		return false, &TrashError{Path: path, Reason: MechanismFailed, Err: err}
	}
	return true, nil
}

// trashName picks a name not present in either the files or info directory.
func trashName(filesDir, infoDir, base string) string {
	name := base
	for i := 2; ; i++ {
		_, ferr := os.Lstat(filepath.Join(filesDir, name))
		_, ierr := os.Lstat(filepath.Join(infoDir, name+".trashinfo"))
		if errors.Is(ferr, os.ErrNotExist) && errors.Is(ierr, os.ErrNotExist) {
			return name
		}
		name = fmt.Sprintf("%s.%d", base, i)
	}
}
