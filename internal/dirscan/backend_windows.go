//go:build windows

package dirscan

import (
	"io/fs"
	"syscall"
	"time"
)

var native backend = windowsBackend{}

type windowsBackend struct{}

// hidden uses the FILE_ATTRIBUTE_HIDDEN bit, not the file name.
func (windowsBackend) hidden(path, name string) bool {
	if fd, ok := sysData(path); ok {
		return fd.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0
	}
	return false
}

func (windowsBackend) readOnly(info fs.FileInfo) bool {
	if fd, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return fd.FileAttributes&syscall.FILE_ATTRIBUTE_READONLY != 0
	}
	return info.Mode().Perm()&0200 == 0
}

func (windowsBackend) createTime(info fs.FileInfo) time.Time {
	if fd, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, fd.CreationTime.Nanoseconds())
	}
	return time.Time{}
}

func sysData(path string) (*syscall.Win32FileAttributeData, bool) {
	info, err := statFunc(path)
	if err != nil {
		return nil, false
	}
	fd, ok := info.Sys().(*syscall.Win32FileAttributeData)
	return fd, ok
}
