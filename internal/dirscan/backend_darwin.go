//go:build darwin

package dirscan

import (
	"io/fs"
	"strings"
	"syscall"
	"time"
)

var native backend = darwinBackend{}

type darwinBackend struct{}

func (darwinBackend) hidden(path, name string) bool {
	return strings.HasPrefix(name, ".")
}

func (darwinBackend) readOnly(info fs.FileInfo) bool {
	return info.Mode().Perm()&0200 == 0
}

func (darwinBackend) createTime(info fs.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	}
	return time.Time{}
}
