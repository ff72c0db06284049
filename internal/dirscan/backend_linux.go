//go:build linux

package dirscan

import (
	"io/fs"
	"strings"
	"syscall"
	"time"
)

var native backend = linuxBackend{}

type linuxBackend struct{}

func (linuxBackend) hidden(path, name string) bool {
	return strings.HasPrefix(name, ".")
}

func (linuxBackend) readOnly(info fs.FileInfo) bool {
	return info.Mode().Perm()&0200 == 0
}

func (linuxBackend) createTime(info fs.FileInfo) time.Time {
	// Plain stat has no portable birth time here; Ctim is the closest
	// cheaply available field. Callers treat the zero time as unknown.
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return time.Time{}
}
