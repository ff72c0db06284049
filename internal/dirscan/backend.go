package dirscan

import (
	"io/fs"
	"time"
)

// backend is the per-OS capability set behind metadata resolution. One
// implementation is selected at build time; there is no runtime dispatch.
type backend interface {
	hidden(path, name string) bool
	readOnly(info fs.FileInfo) bool
	createTime(info fs.FileInfo) time.Time
}
