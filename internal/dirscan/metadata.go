package dirscan

import (
	"fmt"
	"os"
	"time"

	"github.com/tympanix/dirkit/internal/fspath"
)

// Metadata describes a filesystem object. CreateTime is the zero time on
// platforms that do not record it.
type Metadata struct {
	Dir        bool
	Symlink    bool
	ReadOnly   bool
	Size       int64
	ModTime    time.Time
	CreateTime time.Time
}

// statFunc is swappable for tests simulating entries vanishing between
// listing and stat.
var statFunc = os.Lstat

// Stat queries metadata for path without following a final symlink. Errors
// distinguish ErrNotFound and ErrPermission via errors.Is.
func Stat(path string) (Metadata, error) {
	info, err := statFunc(path)
	if err != nil {
		return Metadata{}, classify("stat", path, err)
	}
	return Metadata{
		Dir:        info.IsDir(),
		Symlink:    info.Mode()&os.ModeSymlink != 0,
		ReadOnly:   native.readOnly(info),
		Size:       info.Size(),
		ModTime:    info.ModTime(),
		CreateTime: native.createTime(info),
	}, nil
}

// Hidden reports whether the named entry is hidden under the platform
// convention (leading dot on unix-like systems, the hidden attribute bit on
// windows). It never consults the wildcard filter; hidden-ness and pattern
// matching are independent.
func Hidden(path string, name string) bool {
	return native.hidden(path, name)
}

// ResolveLink follows exactly one level of symlink indirection and returns
// the target as a path relative to the link's own directory semantics, the
// way readlink reports it. It fails with ErrNotALink when path is not a
// symbolic link. Callers wanting transitive resolution must loop with their
// own cycle guard; this function never recurses.
func ResolveLink(path string) (fspath.Path, error) {
	info, err := statFunc(path)
	if err != nil {
		return fspath.Path{}, classify("readlink", path, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return fspath.Path{}, fmt.Errorf("readlink %s: %w", path, ErrNotALink)
	}
	target, err := os.Readlink(path)
	if err != nil {
		return fspath.Path{}, classify("readlink", path, err)
	}
	resolved := fspath.Normalize(target)
	if !resolved.IsAbsolute() {
		// Relative targets are interpreted against the link's directory.
		if parent, perr := fspath.Normalize(path).Parent(); perr == nil {
			if joined, jerr := fspath.Join(parent, resolved); jerr == nil {
				return joined, nil
			}
		}
	}
	return resolved, nil
}
