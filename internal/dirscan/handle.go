package dirscan

import (
	"fmt"
	"io"
	"os"

	"github.com/tympanix/dirkit/internal/buildmode"
)

// Handle owns exactly one native directory stream. It is not safe for
// concurrent use and must not be copied; release it with Close on every exit
// path. Close may be called at most once.
type Handle struct {
	f       *os.File
	path    string
	done    bool
	closed  bool
	readErr error

	noCopy noCopy
}

type noCopy struct{}

func (noCopy) Lock()   {}
func (noCopy) Unlock() {}

// Open opens a directory stream for path. The returned error distinguishes
// ErrNotFound, ErrPermission and ErrNotDir via errors.Is.
func Open(path string) (*Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify("open", path, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, classify("open", path, err)
	}
	if !info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("open %s: %w", path, ErrNotDir)
	}
	return &Handle{f: f, path: path}, nil
}

// Path returns the directory path the handle was opened on.
func (h *Handle) Path() string {
	return h.path
}

// NextRaw returns the next raw entry name in OS-native enumeration order. The
// order is unspecified. "." and ".." are never surfaced. Once the stream is
// exhausted it returns ("", false) on every subsequent call. A fatal read
// error mid-walk also ends the stream; entries already returned remain valid.
func (h *Handle) NextRaw() (string, bool) {
	if h.done || h.closed {
		return "", false
	}
	for {
		names, err := h.f.Readdirnames(1)
		if err != nil {
			// io.EOF is normal exhaustion; anything else (device gone,
			// interrupted read) terminates the walk the same way.
			if err != io.EOF {
				h.readErr = err
			}
			h.done = true
			return "", false
		}
		if len(names) == 0 {
			h.done = true
			return "", false
		}
		name := names[0]
		if name == "." || name == ".." {
			continue
		}
		return name, true
	}
}

// ReadErr returns the fatal enumeration error that ended the stream early, or
// nil after normal exhaustion.
func (h *Handle) ReadErr() error {
	return h.readErr
}

// Close releases the native directory stream. It must be called exactly once;
// a second call is a programming error, checked in debug builds and ignored
// otherwise. Release failures are not actionable by the caller and are
// swallowed.
func (h *Handle) Close() {
	if h.closed {
		if buildmode.Debug {
			panic("dirscan: directory handle closed twice")
		}
		return
	}
	h.closed = true
	_ = h.f.Close()
}
