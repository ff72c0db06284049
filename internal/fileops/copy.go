// Package fileops implements file copy, move and trash with no
// partial-success states left on disk.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Reason classifies a copy failure.
type Reason int

const (
	IOFailure Reason = iota
	SizeMismatch
	DestinationUndeletable
)

func (r Reason) String() string {
	switch r {
	case SizeMismatch:
		return "size mismatch"
	case DestinationUndeletable:
		return "destination undeletable"
	default:
		return "I/O failure"
	}
}

// CopyError reports a failed copy. The destination is guaranteed not to exist
// when a CopyError is returned.
type CopyError struct {
	Src    string
	Dst    string
	Reason Reason
	Err    error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s to %s: %s: %v", e.Src, e.Dst, e.Reason, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Option configures a copy or move.
type Option func(*settings)

type settings struct {
	progress io.Writer
}

// WithProgress tees every written byte into w, typically a progress bar. A
// write error from w aborts the copy.
func WithProgress(w io.Writer) Option {
	return func(s *settings) { s.progress = w }
}

// Copy copies src to dst as an all-or-nothing operation: any pre-existing
// destination is deleted first, bytes are streamed, and the written size is
// verified against the source size. On any failure the partially written
// destination is removed, so afterwards either a complete correct copy exists
// or no destination file exists at all. The source is never modified.
func Copy(src, dst string, opts ...Option) error {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	in, err := os.Open(src)
	if err != nil {
		return &CopyError{Src: src, Dst: dst, Reason: IOFailure, Err: err}
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return &CopyError{Src: src, Dst: dst, Reason: IOFailure, Err: err}
	}

	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &CopyError{Src: src, Dst: dst, Reason: DestinationUndeletable, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return &CopyError{Src: src, Dst: dst, Reason: IOFailure, Err: err}
	}

	var w io.Writer = out
	if s.progress != nil {
		w = io.MultiWriter(out, s.progress)
	}

	written, err := io.Copy(w, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return &CopyError{Src: src, Dst: dst, Reason: IOFailure, Err: err}
	}
	if written != info.Size() {
		os.Remove(dst)
		return &CopyError{
			Src: src, Dst: dst, Reason: SizeMismatch,
			Err: fmt.Errorf("wrote %d of %d bytes", written, info.Size()),
		}
	}
	return nil
}
