// Package dirscan enumerates directories lazily over one native directory
// stream per iterator, with pluggable per-OS metadata rules.
package dirscan

import (
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Entry is one matched directory entry. Pointer fields are nil when the
// metadata could not be resolved (for example the entry was deleted between
// listing and stat); callers must re-query explicitly rather than receive
// stale or zero data.
type Entry struct {
	Name       string
	Dir        bool
	Hidden     bool
	Symlink    bool
	ReadOnly   bool
	Size       *int64
	ModTime    *time.Time
	CreateTime *time.Time
}

type iterState int

const (
	stateCreated iterState = iota
	stateIterating
	stateExhausted
	stateClosed
)

// Option configures an Iterator.
type Option func(*Iterator)

// CaseSensitive forces case-sensitive wildcard matching.
func CaseSensitive() Option {
	return func(it *Iterator) { it.caseFold = false }
}

// CaseInsensitive forces case-folded wildcard matching. This is already the
// default; the reference native backends casefold regardless of platform.
func CaseInsensitive() Option {
	return func(it *Iterator) { it.caseFold = true }
}

// Iterator is a single-pass, forward-only lazy sequence of directory entries
// matching a wildcard. It is not restartable: once exhausted or closed, a new
// Iterator must be constructed to re-walk. Not safe for concurrent use;
// independent iterators over the same directory are fine.
type Iterator struct {
	dir      string
	pattern  string
	h        *Handle
	state    iterState
	entry    Entry
	caseFold bool
}

// NewIterator opens dir and prepares a walk of entries matching wildcard
// ("*" and "?" glob semantics). The caller must Close the iterator unless it
// runs it to exhaustion, which releases the handle implicitly.
func NewIterator(dir, wildcard string, opts ...Option) (*Iterator, error) {
	h, err := Open(dir)
	if err != nil {
		return nil, err
	}
	if wildcard == "" {
		wildcard = "*"
	}
	it := &Iterator{dir: dir, pattern: wildcard, h: h, caseFold: true}
	for _, opt := range opts {
		opt(it)
	}
	return it, nil
}

// Next advances to the next matching entry, returning false once the
// underlying stream is exhausted. After it returns false the iterator is
// terminal and every subsequent call returns false. A stat failure on an
// individual entry does not end the walk; the entry is surfaced with nil
// metadata fields instead.
func (it *Iterator) Next() bool {
	switch it.state {
	case stateExhausted, stateClosed:
		return false
	case stateCreated:
		it.state = stateIterating
	}
	for {
		name, ok := it.h.NextRaw()
		if !ok {
			it.state = stateExhausted
			it.h.Close()
			return false
		}
		if !it.match(name) {
			continue
		}
		it.entry = it.populate(name)
		return true
	}
}

// Entry returns the entry produced by the last successful Next.
func (it *Iterator) Entry() Entry {
	return it.entry
}

// Err returns the fatal enumeration error that ended the walk early, if any.
// Entries yielded before the error remain valid.
func (it *Iterator) Err() error {
	return it.h.ReadErr()
}

// Close releases the native handle. Required on early termination; a no-op
// after exhaustion (the handle is already released) and idempotent across
// repeated calls on the iterator.
func (it *Iterator) Close() {
	if it.state == stateExhausted || it.state == stateClosed {
		return
	}
	it.state = stateClosed
	it.h.Close()
}

func (it *Iterator) match(name string) bool {
	pattern, candidate := it.pattern, name
	if it.caseFold {
		pattern = strings.ToLower(pattern)
		candidate = strings.ToLower(candidate)
	}
	ok, err := doublestar.Match(pattern, candidate)
	if err != nil {
		// Malformed pattern matches nothing.
		return false
	}
	return ok
}

func (it *Iterator) populate(name string) Entry {
	full := joinEntry(it.dir, name)
	e := Entry{
		Name:   name,
		Hidden: Hidden(full, name),
	}
	md, err := Stat(full)
	if err != nil {
		// Entry vanished or turned unreadable between listing and stat.
		// One broken entry must not poison the walk.
		return e
	}
	e.Dir = md.Dir
	e.Symlink = md.Symlink
	e.ReadOnly = md.ReadOnly
	size, mod, create := md.Size, md.ModTime, md.CreateTime
	e.Size = &size
	e.ModTime = &mod
	if !create.IsZero() {
		e.CreateTime = &create
	}
	return e
}

func joinEntry(dir, name string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, "\\") {
		return dir + name
	}
	return dir + "/" + name
}
