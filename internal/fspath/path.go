// Package fspath provides a normalized, immutable filesystem path value.
//
// A Path is a separator-normalized string plus an absolute/relative flag and an
// explicit case-sensitivity mode. Case sensitivity is a property of each Path
// instance, never inferred from string comparison.
package fspath

import (
	"errors"
	"strings"
)

// ErrInvalidPath is returned for operations that are undefined on the given
// path, such as joining an absolute child or taking the sibling of a root.
var ErrInvalidPath = errors.New("invalid path")

// Path is an immutable, normalized filesystem path. The zero value is the
// empty relative path. Normalized form contains no duplicate separators and no
// trailing separator except for the root itself.
type Path struct {
	value         string
	absolute      bool
	caseSensitive bool
}

// Normalize parses raw into a Path, collapsing repeated separators and
// stripping any trailing separator (except for the root). Backslashes are
// accepted as separators and converted. The case-sensitivity mode defaults to
// the platform convention; use WithCaseSensitivity to set it explicitly.
func Normalize(raw string) Path {
	s := strings.ReplaceAll(raw, "\\", "/")

	abs := strings.HasPrefix(s, "/")
	var drive string
	if !abs && len(s) >= 2 && s[1] == ':' && isDriveLetter(s[0]) {
		// Windows volume prefix counts as absolute.
		abs = true
		drive = s[:2]
		s = s[2:]
	}

	var segs []string
	for _, seg := range strings.Split(s, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}

	value := strings.Join(segs, "/")
	if abs {
		value = drive + "/" + value
		if len(segs) == 0 {
			value = drive + "/"
		}
	}

	return Path{value: value, absolute: abs, caseSensitive: defaultCaseSensitive}
}

func isDriveLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// String returns the normalized path string. Valid UTF-8 input round-trips
// losslessly; invalid byte sequences are preserved as-is.
func (p Path) String() string {
	return p.value
}

// IsAbsolute reports whether the path is absolute.
func (p Path) IsAbsolute() bool {
	return p.absolute
}

// IsRoot reports whether the path is a filesystem root.
func (p Path) IsRoot() bool {
	return p.absolute && strings.HasSuffix(p.value, "/")
}

// CaseSensitive reports the comparison mode of this instance.
func (p Path) CaseSensitive() bool {
	return p.caseSensitive
}

// WithCaseSensitivity returns a copy of p using the given comparison mode.
func (p Path) WithCaseSensitivity(sensitive bool) Path {
	p.caseSensitive = sensitive
	return p
}

// Equal reports whether two paths are equal under p's comparison mode.
// Absolute and relative paths are never equal.
func (p Path) Equal(o Path) bool {
	if p.absolute != o.absolute {
		return false
	}
	if p.caseSensitive {
		return p.value == o.value
	}
	return strings.EqualFold(p.value, o.value)
}

// Segments returns the path segments in order, excluding any volume or root
// prefix. The returned slice is a copy.
func (p Path) Segments() []string {
	s := p.value
	if p.absolute {
		if i := strings.Index(s, "/"); i >= 0 {
			s = s[i+1:]
		}
	}
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

// Leaf returns the final segment, or "" for a root or empty path.
func (p Path) Leaf() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Parent returns the path with the final segment removed. It fails with
// ErrInvalidPath when p has no parent (a root or an empty relative path).
func (p Path) Parent() (Path, error) {
	if p.IsRoot() || p.value == "" {
		return Path{}, ErrInvalidPath
	}
	i := strings.LastIndex(p.value, "/")
	if i < 0 {
		// Single relative segment; parent is the empty relative path.
		return Path{caseSensitive: p.caseSensitive}, nil
	}
	parent := p.value[:i]
	if p.absolute && !strings.Contains(parent, "/") {
		parent += "/"
	}
	return Path{value: parent, absolute: p.absolute, caseSensitive: p.caseSensitive}, nil
}

// Join appends a relative child to base. Joining an absolute child is
// undefined and fails with ErrInvalidPath.
func Join(base, child Path) (Path, error) {
	if child.absolute {
		return Path{}, ErrInvalidPath
	}
	if child.value == "" {
		return base, nil
	}
	v := base.value
	switch {
	case v == "":
		v = child.value
	case strings.HasSuffix(v, "/"):
		v += child.value
	default:
		v += "/" + child.value
	}
	return Path{value: v, absolute: base.absolute, caseSensitive: base.caseSensitive}, nil
}

// Sibling replaces the final segment of p with leaf. It fails with
// ErrInvalidPath when p has no parent or leaf contains a separator.
func (p Path) Sibling(leaf string) (Path, error) {
	if leaf == "" || strings.ContainsAny(leaf, "/\\") {
		return Path{}, ErrInvalidPath
	}
	parent, err := p.Parent()
	if err != nil {
		return Path{}, err
	}
	return Join(parent, Path{value: leaf, caseSensitive: p.caseSensitive})
}
