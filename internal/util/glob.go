package util

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NamePattern is a comma-separated set of glob patterns applied to entry
// names. Patterns prefixed with "!" exclude matches; an entry is kept when it
// matches at least one positive pattern (or none exist) and no negative one.
type NamePattern struct {
	positive []string
	negative []string
	caseFold bool
}

// ParseNamePattern parses a pattern list such as "*.txt,*.md,!*_old*".
// Matching is case-folded when caseFold is set.
func ParseNamePattern(spec string, caseFold bool) *NamePattern {
	np := &NamePattern{caseFold: caseFold}
	for _, pattern := range strings.Split(spec, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(pattern, "!"); ok {
			np.negative = append(np.negative, rest)
		} else {
			np.positive = append(np.positive, pattern)
		}
	}
	return np
}

// Match reports whether name passes the pattern set.
func (np *NamePattern) Match(name string) (bool, error) {
	if np.caseFold {
		name = strings.ToLower(name)
	}

	matched := len(np.positive) == 0
	for _, pattern := range np.positive {
		ok, err := np.match(pattern, name)
		if err != nil {
			return false, err
		}
		if ok {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	for _, pattern := range np.negative {
		ok, err := np.match(pattern, name)
		if err != nil {
			return false, err
		}
		if ok {
			return false, nil
		}
	}
	return true, nil
}

func (np *NamePattern) match(pattern, name string) (bool, error) {
	if np.caseFold {
		pattern = strings.ToLower(pattern)
	}
	ok, err := doublestar.Match(pattern, name)
	if err != nil {
		return false, fmt.Errorf("invalid glob pattern '%s': %w", pattern, err)
	}
	return ok, nil
}
