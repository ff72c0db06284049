package fspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		absolute bool
	}{
		{name: "plain absolute", raw: "/usr/local/bin", expected: "/usr/local/bin", absolute: true},
		{name: "duplicate separators", raw: "/usr//local///bin", expected: "/usr/local/bin", absolute: true},
		{name: "trailing separator stripped", raw: "/usr/local/", expected: "/usr/local", absolute: true},
		{name: "root keeps separator", raw: "/", expected: "/", absolute: true},
		{name: "root with duplicates", raw: "///", expected: "/", absolute: true},
		{name: "relative", raw: "a/b/c", expected: "a/b/c", absolute: false},
		{name: "relative with trailing", raw: "a/b/", expected: "a/b", absolute: false},
		{name: "backslashes converted", raw: "a\\b\\c", expected: "a/b/c", absolute: false},
		{name: "empty", raw: "", expected: "", absolute: false},
		{name: "unicode preserved", raw: "/tmp/ünïcødé/файл", expected: "/tmp/ünïcødé/файл", absolute: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.raw)
			assert.Equal(t, tt.expected, p.String())
			assert.Equal(t, tt.absolute, p.IsAbsolute())
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, raw := range []string{"/a//b/", "x/y", "/", ""} {
		once := Normalize(raw)
		twice := Normalize(once.String())
		assert.Equal(t, once.String(), twice.String())
	}
}

func TestJoin(t *testing.T) {
	base := Normalize("/home/user")
	child := Normalize("docs/report.txt")

	joined, err := Join(base, child)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/docs/report.txt", joined.String())
	assert.True(t, joined.IsAbsolute())
}

func TestJoinAbsoluteChildFails(t *testing.T) {
	_, err := Join(Normalize("/home/user"), Normalize("/etc/passwd"))
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestJoinOntoRoot(t *testing.T) {
	joined, err := Join(Normalize("/"), Normalize("etc"))
	require.NoError(t, err)
	assert.Equal(t, "/etc", joined.String())
}

func TestJoinSplitRoundTrip(t *testing.T) {
	// Joining a single-segment child and splitting it back off returns the
	// original child name, for any valid leaf.
	for _, leaf := range []string{"report.txt", "B.TXT", ".hidden", "über"} {
		base := Normalize("/data//store/")
		joined, err := Join(base, Normalize(leaf))
		require.NoError(t, err)
		assert.Equal(t, leaf, joined.Leaf())

		parent, err := joined.Parent()
		require.NoError(t, err)
		assert.Equal(t, base.String(), parent.String())
	}
}

func TestSibling(t *testing.T) {
	p := Normalize("/var/log/syslog")

	sib, err := p.Sibling("messages")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/messages", sib.String())
}

func TestSiblingOfRootFails(t *testing.T) {
	_, err := Normalize("/").Sibling("x")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestSiblingRejectsSeparators(t *testing.T) {
	_, err := Normalize("/a/b").Sibling("c/d")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestParent(t *testing.T) {
	p, err := Normalize("/a/b/c").Parent()
	require.NoError(t, err)
	assert.Equal(t, "/a/b", p.String())

	p, err = p.Parent()
	require.NoError(t, err)
	assert.Equal(t, "/a", p.String())

	p, err = p.Parent()
	require.NoError(t, err)
	assert.Equal(t, "/", p.String())
	assert.True(t, p.IsRoot())

	_, err = p.Parent()
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestParentOfSingleRelativeSegment(t *testing.T) {
	p, err := Normalize("file.txt").Parent()
	require.NoError(t, err)
	assert.Equal(t, "", p.String())
	assert.False(t, p.IsAbsolute())
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Normalize("/a/b/c").Segments())
	assert.Equal(t, []string{"x"}, Normalize("x").Segments())
	assert.Nil(t, Normalize("/").Segments())
	assert.Nil(t, Normalize("").Segments())
}

func TestEqualCaseSensitivityExplicit(t *testing.T) {
	a := Normalize("/Data/File.TXT").WithCaseSensitivity(false)
	b := Normalize("/data/file.txt").WithCaseSensitivity(false)
	assert.True(t, a.Equal(b))

	a = a.WithCaseSensitivity(true)
	assert.False(t, a.Equal(b))
}

func TestEqualAbsoluteVsRelative(t *testing.T) {
	a := Normalize("/a/b").WithCaseSensitivity(true)
	b := Normalize("a/b").WithCaseSensitivity(true)
	assert.False(t, a.Equal(b))
}

func TestStringRoundTrip(t *testing.T) {
	for _, raw := range []string{"/home/user/файл.txt", "/tmp/caffè", "relative/ünït"} {
		p := Normalize(raw)
		assert.Equal(t, p.String(), Normalize(p.String()).String())
	}
}
