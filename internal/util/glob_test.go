package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamePatternSingle(t *testing.T) {
	np := ParseNamePattern("*.txt", true)

	tests := []struct {
		name    string
		matches bool
	}{
		{"a.txt", true},
		{"B.TXT", true},
		{"readme.md", false},
		{".hidden", false},
		{".hidden.txt", true},
	}
	for _, tt := range tests {
		got, err := np.Match(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.matches, got, tt.name)
	}
}

func TestNamePatternCaseSensitive(t *testing.T) {
	np := ParseNamePattern("*.txt", false)

	got, err := np.Match("B.TXT")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = np.Match("b.txt")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestNamePatternMultipleAndNegation(t *testing.T) {
	np := ParseNamePattern("*.go, *.md, !*_test*", true)

	tests := []struct {
		name    string
		matches bool
	}{
		{"main.go", true},
		{"README.md", true},
		{"main_test.go", false},
		{"main.py", false},
	}
	for _, tt := range tests {
		got, err := np.Match(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.matches, got, tt.name)
	}
}

func TestNamePatternEmptyMatchesEverything(t *testing.T) {
	np := ParseNamePattern("", true)
	for _, name := range []string{"x", ".dot", "UPPER"} {
		got, err := np.Match(name)
		require.NoError(t, err)
		assert.True(t, got)
	}
}

func TestNamePatternOnlyNegations(t *testing.T) {
	np := ParseNamePattern("!*.bak", true)

	got, err := np.Match("keep.txt")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = np.Match("old.bak")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestNamePatternInvalid(t *testing.T) {
	np := ParseNamePattern("[", true)
	_, err := np.Match("anything")
	assert.Error(t, err)
}
