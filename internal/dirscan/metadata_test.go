package dirscan

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "f.dat", "hello")

	md, err := Stat(path)
	require.NoError(t, err)
	assert.False(t, md.Dir)
	assert.False(t, md.Symlink)
	assert.Equal(t, int64(5), md.Size)
	assert.False(t, md.ModTime.IsZero())
}

func TestStatDirectory(t *testing.T) {
	md, err := Stat(t.TempDir())
	require.NoError(t, err)
	assert.True(t, md.Dir)
}

func TestStatNotFound(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatReadOnly(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ro", "x")
	require.NoError(t, os.Chmod(path, 0444))

	md, err := Stat(path)
	require.NoError(t, err)
	assert.True(t, md.ReadOnly)
}

func TestStatDoesNotFollowSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, dir, "target", "tt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	md, err := Stat(link)
	require.NoError(t, err)
	assert.True(t, md.Symlink)
}

func TestResolveLinkOneLevel(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	target := writeFile(t, dir, "target", "tt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	resolved, err := ResolveLink(link)
	require.NoError(t, err)
	assert.Equal(t, target, resolved.String())
}

func TestResolveLinkRelativeTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	writeFile(t, dir, "target", "tt")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink("target", link))

	resolved, err := ResolveLink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "target"), resolved.String())
}

func TestResolveLinkNotALink(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "plain", "pp")

	_, err := ResolveLink(plain)
	assert.ErrorIs(t, err, ErrNotALink)
}

func TestResolveLinkDoesNotRecurseOnCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.Symlink(b, a))
	require.NoError(t, os.Symlink(a, b))

	// Exactly one level: a resolves to b, never beyond.
	resolved, err := ResolveLink(a)
	require.NoError(t, err)
	assert.Equal(t, b, resolved.String())
}

func TestHiddenConvention(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("hidden-ness is attribute-based on windows")
	}
	dir := t.TempDir()
	assert.True(t, Hidden(filepath.Join(dir, ".dotfile"), ".dotfile"))
	assert.False(t, Hidden(filepath.Join(dir, "plain"), "plain"))
}
