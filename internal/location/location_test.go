package location

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tympanix/dirkit/internal/buildmode"
)

var allTypes = []Type{
	Home, Documents, Music, Movies, UserAppData, CommonAppData, Desktop,
	GlobalApps, Temp, InvokedExecutable, CurrentExecutable,
	CurrentApplication, HostApplication,
}

func TestResolveEveryType(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			p, err := Resolve(typ)
			require.NoError(t, err)
			assert.NotEmpty(t, p.String(), "no location may resolve to an empty path")
			assert.True(t, p.IsAbsolute())
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, typ := range allTypes {
		first, err := Resolve(typ)
		require.NoError(t, err)
		second, err := Resolve(typ)
		require.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	}
}

func TestResolveNeverCreatesDirectories(t *testing.T) {
	home, err := Resolve(Home)
	require.NoError(t, err)
	docs, err := Resolve(Documents)
	require.NoError(t, err)
	// Documents is derived from home by a pure mapping, whether or not the
	// directory exists on disk.
	assert.True(t, strings.HasPrefix(docs.String(), home.String()))
}

func TestParseRoundTrip(t *testing.T) {
	for _, typ := range allTypes {
		parsed, err := Parse(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, parsed)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("attic")
	assert.Error(t, err)
}

func TestStringUnknownType(t *testing.T) {
	assert.Equal(t, "location(99)", Type(99).String())
}

func TestResolveUnmappedFallsBackToHome(t *testing.T) {
	if buildmode.Debug {
		t.Skip("debug builds panic on unmapped types")
	}
	home, err := Resolve(Home)
	require.NoError(t, err)

	p, err := Resolve(Type(99))
	require.NoError(t, err)
	assert.Equal(t, home.String(), p.String())
}

func TestExecutableLocationsAlias(t *testing.T) {
	exe, err := Resolve(CurrentExecutable)
	require.NoError(t, err)
	app, err := Resolve(CurrentApplication)
	require.NoError(t, err)
	host, err := Resolve(HostApplication)
	require.NoError(t, err)
	assert.Equal(t, exe.String(), app.String())
	assert.Equal(t, exe.String(), host.String())
}
