// Package location maps abstract well-known locations (home, temp, app data,
// executable paths) onto concrete per-OS paths. Resolution is pure per call:
// it may consult the environment but never creates directories.
package location

import (
	"fmt"

	"github.com/tympanix/dirkit/internal/buildmode"
	"github.com/tympanix/dirkit/internal/fspath"
)

// Type identifies an abstract special location. The set is closed.
type Type int

const (
	Home Type = iota
	Documents
	Music
	Movies
	UserAppData
	CommonAppData
	Desktop
	GlobalApps
	Temp
	InvokedExecutable
	CurrentExecutable
	CurrentApplication
	HostApplication
)

var typeNames = map[Type]string{
	Home:               "home",
	Documents:          "documents",
	Music:              "music",
	Movies:             "movies",
	UserAppData:        "app-data-user",
	CommonAppData:      "app-data-common",
	Desktop:            "desktop",
	GlobalApps:         "global-apps",
	Temp:               "temp",
	InvokedExecutable:  "invoked-executable",
	CurrentExecutable:  "current-executable",
	CurrentApplication: "current-application",
	HostApplication:    "host-application",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("location(%d)", int(t))
}

// Parse maps a location name (as printed by String) back to its Type.
func Parse(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown location %q", s)
}

// Resolve returns the concrete path for t on the current platform. Resolving
// the same Type twice yields the same path for an unchanged environment.
//
// An out-of-range Type is a contract violation: debug builds panic, release
// builds fall back to the user home directory (the one location every
// platform can supply) rather than returning an empty path.
func Resolve(t Type) (fspath.Path, error) {
	if _, ok := typeNames[t]; !ok {
		if buildmode.Debug {
			panic(fmt.Sprintf("location: unmapped type %d", int(t)))
		}
		return resolveNative(Home)
	}
	return resolveNative(t)
}
