//go:build !windows

package location

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tympanix/dirkit/internal/fspath"
)

// Release-mode fallbacks per type are the values below; none of them is ever
// the empty path.
func resolveNative(t Type) (fspath.Path, error) {
	switch t {
	case Home:
		return homeDir()
	case Documents:
		return homeSub("Documents")
	case Music:
		return homeSub("Music")
	case Movies:
		return homeSub("Movies")
	case Desktop:
		return homeSub("Desktop")
	case UserAppData:
		dir, err := os.UserConfigDir()
		if err != nil {
			return fspath.Path{}, fmt.Errorf("resolve %s: %w", t, err)
		}
		return fspath.Normalize(dir), nil
	case CommonAppData:
		return fspath.Normalize("/opt"), nil
	case GlobalApps:
		return fspath.Normalize("/usr"), nil
	case Temp:
		return fspath.Normalize(os.TempDir()), nil
	case InvokedExecutable:
		abs, err := filepath.Abs(os.Args[0])
		if err != nil {
			return fspath.Path{}, fmt.Errorf("resolve %s: %w", t, err)
		}
		return fspath.Normalize(abs), nil
	case CurrentExecutable, CurrentApplication, HostApplication:
		exe, err := os.Executable()
		if err != nil {
			return fspath.Path{}, fmt.Errorf("resolve %s: %w", t, err)
		}
		return fspath.Normalize(exe), nil
	}
	return homeDir()
}

func homeDir() (fspath.Path, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return fspath.Path{}, fmt.Errorf("resolve home: %w", err)
	}
	return fspath.Normalize(home), nil
}

func homeSub(name string) (fspath.Path, error) {
	home, err := homeDir()
	if err != nil {
		return fspath.Path{}, err
	}
	return fspath.Join(home, fspath.Normalize(name))
}
