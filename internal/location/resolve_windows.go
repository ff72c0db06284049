//go:build windows

package location

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tympanix/dirkit/internal/fspath"
)

func resolveNative(t Type) (fspath.Path, error) {
	switch t {
	case Home:
		return homeDir()
	case Documents:
		return homeSub("Documents")
	case Music:
		return homeSub("Music")
	case Movies:
		return homeSub("Videos")
	case Desktop:
		return homeSub("Desktop")
	case UserAppData:
		if v := os.Getenv("APPDATA"); v != "" {
			return fspath.Normalize(v), nil
		}
		return homeSub("AppData\\Roaming")
	case CommonAppData:
		if v := os.Getenv("ProgramData"); v != "" {
			return fspath.Normalize(v), nil
		}
		return fspath.Normalize("C:\\ProgramData"), nil
	case GlobalApps:
		if v := os.Getenv("ProgramFiles"); v != "" {
			return fspath.Normalize(v), nil
		}
		return fspath.Normalize("C:\\Program Files"), nil
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
