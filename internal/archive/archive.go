// Package archive exports a directory tree as a compressed tarball,
// enumerating it with dirscan so the wildcard filter applies to file names at
// every level.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/tympanix/dirkit/internal/dirscan"
)

// Format selects the compression applied around the tar stream.
type Format string

const (
	FormatGzip Format = "gzip"
	FormatZstd Format = "zstd"
)

func (f Format) String() string {
	return string(f)
}

// Extension returns the conventional file extension for the format.
func (f Format) Extension() string {
	if f == FormatZstd {
		return ".tar.zst"
	}
	return ".tar.gz"
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "gzip", "gz":
		return FormatGzip, nil
	case "zstd", "zst":
		return FormatZstd, nil
	default:
		return "", fmt.Errorf("unsupported compression format %q: must be gzip or zstd", s)
	}
}

// DetectFormat picks the format from a destination filename, defaulting to
// gzip.
func DetectFormat(filename string) Format {
	if strings.HasSuffix(filename, ".tar.zst") {
		return FormatZstd
	}
	return FormatGzip
}

// Create writes a compressed tar archive of srcDir to w. Regular files whose
// names match wildcard are included with paths relative to srcDir;
// directories are always descended into. Symlinks are skipped.
func Create(srcDir string, w io.Writer, wildcard string, format Format) error {
	switch format {
	case FormatZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		if err := writeTar(srcDir, zw, wildcard); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	default:
		gw := gzip.NewWriter(w)
		if err := writeTar(srcDir, gw, wildcard); err != nil {
			gw.Close()
			return err
		}
		return gw.Close()
	}
}

func writeTar(srcDir string, w io.Writer, wildcard string) error {
	tw := tar.NewWriter(w)
	if err := addTree(tw, srcDir, "", wildcard); err != nil {
		tw.Close()
		return err
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("close tar writer: %w", err)
	}
	return nil
}

// addTree walks one directory level with two passes: matched files first,
// then every subdirectory regardless of the wildcard.
func addTree(tw *tar.Writer, dir, rel, wildcard string) error {
	it, err := dirscan.NewIterator(dir, wildcard)
	if err != nil {
		return err
	}
	for it.Next() {
		e := it.Entry()
		if e.Dir || e.Symlink {
			continue
		}
		if err := addFile(tw, path.Join(dir, e.Name), path.Join(rel, e.Name)); err != nil {
			it.Close()
			return err
		}
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("enumerate %s: %w", dir, err)
	}

	sub, err := dirscan.NewIterator(dir, "*")
	if err != nil {
		return err
	}
	defer sub.Close()
	for sub.Next() {
		e := sub.Entry()
		if !e.Dir || e.Symlink {
			continue
		}
		if err := addTree(tw, path.Join(dir, e.Name), path.Join(rel, e.Name), wildcard); err != nil {
			return err
		}
	}
	return sub.Err()
}

func addFile(tw *tar.Writer, fullPath, relPath string) error {
	f, err := os.Open(fullPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", fullPath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", fullPath, err)
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("tar header for %s: %w", fullPath, err)
	}
	header.Name = relPath

	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("write tar header for %s: %w", relPath, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	return nil
}
