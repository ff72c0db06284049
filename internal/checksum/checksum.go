// Package checksum computes file digests for post-copy verification.
package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"
)

func newHash(algorithm string) (hash.Hash, error) {
	switch strings.ToLower(algorithm) {
	case "md5":
		return md5.New(), nil
	case "sha1":
		return sha1.New(), nil
	case "sha256":
		return sha256.New(), nil
	case "sha512":
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}
}

// Compute returns the hex digest of the file at path under the given
// algorithm (md5, sha1, sha256 or sha512).
func Compute(path, algorithm string) (string, error) {
	h, err := newHash(algorithm)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Equal reports whether two files have the same digest under algorithm.
func Equal(pathA, pathB, algorithm string) (bool, error) {
	a, err := Compute(pathA, algorithm)
	if err != nil {
		return false, err
	}
	b, err := Compute(pathB, algorithm)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(a, b), nil
}
