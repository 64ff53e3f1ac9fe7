package fcdiff

import (
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// quickDigest returns the BLAKE3 digest of the file at path without
// holding its contents in memory beyond the hasher's own buffering. The
// binary comparator uses equal digests as a fast path for files above
// SlidingWindowThreshold: two files that hash identically are reported
// Identical without the byte-by-byte scan, since BLAKE3 collisions are
// not a practical concern for this use case.
func quickDigest(path string) ([32]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("io error: open %s: %w", path, err)
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return [32]byte{}, fmt.Errorf("io error: hash %s: %w", path, err)
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// digestsEqual hashes both paths and reports whether they match. It is
// the large-binary-file fast path: a backup-verification style
// re-comparison is the common case above SlidingWindowThreshold, and a
// sequential BLAKE3 pass over each file is cheaper than locating every
// differing offset when the caller only needs to know "same or not".
func digestsEqual(pathA, pathB string) (bool, error) {
	digestA, err := quickDigest(pathA)
	if err != nil {
		return false, err
	}
	digestB, err := quickDigest(pathB)
	if err != nil {
		return false, err
	}
	return digestA == digestB, nil
}
