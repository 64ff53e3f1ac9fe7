//go:build unix

package fcdiff

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mmapFile maps the first size bytes of f read-only and returns the
// mapped slice along with a closer that unmaps it. size must not exceed
// the file's actual length.
func mmapFile(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return nil, func() error { return nil }, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %s: %w", f.Name(), err)
	}
	closer := func() error { return unix.Munmap(data) }
	return data, closer, nil
}
