//go:build windows

package fcdiff

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmapFile maps the first size bytes of f read-only via a Windows file
// mapping object and returns the mapped slice along with a closer that
// unmaps the view and closes the mapping handle.
func mmapFile(f *os.File, size int64) ([]byte, func() error, error) {
	if size == 0 {
		return nil, func() error { return nil }, nil
	}
	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, windows.PAGE_READONLY, 0, 0, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("CreateFileMapping %s: %w", f.Name(), err)
	}
	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, nil, fmt.Errorf("MapViewOfFile %s: %w", f.Name(), err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	closer := func() error {
		err := windows.UnmapViewOfFile(addr)
		windows.CloseHandle(h)
		return err
	}
	return data, closer, nil
}
