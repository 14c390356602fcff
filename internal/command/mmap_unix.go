//go:build unix

package command

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the named file read-only. Files that cannot be mapped by
// size (pipes, devices, procfs entries reporting 0 bytes) are read instead.
func mapFile(name string) ([]byte, func() error, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !st.Mode().IsRegular() || st.Size() == 0 {
		defer f.Close()
		b, err := io.ReadAll(f)
		if err != nil {
			return nil, nil, err
		}
		return b, noRelease, nil
	}
	m, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if err := f.Close(); err != nil {
		if uerr := unix.Munmap(m); uerr != nil {
			Clog.Printf("Failed to unmap '%s': %s", name, uerr)
		}
		return nil, nil, err
	}
	return m, func() error { return unix.Munmap(m) }, nil
}
