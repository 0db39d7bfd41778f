//go:build linux || darwin || freebsd || netbsd || openbsd

package logscan

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// openMappedSource memory-maps path read-only. The mapping is dropped only
// when the returned source's Close is called; borrowers must not retain
// the byte slice past that point.
func openMappedSource(path string) (*byteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("cannot stat %q: %w", path, err)
	}
	n := int(fi.Size())
	if n == 0 {
		return &byteSource{path: path, data: nil}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, n, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("cannot mmap %q: %w", path, err)
	}
	return &byteSource{
		path: path,
		data: data,
		closer: func() error {
			return unix.Munmap(data)
		},
	}, nil
}
