//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package logscan

import (
	"fmt"
	"os"
)

// openMappedSource falls back to a full read for platforms without a
// mmap syscall wired up here, mirroring the teacher's own -fs.disableMmap
// fallback for 32-bit architectures: correctness first, mapping is a
// throughput optimization, not a semantic requirement.
func openMappedSource(path string) (*byteSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return &byteSource{path: path, data: data}, nil
}
