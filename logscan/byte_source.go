package logscan

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// byteSource presents one input file as a contiguous, immutable byte
// slice with a known length. Plain files are memory-mapped read-only;
// compressed files cannot be mapped as a sparse view, so they are
// decoded once into an owned buffer and scanned identically from then on.
type byteSource struct {
	path       string
	data       []byte
	compressed bool
	closer     func() error
}

func (b *byteSource) Bytes() []byte    { return b.data }
func (b *byteSource) Len() int64       { return int64(len(b.data)) }
func (b *byteSource) Path() string     { return b.path }
func (b *byteSource) Compressed() bool { return b.compressed }

func (b *byteSource) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer()
}

// openByteSource opens path as a byte source, mapping it if possible and
// falling back to a fully-decoded in-memory buffer for compressed inputs.
func openByteSource(path string) (*byteSource, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return openCompressedSource(path, func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		})
	case strings.HasSuffix(path, ".zst"):
		return openCompressedSource(path, func(r io.Reader) (io.Reader, error) {
			return zstd.NewReader(r)
		})
	default:
		return openMappedSource(path)
	}
}

func openCompressedSource(path string, newReader func(io.Reader) (io.Reader, error)) (*byteSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q: %w", path, err)
	}
	defer f.Close()

	r, err := newReader(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decompress %q: %w", path, err)
	}
	if rc, ok := r.(io.Closer); ok {
		defer rc.Close()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read decompressed %q: %w", path, err)
	}
	return &byteSource{path: path, data: data, compressed: true}, nil
}
