package logscan

import "bytes"

// defaultChunkSize is the target chunk size fed to each scan worker.
const defaultChunkSize = 4 * 1024 * 1024

// chunk is a line-aligned byte range [Begin, End) into a byteSource's data.
type chunk struct {
	Begin int64
	End   int64
}

// splitChunks finds newline-aligned chunk boundaries inside data without
// copying, per the line-splitter algorithm:
//
//  1. start at b = 0.
//  2. for each subsequent boundary, seek forward from min(b+chunkSize, N)
//     to the next '\n'; the byte after it is the new boundary. If none is
//     found before N, the boundary is N.
//  3. stop when b == N.
//
// Every returned chunk's first byte starts a line; every chunk but
// possibly the last ends with '\n' or the file end. Chunks cover data
// exactly once, with no gaps or overlaps.
func splitChunks(data []byte, chunkSize int) []chunk {
	n := int64(len(data))
	if n == 0 {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	var chunks []chunk
	b := int64(0)
	for b < n {
		seekFrom := b + int64(chunkSize)
		if seekFrom > n {
			seekFrom = n
		}
		var end int64
		if seekFrom >= n {
			end = n
		} else if idx := bytes.IndexByte(data[seekFrom:], '\n'); idx < 0 {
			end = n
		} else {
			end = seekFrom + int64(idx) + 1
		}
		chunks = append(chunks, chunk{Begin: b, End: end})
		b = end
	}
	return chunks
}

// lineIterator walks newline-terminated (or EOF-terminated) lines inside
// [c.Begin, c.End) of data, yielding LineSlice byte ranges with the
// newline excluded.
type lineIterator struct {
	data []byte
	pos  int64
	end  int64
}

func newLineIterator(data []byte, c chunk) *lineIterator {
	return &lineIterator{data: data, pos: c.Begin, end: c.End}
}

// next returns the next line's byte range within data and whether one was
// found. Empty lines are yielded (start == end); format scanners are
// responsible for rejecting them.
func (li *lineIterator) next() (start, end int64, ok bool) {
	if li.pos >= li.end {
		return 0, 0, false
	}
	start = li.pos
	rel := bytes.IndexByte(li.data[li.pos:li.end], '\n')
	if rel < 0 {
		end = li.end
		li.pos = li.end
	} else {
		end = li.pos + int64(rel)
		li.pos = end + 1
	}
	return start, end, true
}
