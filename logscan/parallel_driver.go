package logscan

import (
	"context"
	"sync"
	"time"

	"github.com/forensiclog/logscan-core/internal/logger"
)

// cancelCheckInterval is how many bytes a chunk worker processes between
// context.Err() checks, per the design's ~64 KiB cancellation granularity.
const cancelCheckInterval = 64 * 1024

// Run executes a resolved plan and produces a Result, per the data flow:
// files -> chunks (in parallel) -> format scanner x predicate x
// accumulator -> fused accumulator -> shaper.
func Run(ctx context.Context, q *Query, p *plan) (Result, error) {
	res := Result{Shape: q.Shape, Plan: p.description}

	if q.DryRun {
		return res, nil
	}

	fused := p.factory()
	for fileIndex, path := range p.files {
		select {
		case <-ctx.Done():
			return Result{}, canceledError("canceled before file "+path, ctx.Err())
		default:
		}

		src, err := openByteSource(path)
		if err != nil {
			if fileIndex == 0 {
				return Result{}, wrapError(KindUnreadableFile, path, err)
			}
			res.Warnings = append(res.Warnings, "skipped "+path+": "+err.Error())
			continue
		}

		start := time.Now()
		fileAcc, scannedBytes, err := scanFile(ctx, src, fileIndex, p)
		elapsed := time.Since(start)
		src.Close()
		if err != nil {
			// Canceled and UnknownFormat are whole-query failures per the
			// error taxonomy's propagation policy: they fail the query
			// atomically rather than degrading to a warning, unlike a
			// merely unreadable or unparsable individual file.
			if IsKind(err, KindCanceled) || IsKind(err, KindUnknownFormat) {
				return Result{}, err
			}
			logger.Infof("logscan: skipping %s: %s", path, err)
			res.Warnings = append(res.Warnings, "skipped "+path+": "+err.Error())
			continue
		}

		fused.mergeState(fileAcc)
		res.ScannedFiles = append(res.ScannedFiles, ScannedFile{
			Path: path, Bytes: scannedBytes, Compressed: src.Compressed(), Elapsed: elapsed,
		})
	}

	shaped, err := shapeResult(fused, shapeOptions{
		shape:         q.Shape,
		limit:         p.limit,
		chronological: q.Chronological,
	})
	if err != nil {
		return Result{}, err
	}
	shaped.ScannedFiles = res.ScannedFiles
	shaped.Warnings = res.Warnings
	shaped.Plan = p.description
	return shaped, nil
}

// scanFile splits one file into chunks and fans them out to a worker pool
// sized to hardware parallelism, per §4.6's scheduling model: each worker
// owns its chunk, its scanner state, and a local accumulator, with no
// cross-worker communication until the final fuse.
func scanFile(ctx context.Context, src *byteSource, fileIndex int, p *plan) (accumulator, int64, error) {
	data := src.Bytes()
	format, err := resolveFormat(p.format, data)
	if err != nil {
		return nil, 0, err
	}

	chunks := splitChunks(data, p.chunkSize)
	if len(chunks) == 0 {
		return p.factory(), 0, nil
	}

	var header map[string]int
	scanChunks := chunks
	if format == FormatCSV && p.csvHasHeader && len(chunks) > 0 {
		if hdr, rest, ok := splitCSVHeaderChunk(data, chunks); ok {
			header = hdr
			scanChunks = rest
		}
	}

	workers := p.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(scanChunks) {
		workers = len(scanChunks)
	}

	work := make(chan chunk)
	results := make(chan accumulator, len(scanChunks))
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			ls := newLineScanner(format, firstLineOf(data), p.loc, p.refYear)
			ls.setCSVHeader(header)
			defer ls.close()

			acc := p.factory()
			for c := range work {
				if err := scanChunk(ctx, data, c, fileIndex, ls, p.pred, acc); err != nil {
					errs <- err
					return
				}
			}
			results <- acc
		}()
	}

	go func() {
		defer close(work)
		for _, c := range scanChunks {
			select {
			case work <- c:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)
	close(errs)

	if err := <-errs; err != nil {
		return nil, 0, err
	}
	// A worker can drain the rest of a closed work channel and return
	// cleanly even when cancellation is what closed it early: check
	// explicitly rather than trust the (possibly empty) errs channel.
	if err := ctx.Err(); err != nil {
		return nil, 0, canceledError("canceled mid-scan", err)
	}

	fused := p.factory()
	for acc := range results {
		fused.mergeState(acc)
	}
	return fused, int64(len(data)), nil
}

// splitCSVHeaderChunk removes a leading header line from the first chunk
// when the plan requests it, returning the parsed header map and the
// remaining chunks to scan for data rows.
func splitCSVHeaderChunk(data []byte, chunks []chunk) (map[string]int, []chunk, bool) {
	first := chunks[0]
	li := newLineIterator(data, first)
	start, end, ok := li.next()
	if !ok {
		return nil, chunks, false
	}
	hdr := csvHeader(data[start:end], detectDelimiter(data[start:end]))
	rest := make([]chunk, len(chunks))
	copy(rest, chunks)
	rest[0] = chunk{Begin: end, End: first.End}
	if rest[0].Begin >= rest[0].End && len(rest) > 1 {
		rest = rest[1:]
	}
	return hdr, rest, true
}

func scanChunk(ctx context.Context, data []byte, c chunk, fileIndex int, ls *lineScanner, pred *predicateAnd, acc accumulator) error {
	li := newLineIterator(data, c)
	nextCheck := c.Begin
	for {
		start, end, ok := li.next()
		if !ok {
			break
		}
		if start >= nextCheck {
			select {
			case <-ctx.Done():
				return canceledError("canceled mid-chunk", ctx.Err())
			default:
			}
			nextCheck = start + cancelCheckInterval
		}
		line := data[start:end]
		r, ok := ls.scan(line)
		if !ok {
			continue
		}
		if pred.empty() || pred.accept(r) {
			acc.updateForLine(r, linePos{fileIndex: fileIndex, chunkBegin: c.Begin, lineOffset: start - c.Begin})
		}
	}
	return nil
}
