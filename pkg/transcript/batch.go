package transcript

import (
	"context"
	"fmt"
	"sync"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/logging"
)

// DefaultConcurrency is the default number of parser workers.
const DefaultConcurrency = 4

// ParseAll assembles every file in paths and returns the per-file results in
// the same order paths were given, whatever the concurrency. Files share no
// state while parsing, so they are handed to a bounded worker pool;
// concurrency 1 degenerates to a sequential pass with identical output.
//
// An empty paths slice is a caller error. The first file failure aborts the
// whole batch: partial results are never returned.
func ParseAll(ctx context.Context, paths []string, concurrency int, log logging.Logger) ([]FileRecords, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transcript files to parse: %w", cserrors.ErrInvalidArgument)
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > len(paths) {
		concurrency = len(paths)
	}
	if log == nil {
		log = logging.NewNopLogger()
	}

	// Indexed results keep the output in input order without a merge sort.
	results := make([]FileRecords, len(paths))
	errs := make([]error, len(paths))

	jobs := make(chan int, len(paths))
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					errs[i] = ctx.Err()
					continue
				}
				records, err := AssembleFile(paths[i])
				if err != nil {
					log.Error("failed to parse transcript", logging.Err(err), logging.F("file", paths[i]))
					errs[i] = err
					continue
				}
				log.Debug("parsed transcript", logging.F("file", paths[i]), logging.F("records", len(records)))
				results[i] = FileRecords{Path: paths[i], Records: records}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
