package core

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Pool struct {
	workerCount int
}

func NewPool(workerCount int) *Pool {
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
	}
	return &Pool{workerCount: workerCount}
}

// Process counts lines of files with a fixed set of workers. Files that
// cannot be read become warnings. Results keep the input order.
func (p *Pool) Process(ctx context.Context, files []fileEntry) ([]fileResult, []ScanWarning, error) {
	type result struct {
		file *fileResult
		warn *ScanWarning
	}

	results := make([]result, len(files))
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workerCount; i++ {
		g.Go(func() error {
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				file, warn := countEntry(files[idx])
				results[idx] = result{file: file, warn: warn}
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobs)
		for i := range files {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var counted []fileResult
	var warnings []ScanWarning
	for _, r := range results {
		if r.file != nil {
			counted = append(counted, *r.file)
		}
		if r.warn != nil {
			warnings = append(warnings, *r.warn)
		}
	}
	return counted, warnings, nil
}

func countEntry(entry fileEntry) (*fileResult, *ScanWarning) {
	if entry.sniff {
		text, err := isTextFile(entry.abs)
		if err != nil {
			return nil, &ScanWarning{Path: entry.rel, Message: err.Error()}
		}
		if !text {
			return nil, nil
		}
	}

	lines, modTime, err := countFile(entry.abs)
	if err != nil {
		return nil, &ScanWarning{Path: entry.rel, Message: err.Error()}
	}
	return &fileResult{
		rel:     entry.rel,
		ext:     entry.ext,
		lang:    entry.lang,
		lines:   lines,
		modTime: modTime,
	}, nil
}
