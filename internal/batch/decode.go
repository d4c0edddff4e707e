// Package batch decodes whole files of boarding passes and answers aggregate
// queries over the resulting seat ids.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seat-finder/internal/boardingpass"
)

// Progress reporting interval for the decode phase
const progressReportInterval = 100_000

// Options controls DecodeAll.
type Options struct {
	// Workers is the number of parallel decoders. If 0 or negative, uses runtime.NumCPU().
	Workers int

	// SkipInvalid collects bad lines in Report.Rejected instead of aborting
	SkipInvalid bool

	// Progress, if set, receives human readable status lines
	Progress func(string)
}

// LineError ties a parse failure to its 1-based line.
type LineError struct {
	Line int
	Code string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d (%q): %v", e.Line, e.Code, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Report is the outcome of a batch decode.
type Report struct {
	// Passes holds the successfully parsed passes in input order
	Passes []*boardingpass.Pass

	// Rejected holds the lines that failed to parse, in input order
	Rejected []*LineError
}

// IDs returns the seat id of every pass in input order.
func (r *Report) IDs() []int {
	ids := make([]int, len(r.Passes))
	for i, p := range r.Passes {
		ids[i] = p.ID()
	}
	return ids
}

type job struct {
	index int
	code  string
}

// DecodeAll parses every code and decodes its seat on a worker pool.
//
// Without SkipInvalid the first bad line in input order aborts the batch and is
// returned as a *LineError. Each pass is decoded by exactly one worker.
func DecodeAll(ctx context.Context, codes []string, opts Options) (*Report, error) {
	workerPoolSize := opts.Workers
	if workerPoolSize <= 0 {
		workerPoolSize = runtime.NumCPU()
	}

	passes := make([]*boardingpass.Pass, len(codes))
	failures := make([]*LineError, len(codes))

	jobs := make(chan job, workerPoolSize)

	// abort stops queueing after a bad line; every job already queued has a
	// lower index and still runs, so the lowest failure is the first bad line
	abortCtx, abort := context.WithCancel(ctx)
	defer abort()

	var eg errgroup.Group
	for w := 0; w < workerPoolSize; w++ {
		eg.Go(func() error {
			for j := range jobs {
				p, err := boardingpass.Parse(j.code)
				if err != nil {
					failures[j.index] = &LineError{Line: j.index + 1, Code: j.code, Err: err}
					if !opts.SkipInvalid {
						abort()
					}
					continue
				}

				// warm both caches while the pass is owned by this worker
				p.Seat()
				passes[j.index] = p
			}
			return nil
		})
	}

	eg.Go(func() error {
		defer close(jobs)
		for i, code := range codes {
			if abortCtx.Err() != nil {
				return ctx.Err()
			}
			select {
			case jobs <- job{index: i, code: code}:
			case <-abortCtx.Done():
				return ctx.Err()
			}

			if opts.Progress != nil && (i+1)%progressReportInterval == 0 {
				opts.Progress(fmt.Sprintf("    Queued %d/%d passes", i+1, len(codes)))
			}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if !opts.SkipInvalid {
		for _, lineErr := range failures {
			if lineErr != nil {
				return nil, lineErr
			}
		}
	}

	report := &Report{Passes: make([]*boardingpass.Pass, 0, len(codes))}
	for i := range codes {
		if passes[i] != nil {
			report.Passes = append(report.Passes, passes[i])
		} else if failures[i] != nil {
			report.Rejected = append(report.Rejected, failures[i])
		}
	}

	if opts.Progress != nil {
		opts.Progress(fmt.Sprintf("  Decode complete: %d passes decoded, %d rejected",
			len(report.Passes), len(report.Rejected)))
	}

	return report, nil
}
