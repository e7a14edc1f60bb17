package polyclean

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of processing one polyline in a batch. The batch
// functions never modify their input; it is up to the caller to retire the
// original and add its replacements.
type Result struct {
	// Replace holds the polylines that take the original's place.
	Replace []Polyline
	// Retire reports whether the original is to be removed. If Retire is
	// false, Replace is empty.
	Retire bool
	// Removed counts the vertices, polylines or points the operation
	// eliminated, depending on the operation.
	Removed int
}

// Keep is the result for a polyline that stays as it is.
var Keep = Result{}

// Replace returns the result for a polyline that is superseded by ps.
func Replace(removed int, ps ...Polyline) Result {
	return Result{Replace: ps, Retire: true, Removed: removed}
}

// BatchOptions control [Batch].
type BatchOptions struct {
	// Workers is the maximum number of polylines processed at once. If it is
	// zero or negative, runtime.GOMAXPROCS(0) is used.
	Workers int
	// Progress, if not nil, is called once for every polyline that has been
	// processed. Calls never overlap, but they happen on the processing
	// goroutines and not in input order.
	Progress func(i int)
}

// An Op processes the i-th polyline of a batch.
type Op func(i int, p Polyline) (Result, error)

// Batch applies op to every polyline in ps concurrently and returns the
// results in input order. ps must not be modified while Batch runs.
//
// Batch stops early if ctx is cancelled or op fails, in which case it returns
// the first error and no results. Polylines that have not started yet are
// skipped without a progress call.
func Batch(ctx context.Context, ps []Polyline, opts BatchOptions, op Op) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var progressMu sync.Mutex
	results := make([]Result, len(ps))
	scheduled := 0
	for i := range ps {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := op(i, ps[i])
			if err != nil {
				return errors.Wrapf(err, "polyline %d", i)
			}
			results[i] = r
			if opts.Progress != nil {
				progressMu.Lock()
				defer progressMu.Unlock()
				opts.Progress(i)
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil && scheduled < len(ps) {
		// Cancelled between items, after the running ones had finished.
		err = ctx.Err()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			Logger().Warn("batch cancelled",
				slog.Int("items", len(ps)),
				slog.Int("scheduled", scheduled),
				slog.Any("err", err))
		}
		return nil, err
	}

	if l := Logger(); l.Enabled(ctx, slog.LevelDebug) {
		var retired, removed int
		for _, r := range results {
			if r.Retire {
				retired++
			}
			removed += r.Removed
		}
		l.Debug("batch done",
			slog.Int("items", len(ps)),
			slog.Int("workers", workers),
			slog.Int("retired", retired),
			slog.Int("removed", removed))
	}
	return results, nil
}
