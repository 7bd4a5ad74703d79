package threshold

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// New runs trials independent simulations on gridSize×gridSize lattices and
// returns their summary.
//
// Behavior:
//  1. Validate gridSize, trials and the worker count.
//  2. Start an errgroup bounded to Workers goroutines; trial i writes only
//     results[i], so no locking is needed for the results themselves.
//  3. Each trial obtains its own Rand (seeded stream or RandFactory), runs
//     Simulate under an optional per-trial deadline, normalizes the count and
//     fires OnTrial.
//  4. The first failure cancels the remaining trials and is returned.
//  5. Mean and standard deviation are computed once, single-threaded.
//
// A nil ctx is treated as context.Background().
// Complexity: O(trials · n² · α(n²)) total work spread across Workers.
func New(ctx context.Context, gridSize, trials int, opts ...Option) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if gridSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, gridSize)
	}
	if trials < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, trials)
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, o.Workers)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	factory := o.RandFactory
	if factory == nil {
		factory = seededFactory(o.Seed)
	}

	results := make([]float64, trials)
	var hookMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opened, err := runTrial(gctx, gridSize, factory(i), o.TrialTimeout)
			if err != nil {
				return fmt.Errorf("threshold: trial %d: %w", i, err)
			}
			results[i] = o.Normalization.apply(opened, gridSize)

			if o.OnTrial != nil {
				hookMu.Lock()
				o.OnTrial(i, results[i])
				hookMu.Unlock()
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Report the caller's cancellation as-is rather than the trial that noticed it.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}

	return &Estimator{
		gridSize: gridSize,
		results:  results,
		mean:     Mean(results),
		stddev:   StdDev(results),
	}, nil
}

// runTrial wraps Simulate with the optional per-trial deadline.
func runTrial(ctx context.Context, gridSize int, rng Rand, timeout time.Duration) (int, error) {
	if timeout <= 0 {
		return Simulate(ctx, gridSize, rng)
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opened, err := Simulate(tctx, gridSize, rng)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return opened, fmt.Errorf("%w after %s", ErrTrialTimeout, timeout)
	}

	return opened, err
}

// GridSize returns the lattice dimension used by every trial.
func (e *Estimator) GridSize() int {
	return e.gridSize
}

// Trials returns the number of completed trials.
func (e *Estimator) Trials() int {
	return len(e.results)
}

// Results returns a copy of the per-trial results, indexed by trial.
func (e *Estimator) Results() []float64 {
	out := make([]float64, len(e.results))
	copy(out, e.results)

	return out
}

// Mean returns the sample mean of the per-trial results.
func (e *Estimator) Mean() float64 {
	return e.mean
}

// StdDev returns the Bessel-corrected sample standard deviation of the
// per-trial results; 0 for a single trial.
func (e *Estimator) StdDev() float64 {
	return e.stddev
}

// ConfidenceLow returns the low endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceLow() float64 {
	low, _ := ConfidenceInterval(e.mean, e.stddev, len(e.results))
	return low
}

// ConfidenceHigh returns the high endpoint of the 95% confidence interval.
func (e *Estimator) ConfidenceHigh() float64 {
	_, high := ConfidenceInterval(e.mean, e.stddev, len(e.results))
	return high
}

// Summary returns all statistics at once.
func (e *Estimator) Summary() Summary {
	low, high := ConfidenceInterval(e.mean, e.stddev, len(e.results))

	return Summary{
		GridSize:       e.gridSize,
		Trials:         len(e.results),
		Mean:           e.mean,
		StdDev:         e.stddev,
		ConfidenceLow:  low,
		ConfidenceHigh: high,
	}
}
