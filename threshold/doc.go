// Package threshold estimates the site-percolation threshold of a square
// lattice by Monte Carlo simulation.
//
// What:
//
//   - Simulate runs one trial: open uniformly random closed sites of a fresh
//     percolation.Lattice until it percolates, and report how many were opened.
//     Fill does the same on a lattice the caller already holds.
//   - New runs many independent trials on a bounded worker pool and keeps one
//     normalized result per trial.
//   - Mean, StdDev, ConfidenceLow and ConfidenceHigh summarize the results:
//     sample mean, Bessel-corrected sample standard deviation and the 95%
//     normal-approximation interval mean ∓ 1.96·s/√T.
//
// Determinism:
//
//   - Trial i draws from its own *rand.Rand seeded with a SplitMix64 mix of
//     (seed, i). Results are stored by trial index, so the output is identical
//     for any worker count and any completion order.
//   - Seed 0 selects a fixed default seed; callers wanting fresh randomness
//     pass a time-derived seed themselves.
//   - WithRandFactory replaces the generator entirely (scripted scenarios).
//
// Normalization:
//
//   - PerSite (default): opened / n², the percolation threshold p* ≈ 0.5927.
//   - PerDimension:      opened / n, grid-size units.
//
// Options:
//
//   - WithWorkers(n)       pool size (default GOMAXPROCS).
//   - WithSeed(seed)       base seed for per-trial streams.
//   - WithRandFactory(f)   custom per-trial randomness.
//   - WithNormalization(m) result unit.
//   - WithTrialTimeout(d)  defensive per-trial deadline.
//   - WithOnTrial(fn)      hook called after each completed trial.
//
// Errors:
//
//   - ErrInvalidGridSize, ErrInvalidTrials, ErrInvalidWorkers: rejected inputs.
//   - ErrTrialTimeout: a trial exceeded WithTrialTimeout.
//   - ErrUnknownNormalization: ParseNormalization got an unknown name.
//   - context.Canceled / context.DeadlineExceeded from the caller's context.
//
// Complexity: O(T · n² · α(n²)) time overall, O(W · n²) memory for W workers.
package threshold
