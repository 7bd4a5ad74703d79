package threshold

import (
	"errors"
	"fmt"
	"runtime"
	"time"
)

// Sentinel errors for threshold estimation.
var (
	// ErrInvalidGridSize indicates a lattice dimension below 1.
	ErrInvalidGridSize = errors.New("threshold: grid size must be >= 1")
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("threshold: trial count must be >= 1")
	// ErrInvalidWorkers indicates a worker pool smaller than 1.
	ErrInvalidWorkers = errors.New("threshold: worker count must be >= 1")
	// ErrTrialTimeout indicates a trial ran longer than its configured deadline.
	ErrTrialTimeout = errors.New("threshold: trial timed out")
	// ErrUnknownNormalization indicates an unrecognized normalization name.
	ErrUnknownNormalization = errors.New("threshold: unknown normalization")
)

// Rand is the source of uniform draws used by a trial.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Normalization selects the unit of a per-trial result.
type Normalization int

const (
	// PerSite divides the opened-site count by n², the fraction of open sites.
	PerSite Normalization = iota
	// PerDimension divides the opened-site count by n.
	PerDimension
)

// String returns the flag spelling of m.
func (m Normalization) String() string {
	switch m {
	case PerSite:
		return "per-site"
	case PerDimension:
		return "per-dimension"
	default:
		return fmt.Sprintf("Normalization(%d)", int(m))
	}
}

// ParseNormalization is the inverse of Normalization.String.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "per-site":
		return PerSite, nil
	case "per-dimension":
		return PerDimension, nil
	default:
		return PerSite, fmt.Errorf("%w: %q", ErrUnknownNormalization, s)
	}
}

// apply converts an opened-site count on an n×n lattice into a result.
func (m Normalization) apply(opened, n int) float64 {
	if m == PerDimension {
		return float64(opened) / float64(n)
	}

	return float64(opened) / float64(n*n)
}

// Option configures Options. Use with New(ctx, gridSize, trials, opts...).
type Option func(*Options)

// Options holds tunable parameters of an estimation run.
type Options struct {
	// Workers bounds how many trials run at once. Default runtime.GOMAXPROCS(0).
	Workers int

	// Seed is the base seed of the per-trial streams. 0 selects defaultSeed.
	Seed int64

	// RandFactory, if non-nil, supplies the generator of each trial instead of
	// the seeded streams. It is called from worker goroutines and must be safe
	// for concurrent use; each returned Rand is owned by a single trial.
	RandFactory func(trial int) Rand

	// Normalization is the unit of each per-trial result. Default PerSite.
	Normalization Normalization

	// TrialTimeout, if positive, aborts any trial running longer with ErrTrialTimeout.
	TrialTimeout time.Duration

	// OnTrial, if non-nil, is called after each completed trial with its index
	// and result. Calls are serialized but arrive in completion order.
	OnTrial func(trial int, result float64)
}

// DefaultOptions returns Options with:
//   - Workers = runtime.GOMAXPROCS(0)
//   - Seed = 0 (defaultSeed)
//   - Normalization = PerSite
//   - no timeout, no hooks, no custom randomness
func DefaultOptions() Options {
	return Options{
		Workers:       runtime.GOMAXPROCS(0),
		Seed:          0,
		RandFactory:   nil,
		Normalization: PerSite,
		TrialTimeout:  0,
		OnTrial:       nil,
	}
}

// WithWorkers returns an Option that sets the worker pool size.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithSeed returns an Option that sets the base seed of the per-trial streams.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRandFactory returns an Option that installs a custom per-trial generator.
func WithRandFactory(f func(trial int) Rand) Option {
	return func(o *Options) {
		o.RandFactory = f
	}
}

// WithNormalization returns an Option that selects the result unit.
func WithNormalization(m Normalization) Option {
	return func(o *Options) {
		o.Normalization = m
	}
}

// WithTrialTimeout returns an Option that bounds the duration of each trial.
// Non-positive durations disable the bound.
func WithTrialTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.TrialTimeout = d
	}
}

// WithOnTrial returns an Option that installs a per-trial completion hook.
func WithOnTrial(fn func(trial int, result float64)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// Summary bundles the statistics of a finished estimation.
type Summary struct {
	GridSize       int
	Trials         int
	Mean           float64
	StdDev         float64
	ConfidenceLow  float64
	ConfidenceHigh float64
}

// Estimator holds the immutable results of an estimation run.
type Estimator struct {
	gridSize int
	results  []float64
	mean     float64
	stddev   float64
}
