package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/threshold"
)

// Exit statuses.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64 // EX_USAGE: bad arguments or flags
)

// errUsage marks errors caused by malformed command-line input.
var errUsage = errors.New("usage")

// config holds parsed flags.
type config struct {
	workers  int
	seed     int64
	norm     normalizationFlag
	timeout  time.Duration
	jsonOut  bool
	dotPath  string
	verbose  bool
	logLevel slog.LevelVar
}

// exitCode maps an Execute error to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	default:
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{workers: runtime.GOMAXPROCS(0)}
	cfg.logLevel.Set(slog.LevelWarn)

	cmd := &cobra.Command{
		Use:   "percolation <n> <t>",
		Short: "Estimate the percolation threshold of an n-by-n lattice from t Monte Carlo trials",
		Long: "Each trial opens uniformly random sites of a fresh n-by-n lattice until the top row\n" +
			"connects to the bottom row, and records the fraction of sites opened. The summary\n" +
			"reports the sample mean, standard deviation and 95% confidence interval.",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", errUsage, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	f := cmd.Flags()
	f.IntVarP(&cfg.workers, "workers", "w", cfg.workers, "number of trials run concurrently")
	f.Int64VarP(&cfg.seed, "seed", "s", 0, "base random seed (default: derived from the clock)")
	f.Var(&cfg.norm, "normalize", "result unit: per-site (opened/n²) or per-dimension (opened/n)")
	f.DurationVar(&cfg.timeout, "timeout", 0, "abort any trial running longer than this (0 disables)")
	f.BoolVar(&cfg.jsonOut, "json", false, "print the summary as one JSON object")
	f.StringVar(&cfg.dotPath, "dot", "", "also write one sample lattice, opened until it percolates, as Graphviz DOT to this file")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every finished trial (implies --log-level=debug)")
	f.Var(levelFlag{&cfg.logLevel}, "log-level", "stderr log level: debug, info, warn, error")

	return cmd
}

func run(cmd *cobra.Command, cfg *config, args []string) error {
	n, err := parseCount("n", args[0])
	if err != nil {
		return err
	}
	t, err := parseCount("t", args[1])
	if err != nil {
		return err
	}

	if cfg.verbose {
		cfg.logLevel.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: &cfg.logLevel}))
	ctx := cmd.Context()

	seed := cfg.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	opts := []threshold.Option{
		threshold.WithWorkers(cfg.workers),
		threshold.WithSeed(seed),
		threshold.WithNormalization(cfg.norm.value),
		threshold.WithTrialTimeout(cfg.timeout),
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		opts = append(opts, threshold.WithOnTrial(func(trial int, result float64) {
			logger.Debug("trial finished", "trial", trial, "result", result)
		}))
	}

	start := time.Now()
	est, err := threshold.New(ctx, n, t, opts...)
	if err != nil {
		if errors.Is(err, threshold.ErrInvalidGridSize) || errors.Is(err, threshold.ErrInvalidTrials) ||
			errors.Is(err, threshold.ErrInvalidWorkers) {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		return err
	}
	logger.Info("estimation finished",
		"trials", humanize.Comma(int64(t)),
		"sites_per_trial", humanize.Comma(int64(n)*int64(n)),
		"workers", cfg.workers,
		"seed", seed,
		"elapsed", time.Since(start))

	if cfg.dotPath != "" {
		if err := writeDOT(ctx, cfg.dotPath, n, seed); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Info("sample lattice written", "path", cfg.dotPath)
	}

	return printSummary(cmd.OutOrStdout(), est.Summary(), cfg.norm.value, cfg.jsonOut)
}

// parseCount parses a positional argument as an unsigned integer that fits an int.
func parseCount(name, s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v > math.MaxInt {
		return 0, fmt.Errorf("%w: %s must be an unsigned integer, got %q", errUsage, name, s)
	}

	return int(v), nil
}

// formatFloat renders v in plain decimal notation with the fewest digits
// that round-trip.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func printSummary(w io.Writer, s threshold.Summary, unit threshold.Normalization, asJSON bool) error {
	if asJSON {
		out, err := summaryJSON(s, unit)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	_, err := fmt.Fprintf(w, "mean: %s\nstd-dev %s\nconfidence low %s\nconfidence high %s\n",
		formatFloat(s.Mean), formatFloat(s.StdDev), formatFloat(s.ConfidenceLow), formatFloat(s.ConfidenceHigh))
	return err
}

// summaryJSON builds {"grid_size":..,"trials":..,"normalization":..,"mean":..,
// "stddev":..,"confidence":{"low":..,"high":..}}.
func summaryJSON(s threshold.Summary, unit threshold.Normalization) (string, error) {
	fields := []struct {
		path  string
		value any
	}{
		{"grid_size", s.GridSize},
		{"trials", s.Trials},
		{"normalization", unit.String()},
		{"mean", s.Mean},
		{"stddev", s.StdDev},
		{"confidence.low", s.ConfidenceLow},
		{"confidence.high", s.ConfidenceHigh},
	}

	out := "{}"
	var err error
	for _, f := range fields {
		if out, err = sjson.Set(out, f.path, f.value); err != nil {
			return "", fmt.Errorf("json field %s: %w", f.path, err)
		}
	}

	return out, nil
}

// writeDOT runs one extra seeded trial and saves its final lattice.
func writeDOT(ctx context.Context, path string, n int, seed int64) error {
	l, err := percolation.New(n)
	if err != nil {
		return err
	}
	if _, err := threshold.Fill(ctx, l, rand.New(rand.NewSource(seed))); err != nil {
		return err
	}
	dot, err := l.DOT()
	if err != nil {
		return err
	}

	return os.WriteFile(path, []byte(dot), 0o644)
}
