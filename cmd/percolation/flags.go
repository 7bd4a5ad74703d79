package main

import (
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/percolation/threshold"
)

var (
	_ pflag.Value = (*normalizationFlag)(nil)
	_ pflag.Value = levelFlag{}
)

// normalizationFlag exposes threshold.Normalization as a pflag.Value.
type normalizationFlag struct {
	value threshold.Normalization
}

func (f *normalizationFlag) String() string { return f.value.String() }

func (f *normalizationFlag) Set(s string) error {
	m, err := threshold.ParseNormalization(s)
	if err != nil {
		return err
	}
	f.value = m

	return nil
}

func (f *normalizationFlag) Type() string { return "unit" }

// levelFlag exposes a slog.LevelVar as a pflag.Value ("debug", "info", "warn", "error").
type levelFlag struct {
	level *slog.LevelVar
}

func (f levelFlag) String() string {
	if f.level == nil {
		return slog.LevelInfo.String()
	}
	return f.level.Level().String()
}

func (f levelFlag) Set(s string) error { return f.level.UnmarshalText([]byte(s)) }

func (f levelFlag) Type() string { return "level" }
