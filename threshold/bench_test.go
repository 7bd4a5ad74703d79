package threshold_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/percolation/threshold"
)

// BenchmarkNew_Serial runs 50 trials on a 64×64 lattice with one worker.
func BenchmarkNew_Serial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := threshold.New(context.Background(), 64, 50, threshold.WithWorkers(1)); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Parallel runs the same workload on the default pool.
func BenchmarkNew_Parallel(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := threshold.New(context.Background(), 64, 50); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}
