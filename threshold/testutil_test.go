package threshold_test

import (
	"sync"

	"github.com/katalvlaran/percolation/threshold"
)

// scripted replays a fixed sequence of draws, then repeats the last one.
type scripted struct {
	draws []int
	next  int
}

func (s *scripted) Intn(n int) int {
	v := s.draws[s.next]
	if s.next < len(s.draws)-1 {
		s.next++
	}

	return v % n
}

// scriptFactory hands trial i its own replay of scripts[i % len(scripts)].
func scriptFactory(scripts ...[]int) func(trial int) threshold.Rand {
	return func(trial int) threshold.Rand {
		return &scripted{draws: scripts[trial%len(scripts)]}
	}
}

// stuck always draws the same site, so a lattice larger than 1×1 never percolates.
type stuck struct{}

func (stuck) Intn(int) int { return 0 }

// trialRecorder collects OnTrial calls.
type trialRecorder struct {
	mu   sync.Mutex
	seen map[int]float64
}

func (r *trialRecorder) hook(trial int, result float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen == nil {
		r.seen = make(map[int]float64)
	}
	r.seen[trial] = result
}
