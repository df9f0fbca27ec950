package sim

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/hiresim/internal/domain/model"
)

// Summary aggregates a batch of trial results. Averages over hire
// outcomes are zero when no trial hired anyone.
type Summary struct {
	Trials        int     // trials that completed
	Hires         int     // trials that ended with a hire
	HireRate      float64 // Hires / Trials
	TotalScreened int     // candidates processed across all trials
	AvgScreened   float64 // candidates processed per trial
	AvgFinalScore float64 // mean pipeline score of hired candidates
	AvgTrueSkill  float64 // mean true skill of hired candidates
	AvgHours      float64 // mean interview hours spent per hire
	AvgOffer      float64 // mean final offer per hire
}

// Stats collects trial results as workers finish them. Safe for
// concurrent use; it implements worker.Collector.
type Stats struct {
	mu      sync.Mutex
	results map[int]model.TrialResult
}

// NewStats returns an empty collector.
func NewStats() *Stats {
	return &Stats{
		results: make(map[int]model.TrialResult),
	}
}

// Collect records one trial result, keyed by trial index.
func (s *Stats) Collect(_ context.Context, r model.TrialResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.Trial.Index] = r
}

// Summary folds the collected results in trial-index order, so the float
// sums of identically seeded batches match regardless of how worker
// scheduling interleaved completions.
func (s *Stats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	indices := make([]int, 0, len(s.results))
	for i := range s.results {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	out := Summary{Trials: len(s.results)}
	var score, skill, hours, offer float64
	for _, i := range indices {
		r := s.results[i]
		out.TotalScreened += r.Screened
		if !r.Hired {
			continue
		}
		out.Hires++
		score += r.FinalScore
		skill += r.TrueSkill
		hours += r.TotalTime
		offer += r.Offer
	}

	if out.Trials > 0 {
		out.HireRate = float64(out.Hires) / float64(out.Trials)
		out.AvgScreened = float64(out.TotalScreened) / float64(out.Trials)
	}
	if out.Hires > 0 {
		n := float64(out.Hires)
		out.AvgFinalScore = score / n
		out.AvgTrueSkill = skill / n
		out.AvgHours = hours / n
		out.AvgOffer = offer / n
	}
	return out
}
