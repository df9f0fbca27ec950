// Package app provides the candidate-search orchestrator: it draws
// candidates from a population source, runs each through the interview
// pipeline, prices passing candidates, and stops on the first acceptable
// hire or pool exhaustion.
package app

import (
	"context"
	"fmt"

	"github.com/okian/hiresim/internal/domain/compensation"
	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/internal/domain/pipeline"
	"github.com/okian/hiresim/internal/domain/population"
	"github.com/okian/hiresim/internal/domain/screened"
	"github.com/okian/hiresim/pkg/logger"
	"github.com/okian/hiresim/pkg/metrics"
)

// Default search configuration constants.
const (
	defaultMaxCandidates = 1000
)

// Sink receives one screening record per candidate processed.
type Sink interface {
	Record(ctx context.Context, rec model.ScreeningRecord) error
}

// Outcome summarizes one completed search.
type Outcome struct {
	Hired     bool
	Candidate model.Engineer
	Result    model.PipelineResult
	Offer     model.CompensationOffer
	Screened  int // candidates drawn from the source, repeats included
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithMaxCandidates bounds how many candidates one search draws.
func WithMaxCandidates(n int) Option {
	return func(s *Service) {
		s.maxCandidates = n
	}
}

// WithBudget caps the acceptable final offer. Zero or negative disables
// the cap: any passing candidate is hired.
func WithBudget(budget float64) Option {
	return func(s *Service) {
		s.budget = budget
	}
}

// WithSink sets the result sink screening records are emitted to.
func WithSink(sink Sink) Option {
	return func(s *Service) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// Service runs candidate searches against a fixed pipeline and
// compensation model. It is safe to share across sequential searches;
// each Run owns its own screened-candidate tracker.
type Service struct {
	pipeline      *pipeline.Pipeline
	comp          *compensation.Model
	maxCandidates int
	budget        float64
	sink          Sink
	logger        logger.Logger
}

// New validates the search configuration eagerly.
func New(p *pipeline.Pipeline, comp *compensation.Model, opts ...Option) (*Service, error) {
	s := &Service{
		pipeline:      p,
		comp:          comp,
		maxCandidates: defaultMaxCandidates,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.pipeline == nil {
		return nil, ErrNilPipeline
	}
	if s.comp == nil {
		return nil, ErrNilCompensation
	}
	if s.maxCandidates <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxCandidates, s.maxCandidates)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("search")
	}

	return s, nil
}

// Run draws up to maxCandidates candidates from the source and returns
// the first acceptable hire, or a no-hire outcome once the source or the
// draw budget is exhausted. Every processed candidate is emitted to the
// sink; repeats surfaced by sampling sources are skipped but still count
// against the draw budget.
func (s *Service) Run(ctx context.Context, src population.Source) (Outcome, error) {
	tracker := screened.New()
	drawn := 0

	for drawn < s.maxCandidates {
		candidate, ok := src.Next(ctx)
		if !ok {
			break
		}
		drawn++

		if tracker.SeenAndRecord(candidate.ID) {
			continue
		}

		result, err := s.pipeline.Evaluate(ctx, candidate)
		if err != nil {
			return Outcome{}, fmt.Errorf("search: %w", err)
		}

		metrics.RecordCandidateScreened()
		metrics.RecordFinalScore(result.FinalScore)
		metrics.RecordInterviewHours(result.TotalTime)
		if !result.Pass && len(result.Steps) < s.pipeline.Len() {
			metrics.RecordStepShortCircuit()
		}

		rec := model.ScreeningRecord{
			CandidateID: candidate.ID,
			TrueSkill:   candidate.TrueSkill,
			Result:      result,
		}

		if result.Pass {
			metrics.RecordCandidatePassed()
			offer := s.comp.Offer(result.FinalScore)
			metrics.RecordOffer(offer.Final)
			rec.Offer = &offer

			if s.budget <= 0 || offer.Final <= s.budget {
				s.emit(ctx, rec)
				metrics.RecordHire()
				s.logger.Info(ctx, "candidate hired",
					logger.String("candidate", candidate.ID),
					logger.Float64("finalScore", result.FinalScore),
					logger.Float64("offer", offer.Final),
					logger.Int("screened", drawn),
				)
				return Outcome{
					Hired:     true,
					Candidate: candidate,
					Result:    result,
					Offer:     offer,
					Screened:  drawn,
				}, nil
			}

			s.logger.Debug(ctx, "passing candidate over budget",
				logger.String("candidate", candidate.ID),
				logger.Float64("offer", offer.Final),
				logger.Float64("budget", s.budget),
			)
		}

		s.emit(ctx, rec)
	}

	s.logger.Info(ctx, "search exhausted without a hire", logger.Int("screened", drawn))
	return Outcome{Screened: drawn}, nil
}

// emit forwards a record to the sink, if one is configured. Sink errors
// are logged, not fatal: a full search outcome matters more than a
// duplicate record.
func (s *Service) emit(ctx context.Context, rec model.ScreeningRecord) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Record(ctx, rec); err != nil {
		s.logger.Warn(ctx, "sink rejected screening record",
			logger.String("candidate", rec.CandidateID),
			logger.Error(err),
		)
	}
}
