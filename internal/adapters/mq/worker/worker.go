// Package worker defines the workers that execute simulation trials.
//
// Each trial carries its own random-source seed, so workers never share
// randomness; parallel trials stay individually reproducible.
package worker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/pkg/logger"
	"github.com/okian/hiresim/pkg/metrics"
)

// Trial is what workers read off the queue.
type Trial = model.Trial

// Runner executes one trial end to end.
type Runner interface {
	RunTrial(ctx context.Context, t Trial) (model.TrialResult, error)
}

// Collector receives completed trial results.
type Collector interface {
	Collect(ctx context.Context, r model.TrialResult)
}

// Queue defines how workers receive trials.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Trial
}

// Worker processes trials until its queue drains or the context ends.
type Worker struct {
	queue     Queue
	runner    Runner
	collector Collector
	name      string
	done      chan struct{}
	logger    logger.Logger
}

// New creates a worker with configuration options.
func New(q Queue, runner Runner, collector Collector, opts ...Option) *Worker {
	w := &Worker{
		queue:     q,
		runner:    runner,
		collector: collector,
		name:      "worker",
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}

	return w
}

// Run consumes trials until the queue channel closes or ctx is canceled.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	trials := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case trial, ok := <-trials:
			if !ok {
				return
			}
			w.process(ctx, trial)
		}
	}
}

// Done is closed once the worker loop exits.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) process(ctx context.Context, trial Trial) {
	result, err := w.runner.RunTrial(ctx, trial)
	if err != nil {
		metrics.RecordTrialError()
		w.logger.Error(ctx, "trial failed",
			logger.Int("trial", trial.Index),
			logger.Int64("seed", trial.Seed),
			logger.Error(err),
		)
		return
	}

	metrics.RecordTrialCompleted()
	w.collector.Collect(ctx, result)
}

// Pool manages a fixed set of workers over one queue.
type Pool struct {
	workers []*Worker
	logger  logger.Logger
}

// NewPool creates workerCount workers sharing the queue, runner and
// collector. workerCount below one is coerced to one: the strictly
// sequential mode.
func NewPool(workerCount int, q Queue, runner Runner, collector Collector) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = New(q, runner, collector, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Start launches every worker.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Wait blocks until every worker has exited or ctx is canceled.
func (p *Pool) Wait(ctx context.Context) error {
	for _, w := range p.workers {
		select {
		case <-w.Done():
		case <-ctx.Done():
			return fmt.Errorf("worker pool wait: %w", ctx.Err())
		}
	}
	return nil
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return len(p.workers)
}
