package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/okian/hiresim/internal/adapters/mq/queue"
	"github.com/okian/hiresim/internal/adapters/mq/worker"
	"github.com/okian/hiresim/internal/domain/model"
	"github.com/okian/hiresim/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

type mockRunner struct {
	mu      sync.Mutex
	seen    []model.Trial
	failAll bool
}

func (m *mockRunner) RunTrial(_ context.Context, t worker.Trial) (model.TrialResult, error) {
	m.mu.Lock()
	m.seen = append(m.seen, t)
	m.mu.Unlock()

	if m.failAll {
		return model.TrialResult{}, errors.New("boom")
	}
	return model.TrialResult{Trial: t, Hired: t.Index%2 == 0, Screened: 3}, nil
}

func (m *mockRunner) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}

type mockCollector struct {
	mu      sync.Mutex
	results []model.TrialResult
}

func (m *mockCollector) Collect(_ context.Context, r model.TrialResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

func (m *mockCollector) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.results)
}

func TestWorkerPool(t *testing.T) {
	if err := logger.Init(); err != nil {
		t.Fatalf("logger init: %v", err)
	}

	convey.Convey("Given a pool over a queue of trials", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(32))
		runner := &mockRunner{}
		collector := &mockCollector{}
		pool := worker.NewPool(4, q, runner, collector)
		ctx := context.Background()

		convey.Convey("When trials are enqueued and the queue closes", func() {
			for i := 0; i < 10; i++ {
				convey.So(q.Enqueue(ctx, model.Trial{Index: i, Seed: int64(100 + i)}), convey.ShouldBeTrue)
			}
			convey.So(q.Close(), convey.ShouldBeNil)

			pool.Start(ctx)
			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			convey.So(pool.Wait(waitCtx), convey.ShouldBeNil)

			convey.Convey("Then every trial ran and every result was collected", func() {
				convey.So(runner.count(), convey.ShouldEqual, 10)
				convey.So(collector.count(), convey.ShouldEqual, 10)
			})
		})
	})

	convey.Convey("Given a runner that always fails", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(8))
		runner := &mockRunner{failAll: true}
		collector := &mockCollector{}
		pool := worker.NewPool(2, q, runner, collector)
		ctx := context.Background()

		for i := 0; i < 4; i++ {
			convey.So(q.Enqueue(ctx, model.Trial{Index: i}), convey.ShouldBeTrue)
		}
		convey.So(q.Close(), convey.ShouldBeNil)

		pool.Start(ctx)
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		convey.So(pool.Wait(waitCtx), convey.ShouldBeNil)

		convey.Convey("Then failures are swallowed and nothing is collected", func() {
			convey.So(runner.count(), convey.ShouldEqual, 4)
			convey.So(collector.count(), convey.ShouldEqual, 0)
		})
	})

	convey.Convey("Given a pool asked for zero workers", t, func() {
		q := queue.NewInMemoryQueue()
		pool := worker.NewPool(0, q, &mockRunner{}, &mockCollector{})

		convey.Convey("Then it coerces to the sequential single worker", func() {
			convey.So(pool.Size(), convey.ShouldEqual, 1)
		})
	})
}
