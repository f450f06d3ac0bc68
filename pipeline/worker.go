package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/chorushq/enrichd/core"
	"github.com/chorushq/enrichd/queue"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultLeaseRetries = 3
	defaultRetryDelay   = 500 * time.Millisecond
)

// Worker leases tasks from a source and runs them through the pipeline
// on a bounded goroutine pool. Processing failures are reported back to
// the queue so the task can be retried or dead-lettered there.
type Worker struct {
	source       queue.TaskSource
	sink         queue.ResultSink
	pipeline     *Pipeline
	pool         *ants.Pool
	pollInterval time.Duration
	leaseRetries int
	retryDelay   time.Duration
	logger       *slog.Logger
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker) error

// WithConcurrency sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithConcurrency(size int) WorkerOption {
	return func(w *Worker) error {
		if size < 1 {
			size = 1
		}
		if w.pool != nil {
			w.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		w.pool = pool
		return nil
	}
}

// WithPollInterval sets how long the worker sleeps when the queue is
// empty. Default is 2 seconds.
func WithPollInterval(interval time.Duration) WorkerOption {
	return func(w *Worker) error {
		if interval > 0 {
			w.pollInterval = interval
		}
		return nil
	}
}

// WithWorkerLogger sets a custom logger.
// Default is slog.Default().
func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// NewWorker creates a worker over the given task source and pipeline.
func NewWorker(source queue.TaskSource, sink queue.ResultSink, pipe *Pipeline, opts ...WorkerOption) (*Worker, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}
	if pipe == nil {
		return nil, ErrPipelineRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	w := &Worker{
		source:       source,
		sink:         sink,
		pipeline:     pipe,
		pool:         pool,
		pollInterval: defaultPollInterval,
		leaseRetries: defaultLeaseRetries,
		retryDelay:   defaultRetryDelay,
		logger:       slog.Default().With("component", "worker"),
	}

	for _, opt := range opts {
		if optErr := opt(w); optErr != nil {
			w.Release()
			return nil, optErr
		}
	}

	return w, nil
}

// Run leases and processes tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("worker started", "concurrency", w.pool.Cap(), "pollInterval", w.pollInterval)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		task, err := w.lease(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			w.logger.Warn("task lease failed", "err", err)
			if err := w.sleep(ctx); err != nil {
				return err
			}
			continue
		}
		if task == nil {
			if err := w.sleep(ctx); err != nil {
				return err
			}
			continue
		}

		if err := w.pool.Submit(func() { w.handle(ctx, task) }); err != nil {
			w.logger.Error("pool submission failed", "err", err)
			w.handle(ctx, task)
		}
	}
}

// lease fetches the next task, retrying transient transport errors.
// Returns a nil task when the queue is empty.
func (w *Worker) lease(ctx context.Context) (*core.Task, error) {
	var task *core.Task
	err := queue.RetryWithBackoff(ctx, func() error {
		t, err := w.source.Lease(ctx)
		if err != nil {
			if errors.Is(err, queue.ErrNoTask) {
				task = nil
				return nil
			}
			return err
		}
		task = t
		return nil
	}, w.leaseRetries, w.retryDelay)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (w *Worker) handle(ctx context.Context, task *core.Task) {
	if err := w.pipeline.ProcessTask(ctx, task); err != nil {
		w.logger.Error("task processing failed", "task", task.TaskID, "err", err)
		if rerr := w.sink.ReportFailure(ctx, task.TaskID, task.Attempt, err.Error()); rerr != nil {
			w.logger.Error("failure report not delivered", "task", task.TaskID, "err", rerr)
		}
	}
}

func (w *Worker) sleep(ctx context.Context) error {
	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Release releases the worker pool.
// The worker should not be used after calling Release.
func (w *Worker) Release() {
	if w.pool != nil {
		w.pool.Release()
	}
}
