package queue

import (
	"context"
	"errors"

	"github.com/chorushq/enrichd/core"
)

// ErrNoTask is returned by Lease when the queue is empty.
var ErrNoTask = errors.New("no task available")

// TaskSource leases enrichment tasks from the queue collaborator.
type TaskSource interface {
	// Lease fetches the next task. Returns ErrNoTask when the queue is
	// empty; any other error is a transport failure.
	Lease(ctx context.Context) (*core.Task, error)
}

// ResultSink hands completed results (and failures) to the API
// collaborator. Submission errors are the caller's to handle: the
// pipeline never swallows them, so the queue's attempt bookkeeping
// stays authoritative.
type ResultSink interface {
	// SubmitResult submits the result payload for one task.
	SubmitResult(ctx context.Context, payload *core.ResultPayload) error

	// ReportFailure reports that a task could not be completed, letting
	// the queue decide whether to retry based on the attempt counter.
	ReportFailure(ctx context.Context, taskID string, attempt int, reason string) error
}
