// Copyright 2026 Chorus Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package queue implements the boundary to the task-queue/API
// collaborator: leasing chunk tasks and submitting result payloads
// over a small authenticated HTTP API.
package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chorushq/enrichd/core"
	"github.com/google/uuid"
)

// QueueName is the enrichment queue this worker consumes.
const QueueName = "enrichment"

const defaultTimeout = 30 * time.Second

// Client talks to the queue/API collaborator. It implements both
// TaskSource and ResultSink. Safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	workerID   string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithWorkerID overrides the generated worker lease identity.
func WithWorkerID(id string) ClientOption {
	return func(c *Client) {
		c.workerID = id
	}
}

// NewClient creates a collaborator client. The token may be empty for
// unauthenticated local APIs. Each client gets a unique worker
// identity sent with every lease.
func NewClient(baseURL, token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		token:      token,
		workerID:   uuid.NewString(),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default().With("component", "queue-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lease fetches the next task from the enrichment queue.
func (c *Client) Lease(ctx context.Context) (*core.Task, error) {
	body := map[string]string{"workerId": c.workerID}
	resp, err := c.post(ctx, fmt.Sprintf("%s/api/queue/%s/lease", c.baseURL, QueueName), body)
	if err != nil {
		return nil, fmt.Errorf("lease task: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return nil, ErrNoTask
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("lease task: unexpected status %d", resp.StatusCode)
	}

	var task core.Task
	if err := json.NewDecoder(resp.Body).Decode(&task); err != nil {
		return nil, fmt.Errorf("lease task: decode response: %w", err)
	}
	if err := core.ValidateTask(&task); err != nil {
		return nil, fmt.Errorf("lease task: %w", err)
	}
	return &task, nil
}

// SubmitResult submits one result payload.
func (c *Client) SubmitResult(ctx context.Context, payload *core.ResultPayload) error {
	resp, err := c.post(ctx, c.baseURL+"/api/results", payload)
	if err != nil {
		return fmt.Errorf("submit result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit result: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// ReportFailure reports a failed task so the queue can schedule a retry.
func (c *Client) ReportFailure(ctx context.Context, taskID string, attempt int, reason string) error {
	body := map[string]any{"attempt": attempt, "error": reason}
	resp, err := c.post(ctx, fmt.Sprintf("%s/api/tasks/%s/fail", c.baseURL, taskID), body)
	if err != nil {
		return fmt.Errorf("report failure: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("report failure: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, url string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return c.httpClient.Do(req)
}
