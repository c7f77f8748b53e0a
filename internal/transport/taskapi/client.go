// Package taskapi talks to the remote task-execution service that owns
// partner profiles.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/wire"
)

const (
	executePath = "/api/v1/tasks/execute"

	TaskProfileGet    = "partner_profile_get"
	TaskProfileUpdate = "partner_profile_update"

	PriorityNormal = "normal"
	PriorityHigh   = "high"

	StatusFailed = "failed"
)

var (
	// ErrTaskFailed is returned when the service accepted the request but
	// reported the task as failed.
	ErrTaskFailed = errors.New("task failed")

	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// Task is a single task execution request.
type Task struct {
	TaskType string         `json:"task_type"`
	Input    map[string]any `json:"input"`
	Priority string         `json:"priority,omitempty"`
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client executes tasks over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a task client. A zero timeout defaults to 30s.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Execute runs a task and returns its status envelope.
func (c *Client) Execute(ctx context.Context, task *Task) (*contracts.TaskStatus, error) {
	body, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("marshal task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+executePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute %s: %w", task.TaskType, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("task executed",
		zap.String("task_type", task.TaskType),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var status contracts.TaskStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("decode task status: %w", err)
	}
	if status.Status == StatusFailed {
		msg := status.Error
		if msg == "" {
			msg = "no error message"
		}
		return &status, fmt.Errorf("%w: %s: %s", ErrTaskFailed, task.TaskType, msg)
	}
	return &status, nil
}

// FetchProfile runs partner_profile_get and unwraps the profile object.
func (c *Client) FetchProfile(ctx context.Context, partnerID, userID string) (wire.Object, error) {
	status, err := c.Execute(ctx, &Task{
		TaskType: TaskProfileGet,
		Input:    map[string]any{wire.PartnerID: partnerID, "user_id": userID},
		Priority: PriorityNormal,
	})
	if err != nil {
		return nil, err
	}
	return wire.DecodeGetResult(status.Result)
}

// SubmitUpdate runs partner_profile_update with high priority.
func (c *Client) SubmitUpdate(ctx context.Context, req *contracts.UpdateRequest) (*contracts.TaskStatus, error) {
	return c.Execute(ctx, &Task{
		TaskType: TaskProfileUpdate,
		Input: map[string]any{
			"user_id":           req.UserID,
			wire.PartnerID:      req.PartnerID,
			wire.PartnerProfile: req.Profile,
		},
		Priority: PriorityHigh,
	})
}

var _ contracts.ProfileGateway = (*Client)(nil)
