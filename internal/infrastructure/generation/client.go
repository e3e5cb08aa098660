// Package generation talks to the remote text-to-3D service (Tripo3D OpenAPI).
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"woodcraft/internal/config"
	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"
)

// Config is everything the client needs; nothing is read from the environment.
type Config struct {
	BaseURL     string
	APIKey      string
	HTTPTimeout time.Duration
	Submit      LinearBackoff
	Poll        ExponentialBackoff
}

// ConfigFrom adapts the service configuration.
func ConfigFrom(c config.GenerationConfig) Config {
	return Config{
		BaseURL:     c.BaseURL,
		APIKey:      c.APIKey,
		HTTPTimeout: c.HTTPTimeout,
		Submit:      LinearBackoff{MaxAttempts: c.SubmitAttempts, Step: c.SubmitBackoff},
		Poll: ExponentialBackoff{
			MaxAttempts:  c.PollAttempts,
			InitialDelay: c.PollDelay,
			Factor:       c.PollFactor,
			MaxDelay:     c.PollMaxDelay,
		},
	}
}

// Recorder receives call outcomes; *metrics.Metrics implements it.
type Recorder interface {
	SubmissionOutcome(outcome string)
	StatusCheck(status string)
}

type noopRecorder struct{}

func (noopRecorder) SubmissionOutcome(string) {}
func (noopRecorder) StatusCheck(string)       {}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithSleep(s SleepFunc) Option {
	return func(c *Client) { c.sleep = s }
}

func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.recorder = r
		}
	}
}

// Client implements interfaces.IModelGenerator over HTTP with a bearer token.
type Client struct {
	cfg        Config
	httpClient *http.Client
	sleep      SleepFunc
	recorder   Recorder
}

var _ interfaces.IModelGenerator = (*Client)(nil)

func NewClient(cfg Config, opts ...Option) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Submit.MaxAttempts <= 0 {
		cfg.Submit = DefaultSubmitPolicy()
	}
	if cfg.Poll.MaxAttempts <= 0 {
		cfg.Poll = DefaultPollPolicy()
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		sleep:      sleepContext,
		recorder:   noopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type taskRequest struct {
	Type          string `json:"type"`
	Prompt        string `json:"prompt"`
	PreviewTaskID string `json:"preview_task_id,omitempty"`
}

type taskEnvelope struct {
	Code int `json:"code"`
	Data struct {
		TaskID string `json:"task_id"`
		Status string `json:"status"`
		Output struct {
			PBRModel      string `json:"pbr_model"`
			Model         string `json:"model"`
			RenderedImage string `json:"rendered_image"`
		} `json:"output"`
	} `json:"data"`
}

// BuildPrompt prefixes the material and appends dimensions (height x width x thickness) when present.
func BuildPrompt(req entities.GenerationRequest) string {
	prompt := fmt.Sprintf("A %s wooden %s", req.Material, req.Prompt)
	if d := req.Dimensions; d != nil {
		prompt += fmt.Sprintf(" with dimensions: %sx%sx%s inches", formatInches(d.Height), formatInches(d.Width), formatInches(d.Thickness))
	}
	return prompt
}

func formatInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func buildTaskRequest(req entities.GenerationRequest) (taskRequest, error) {
	switch req.Mode {
	case "", entities.GenerationModeTextToModel:
		return taskRequest{Type: string(entities.GenerationModeTextToModel), Prompt: BuildPrompt(req)}, nil
	case entities.GenerationModeRefine:
		if strings.TrimSpace(req.PreviewTaskID) == "" {
			return taskRequest{}, ErrMissingPreviewTask
		}
		return taskRequest{Type: string(entities.GenerationModeRefine), Prompt: BuildPrompt(req), PreviewTaskID: req.PreviewTaskID}, nil
	default:
		return taskRequest{}, fmt.Errorf("%w: %s", ErrUnsupportedMode, req.Mode)
	}
}

// Submit posts a generation task and returns its id. A 503 answer is retried
// per the submit policy; any other failure returns immediately.
func (c *Client) Submit(ctx context.Context, req entities.GenerationRequest) (string, error) {
	if c.cfg.APIKey == "" {
		log.Printf("[generation][client] submit aborted: %v", ErrMissingAPIKey)
		c.recorder.SubmissionOutcome("unconfigured")
		return "", unavailable(ErrMissingAPIKey)
	}

	payload, err := buildTaskRequest(req)
	if err != nil {
		log.Printf("[generation][client] submit rejected mode=%q err=%v", req.Mode, err)
		c.recorder.SubmissionOutcome("rejected")
		return "", unavailable(err)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", unavailable(err)
	}

	policy := c.cfg.Submit
	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		taskID, err := c.postTask(ctx, body)
		if err == nil {
			log.Printf("[generation][client] submit success task_id=%s type=%s attempt=%d", taskID, payload.Type, attempt)
			c.recorder.SubmissionOutcome("accepted")
			return taskID, nil
		}
		if !errors.Is(err, ErrServiceBusy) {
			log.Printf("[generation][client] submit failed attempt=%d err=%v", attempt, err)
			c.recorder.SubmissionOutcome("failed")
			return "", unavailable(err)
		}

		lastErr = err
		if attempt == policy.MaxAttempts {
			break
		}
		log.Printf("[generation][client] service busy, retrying attempt=%d/%d", attempt, policy.MaxAttempts)
		if err := c.sleep(ctx, policy.Delay(attempt)); err != nil {
			c.recorder.SubmissionOutcome("failed")
			return "", unavailable(err)
		}
	}

	log.Printf("[generation][client] submit gave up after %d busy answers", policy.MaxAttempts)
	c.recorder.SubmissionOutcome("busy")
	return "", unavailable(lastErr)
}

// Status performs a single status check without waiting.
func (c *Client) Status(ctx context.Context, taskID string) (entities.GenerationTask, error) {
	if c.cfg.APIKey == "" {
		log.Printf("[generation][client] status aborted task_id=%s: %v", taskID, ErrMissingAPIKey)
		return entities.GenerationTask{}, unavailable(ErrMissingAPIKey)
	}
	if strings.TrimSpace(taskID) == "" {
		return entities.GenerationTask{}, unavailable(ErrTaskNotFound)
	}

	task, err := c.fetchTask(ctx, taskID)
	if err != nil {
		log.Printf("[generation][client] status failed task_id=%s err=%v", taskID, err)
		c.recorder.StatusCheck("error")
		if ctx.Err() == nil && isTransientPollError(err) {
			err = fmt.Errorf("%w: %w", entities.ErrStatusTemporarilyUnavailable, err)
		}
		return entities.GenerationTask{}, unavailable(err)
	}
	c.recorder.StatusCheck(string(task.Status))
	return task, nil
}

// Poll waits for a terminal state using the configured poll policy.
func (c *Client) Poll(ctx context.Context, taskID string) (entities.GenerationTask, error) {
	return c.PollWith(ctx, taskID, c.cfg.Poll)
}

// PollWith repeatedly checks taskID. queued/running and transient fetch errors
// sleep and retry with exponential backoff; success returns the payload;
// failed/error and unexpected statuses return at once.
func (c *Client) PollWith(ctx context.Context, taskID string, policy ExponentialBackoff) (entities.GenerationTask, error) {
	if c.cfg.APIKey == "" {
		log.Printf("[generation][client] poll aborted task_id=%s: %v", taskID, ErrMissingAPIKey)
		return entities.GenerationTask{}, unavailable(ErrMissingAPIKey)
	}

	delay := policy.InitialDelay
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		task, err := c.fetchTask(ctx, taskID)
		switch {
		case err != nil && ctx.Err() != nil:
			return entities.GenerationTask{}, unavailable(ctx.Err())
		case err != nil && !isTransientPollError(err):
			log.Printf("[generation][client] poll failed task_id=%s attempt=%d err=%v", taskID, attempt, err)
			c.recorder.StatusCheck("error")
			return entities.GenerationTask{}, unavailable(err)
		case err != nil:
			log.Printf("[generation][client] poll error, will retry task_id=%s attempt=%d err=%v", taskID, attempt, err)
			c.recorder.StatusCheck("error")
		case task.Status == entities.GenerationTaskSuccess:
			c.recorder.StatusCheck(string(task.Status))
			log.Printf("[generation][client] task succeeded task_id=%s attempt=%d", taskID, attempt)
			return task, nil
		case task.Status.IsFailure():
			c.recorder.StatusCheck(string(task.Status))
			log.Printf("[generation][client] task failed task_id=%s status=%s", taskID, task.Status)
			return entities.GenerationTask{}, unavailable(fmt.Errorf("%w: status=%s", ErrTaskFailed, task.Status))
		case !task.Status.IsPending():
			c.recorder.StatusCheck(string(task.Status))
			log.Printf("[generation][client] unexpected status task_id=%s status=%q", taskID, task.RawStatus)
			return entities.GenerationTask{}, unavailable(fmt.Errorf("%w: %q", ErrUnexpectedStatus, task.RawStatus))
		default:
			c.recorder.StatusCheck(string(task.Status))
		}

		if attempt == policy.MaxAttempts {
			break
		}
		if err := c.sleep(ctx, delay); err != nil {
			return entities.GenerationTask{}, unavailable(err)
		}
		delay = policy.Next(delay)
	}

	log.Printf("[generation][client] poll timed out task_id=%s attempts=%d", taskID, policy.MaxAttempts)
	return entities.GenerationTask{}, unavailable(ErrPollTimeout)
}

// Generate submits and then blocks until the task is terminal.
func (c *Client) Generate(ctx context.Context, req entities.GenerationRequest) (entities.GenerationTask, error) {
	taskID, err := c.Submit(ctx, req)
	if err != nil {
		return entities.GenerationTask{}, err
	}
	return c.Poll(ctx, taskID)
}

func (c *Client) postTask(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/task", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", ErrServiceBusy
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope taskEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.Data.TaskID == "" {
		return "", ErrMissingTaskID
	}
	return envelope.Data.TaskID, nil
}

func (c *Client) fetchTask(ctx context.Context, taskID string) (entities.GenerationTask, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/task/"+url.PathEscape(taskID), nil)
	if err != nil {
		return entities.GenerationTask{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.GenerationTask{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusNotFound {
		return entities.GenerationTask{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return entities.GenerationTask{}, &HTTPError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var envelope taskEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return entities.GenerationTask{}, fmt.Errorf("failed to parse response: %w", err)
	}

	task := entities.GenerationTask{
		ID:        envelope.Data.TaskID,
		Status:    entities.ParseGenerationTaskStatus(envelope.Data.Status),
		RawStatus: envelope.Data.Status,
	}
	if task.ID == "" {
		task.ID = taskID
	}
	if task.Status == entities.GenerationTaskSuccess {
		task.ModelURL = envelope.Data.Output.PBRModel
		if task.ModelURL == "" {
			task.ModelURL = envelope.Data.Output.Model
		}
		task.ThumbnailURL = envelope.Data.Output.RenderedImage
	}
	return task, nil
}
