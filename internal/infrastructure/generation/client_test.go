package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"woodcraft/internal/domain/entities"
)

type sleepRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	return nil
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

type recordingRecorder struct {
	mu          sync.Mutex
	submissions []string
	checks      []string
}

func (r *recordingRecorder) SubmissionOutcome(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, outcome)
}

func (r *recordingRecorder) StatusCheck(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, status)
}

// fakeService replays scripted answers for POST /task and GET /task/{id}.
type fakeService struct {
	t *testing.T

	mu          sync.Mutex
	submits     []func(w http.ResponseWriter)
	polls       []func(w http.ResponseWriter)
	submitCalls int
	pollCalls   int
	lastBody    map[string]any
}

func (f *fakeService) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer test-key" {
			f.t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/task":
			f.lastBody = map[string]any{}
			_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
			idx := f.submitCalls
			f.submitCalls++
			if idx >= len(f.submits) {
				f.t.Errorf("unexpected submit call %d", idx+1)
				w.WriteHeader(http.StatusTeapot)
				return
			}
			f.submits[idx](w)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/task/"):
			idx := f.pollCalls
			f.pollCalls++
			if idx >= len(f.polls) {
				f.t.Errorf("unexpected poll call %d", idx+1)
				w.WriteHeader(http.StatusTeapot)
				return
			}
			f.polls[idx](w)
		default:
			f.t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func (f *fakeService) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitCalls, f.pollCalls
}

func status(code int) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) { w.WriteHeader(code) }
}

func accepted(taskID string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"code":0,"data":{"task_id":%q}}`, taskID)
	}
}

// dropConnection closes the socket without writing a response.
func dropConnection(w http.ResponseWriter) {
	conn, _, err := w.(http.Hijacker).Hijack()
	if err != nil {
		panic(err)
	}
	_ = conn.Close()
}

func taskState(state string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(http.StatusOK)
		if state == "success" {
			fmt.Fprint(w, `{"code":0,"data":{"task_id":"task-1","status":"success","output":{"pbr_model":"https://cdn/model.glb","rendered_image":"https://cdn/preview.webp"}}}`)
			return
		}
		fmt.Fprintf(w, `{"code":0,"data":{"task_id":"task-1","status":%q}}`, state)
	}
}

func newTestClient(t *testing.T, f *fakeService, sleeper *sleepRecorder, opts ...Option) (*Client, func()) {
	t.Helper()
	f.t = t
	srv := httptest.NewServer(f.handler())
	cfg := Config{
		BaseURL: srv.URL + "/",
		APIKey:  "test-key",
		Submit:  LinearBackoff{MaxAttempts: 3, Step: 10 * time.Second},
		Poll:    ExponentialBackoff{MaxAttempts: 5, InitialDelay: time.Second, Factor: 2},
	}
	opts = append([]Option{WithSleep(sleeper.sleep)}, opts...)
	return NewClient(cfg, opts...), srv.Close
}

func textRequest() entities.GenerationRequest {
	return entities.GenerationRequest{
		Prompt:     "Wall Art mountain landscape",
		Material:   entities.MaterialOak,
		Dimensions: &entities.Dimensions{Width: 24, Height: 12, Thickness: 1.5},
		Mode:       entities.GenerationModeTextToModel,
	}
}

func TestClient_Submit(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){accepted("task-1")}}
		sleeper := &sleepRecorder{}
		rec := &recordingRecorder{}
		c, done := newTestClient(t, f, sleeper, WithRecorder(rec))
		defer done()

		taskID, err := c.Submit(context.Background(), textRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taskID != "task-1" {
			t.Fatalf("expected task-1, got %q", taskID)
		}
		if f.lastBody["type"] != "text_to_model" {
			t.Fatalf("unexpected type: %v", f.lastBody["type"])
		}
		if f.lastBody["prompt"] != "A oak wooden Wall Art mountain landscape with dimensions: 12x24x1.5 inches" {
			t.Fatalf("unexpected prompt: %v", f.lastBody["prompt"])
		}
		if _, ok := f.lastBody["preview_task_id"]; ok {
			t.Fatalf("text_to_model must not send preview_task_id")
		}
		if len(rec.submissions) != 1 || rec.submissions[0] != "accepted" {
			t.Fatalf("unexpected recorded outcomes: %v", rec.submissions)
		}
	})

	t.Run("busy then accepted uses linear backoff", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){
			status(http.StatusServiceUnavailable),
			status(http.StatusServiceUnavailable),
			accepted("task-2"),
		}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		taskID, err := c.Submit(context.Background(), textRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if taskID != "task-2" {
			t.Fatalf("expected task-2, got %q", taskID)
		}
		got := sleeper.recorded()
		if len(got) != 2 || got[0] != 10*time.Second || got[1] != 20*time.Second {
			t.Fatalf("expected [10s 20s], got %v", got)
		}
	})

	t.Run("busy on every attempt gives up after three", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){
			status(http.StatusServiceUnavailable),
			status(http.StatusServiceUnavailable),
			status(http.StatusServiceUnavailable),
		}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		_, err := c.Submit(context.Background(), textRequest())
		if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrServiceBusy) {
			t.Fatalf("expected busy unavailable error, got %v", err)
		}
		if submits, _ := f.counts(); submits != 3 {
			t.Fatalf("expected 3 attempts, got %d", submits)
		}
		if len(sleeper.recorded()) != 2 {
			t.Fatalf("expected 2 waits, got %v", sleeper.recorded())
		}
	})

	t.Run("other http error is not retried", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){status(http.StatusBadRequest)}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		_, err := c.Submit(context.Background(), textRequest())
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
			t.Fatalf("expected 400 HTTPError, got %v", err)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait, got %v", sleeper.recorded())
		}
	})

	t.Run("missing task id", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{"code":0,"data":{}}`)
		}}}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		_, err := c.Submit(context.Background(), textRequest())
		if !errors.Is(err, ErrMissingTaskID) {
			t.Fatalf("expected ErrMissingTaskID, got %v", err)
		}
	})

	t.Run("network failure is not retried", func(t *testing.T) {
		sleeper := &sleepRecorder{}
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := NewClient(Config{BaseURL: url, APIKey: "test-key"}, WithSleep(sleeper.sleep))
		_, err := c.Submit(context.Background(), textRequest())
		if !errors.Is(err, ErrUnavailable) || errors.Is(err, ErrServiceBusy) {
			t.Fatalf("expected plain unavailable error, got %v", err)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait, got %v", sleeper.recorded())
		}
	})

	t.Run("unsupported mode makes no request", func(t *testing.T) {
		f := &fakeService{}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		req := textRequest()
		req.Mode = "image_to_model"
		_, err := c.Submit(context.Background(), req)
		if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrUnsupportedMode) {
			t.Fatalf("expected ErrUnsupportedMode, got %v", err)
		}
		if submits, polls := f.counts(); submits+polls != 0 {
			t.Fatalf("expected no network call, got %d", submits+polls)
		}
	})

	t.Run("refine requires preview task", func(t *testing.T) {
		f := &fakeService{}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		req := textRequest()
		req.Mode = entities.GenerationModeRefine
		_, err := c.Submit(context.Background(), req)
		if !errors.Is(err, ErrMissingPreviewTask) {
			t.Fatalf("expected ErrMissingPreviewTask, got %v", err)
		}
	})

	t.Run("refine sends preview task", func(t *testing.T) {
		f := &fakeService{submits: []func(http.ResponseWriter){accepted("task-3")}}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		req := textRequest()
		req.Mode = entities.GenerationModeRefine
		req.PreviewTaskID = "task-1"
		if _, err := c.Submit(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.lastBody["type"] != "refine" || f.lastBody["preview_task_id"] != "task-1" {
			t.Fatalf("unexpected refine body: %v", f.lastBody)
		}
	})

	t.Run("missing api key makes no request", func(t *testing.T) {
		f := &fakeService{}
		rec := &recordingRecorder{}
		c, done := newTestClient(t, f, &sleepRecorder{}, WithRecorder(rec))
		defer done()
		c.cfg.APIKey = ""

		_, err := c.Submit(context.Background(), textRequest())
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
		if submits, _ := f.counts(); submits != 0 {
			t.Fatalf("expected no request")
		}
		if len(rec.submissions) != 1 || rec.submissions[0] != "unconfigured" {
			t.Fatalf("unexpected outcomes %v", rec.submissions)
		}
	})
}

func TestClient_Poll(t *testing.T) {
	t.Run("queued twice then success backs off exponentially", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("queued"), taskState("queued"), taskState("success")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		task, err := c.Poll(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entities.GenerationTaskSuccess || task.ModelURL != "https://cdn/model.glb" || task.ThumbnailURL != "https://cdn/preview.webp" {
			t.Fatalf("unexpected task: %+v", task)
		}
		got := sleeper.recorded()
		if len(got) != 2 || got[0] != time.Second || got[1] != 2*time.Second {
			t.Fatalf("expected [1s 2s], got %v", got)
		}
	})

	t.Run("failed returns immediately", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("failed")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		_, err := c.Poll(context.Background(), "task-1")
		if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrTaskFailed) {
			t.Fatalf("expected ErrTaskFailed, got %v", err)
		}
		if _, polls := f.counts(); polls != 1 {
			t.Fatalf("expected a single poll, got %d", polls)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait, got %v", sleeper.recorded())
		}
	})

	t.Run("error status returns immediately", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("error")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		if _, err := c.Poll(context.Background(), "task-1"); !errors.Is(err, ErrTaskFailed) {
			t.Fatalf("expected ErrTaskFailed, got %v", err)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait")
		}
	})

	t.Run("unexpected status aborts", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("banned")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		_, err := c.Poll(context.Background(), "task-1")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait")
		}
	})

	t.Run("server errors are retried", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){status(http.StatusBadGateway), taskState("running"), taskState("success")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		if _, err := c.Poll(context.Background(), "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sleeper.recorded()) != 2 {
			t.Fatalf("expected 2 waits, got %v", sleeper.recorded())
		}
	})

	t.Run("dropped connection is retried", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){dropConnection, taskState("success")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		task, err := c.Poll(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entities.GenerationTaskSuccess {
			t.Fatalf("unexpected task: %+v", task)
		}
		got := sleeper.recorded()
		if len(got) != 1 || got[0] != time.Second {
			t.Fatalf("expected [1s], got %v", got)
		}
		if _, polls := f.counts(); polls != 2 {
			t.Fatalf("expected 2 polls, got %d", polls)
		}
	})

	t.Run("unknown task is not retried", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){status(http.StatusNotFound)}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		if _, err := c.Poll(context.Background(), "task-1"); !errors.Is(err, ErrTaskNotFound) {
			t.Fatalf("expected ErrTaskNotFound, got %v", err)
		}
		if len(sleeper.recorded()) != 0 {
			t.Fatalf("expected no wait")
		}
	})

	t.Run("attempt budget exhausted", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("running"), taskState("running"), taskState("running")}}
		sleeper := &sleepRecorder{}
		c, done := newTestClient(t, f, sleeper)
		defer done()

		_, err := c.PollWith(context.Background(), "task-1", ExponentialBackoff{MaxAttempts: 3, InitialDelay: time.Second, Factor: 3, MaxDelay: 2 * time.Second})
		if !errors.Is(err, ErrPollTimeout) {
			t.Fatalf("expected ErrPollTimeout, got %v", err)
		}
		got := sleeper.recorded()
		if len(got) != 2 || got[0] != time.Second || got[1] != 2*time.Second {
			t.Fatalf("expected capped [1s 2s], got %v", got)
		}
	})
}

func TestClient_Status(t *testing.T) {
	t.Run("single check", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){taskState("running")}}
		rec := &recordingRecorder{}
		c, done := newTestClient(t, f, &sleepRecorder{}, WithRecorder(rec))
		defer done()

		task, err := c.Status(context.Background(), "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if task.Status != entities.GenerationTaskRunning || task.ModelURL != "" {
			t.Fatalf("unexpected task: %+v", task)
		}
		if len(rec.checks) != 1 || rec.checks[0] != "running" {
			t.Fatalf("unexpected checks: %v", rec.checks)
		}
	})

	t.Run("transient failures are marked temporary", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){dropConnection, status(http.StatusBadGateway)}}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		for i := 0; i < 2; i++ {
			_, err := c.Status(context.Background(), "task-1")
			if !errors.Is(err, ErrUnavailable) || !errors.Is(err, entities.ErrStatusTemporarilyUnavailable) {
				t.Fatalf("check %d: expected a temporary error, got %v", i+1, err)
			}
		}
	})

	t.Run("unknown task is final", func(t *testing.T) {
		f := &fakeService{polls: []func(http.ResponseWriter){status(http.StatusNotFound)}}
		c, done := newTestClient(t, f, &sleepRecorder{})
		defer done()

		_, err := c.Status(context.Background(), "task-1")
		if !errors.Is(err, ErrTaskNotFound) || errors.Is(err, entities.ErrStatusTemporarilyUnavailable) {
			t.Fatalf("expected a final ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1"})
		if _, err := c.Status(context.Background(), "task-1"); !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("expected ErrMissingAPIKey, got %v", err)
		}
	})
}

func TestClient_Generate(t *testing.T) {
	f := &fakeService{
		submits: []func(http.ResponseWriter){accepted("task-1")},
		polls:   []func(http.ResponseWriter){taskState("running"), taskState("success")},
	}
	sleeper := &sleepRecorder{}
	c, done := newTestClient(t, f, sleeper)
	defer done()

	task, err := c.Generate(context.Background(), textRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "task-1" || task.ModelURL == "" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if submits, polls := f.counts(); submits != 1 || polls != 2 {
		t.Fatalf("expected 1 submit and 2 polls, got %d/%d", submits, polls)
	}
}

func TestBuildPrompt(t *testing.T) {
	req := entities.GenerationRequest{Prompt: "bookshelf", Material: entities.MaterialWalnut}
	if got := BuildPrompt(req); got != "A walnut wooden bookshelf" {
		t.Fatalf("unexpected prompt: %q", got)
	}
	req.Dimensions = &entities.Dimensions{}
	if got := BuildPrompt(req); got != "A walnut wooden bookshelf with dimensions: 0x0x0 inches" {
		t.Fatalf("unexpected prompt: %q", got)
	}
}
