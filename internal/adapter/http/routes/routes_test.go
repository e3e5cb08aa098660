package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"woodcraft/internal/adapter/http/handlers"
	"woodcraft/internal/adapter/http/handlers/mocks"
	"woodcraft/internal/config"
	"woodcraft/internal/domain/entities"
	"woodcraft/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type testRouter struct {
	engine   *gin.Engine
	workflow *mocks.MockIDesignWorkflowUseCase
	designs  *mocks.MockICustomerDesignUseCase
	payments *mocks.MockIBillingPaymentUseCase
}

func newTestRouter(t *testing.T, cfg *config.Config) testRouter {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	tr := testRouter{
		workflow: mocks.NewMockIDesignWorkflowUseCase(ctrl),
		designs:  mocks.NewMockICustomerDesignUseCase(ctrl),
		payments: mocks.NewMockIBillingPaymentUseCase(ctrl),
	}
	tr.engine = newRouter(cfg, handlerSet{
		design:          handlers.NewDesignHandler(tr.workflow),
		customerDesigns: handlers.NewCustomerDesignHandler(tr.designs),
		payments:        handlers.NewBillingPaymentHandler(tr.payments),
		metrics:         metrics.New().Handler(),
	})
	return tr
}

func (tr testRouter) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRouter_PingAndMetrics(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	if w := tr.get("/v1/ping"); w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}

	w := tr.get("/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("expected runtime metrics in body")
	}
}

func TestRouter_Swagger(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	w := tr.get("/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "/initiate_task_id") {
		t.Fatalf("expected design routes in swagger doc")
	}
}

func TestRouter_DesignRoutesAreWired(t *testing.T) {
	tr := newTestRouter(t, &config.Config{})

	tr.workflow.EXPECT().CheckStatus(gomock.Any(), "task-1").Return(entities.TaskStatusReport{TaskID: "task-1", State: entities.TaskStateGenerating})
	if w := tr.get("/v1/get_task_status/task-1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	tr.designs.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.CustomerDesign{ID: "d-1", Status: entities.DesignStatusPending}, nil)
	if w := tr.get("/v1/designs/d-1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	tr.payments.EXPECT().ListByDesignID(gomock.Any(), "d-1").Return(nil, nil)
	if w := tr.get("/v1/payments/d-1"); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRouter_GenerationEndpointsAreRateLimited(t *testing.T) {
	tr := newTestRouter(t, &config.Config{GenerationRateLimit: 1, GenerationRateBurst: 1})

	tr.workflow.EXPECT().CheckStatus(gomock.Any(), "task-1").Return(entities.TaskStatusReport{TaskID: "task-1", State: entities.TaskStateGenerating}).Times(1)

	if w := tr.get("/v1/get_task_status/task-1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := tr.get("/v1/get_task_status/task-1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	// Staff routes are not throttled.
	tr.designs.EXPECT().ListAll(gomock.Any()).Return(nil, nil).Times(2)
	for i := 0; i < 2; i++ {
		if w := tr.get("/v1/designs"); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	}
}

func (tr testRouter) getFrom(path, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("X-Forwarded-For", forwardedFor)
	w := httptest.NewRecorder()
	tr.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_ForwardedForDoesNotBypassRateLimit(t *testing.T) {
	tr := newTestRouter(t, &config.Config{GenerationRateLimit: 1, GenerationRateBurst: 1})

	tr.workflow.EXPECT().CheckStatus(gomock.Any(), "task-1").Return(entities.TaskStatusReport{TaskID: "task-1", State: entities.TaskStateGenerating}).Times(1)

	allowed := 0
	for i := 0; i < 20; i++ {
		if w := tr.getFrom("/v1/get_task_status/task-1", fmt.Sprintf("198.51.100.%d", i+1)); w.Code == http.StatusOK {
			allowed++
		}
	}
	if allowed != 1 {
		t.Fatalf("expected 1 allowed request, got %d", allowed)
	}
}

func TestRouter_TrustedProxyForwardsClientIP(t *testing.T) {
	// httptest requests come from 192.0.2.1.
	tr := newTestRouter(t, &config.Config{GenerationRateLimit: 1, GenerationRateBurst: 1, TrustedProxies: []string{"192.0.2.1"}})

	tr.workflow.EXPECT().CheckStatus(gomock.Any(), "task-1").Return(entities.TaskStatusReport{TaskID: "task-1", State: entities.TaskStateGenerating}).Times(2)

	if w := tr.getFrom("/v1/get_task_status/task-1", "198.51.100.1"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := tr.getFrom("/v1/get_task_status/task-1", "198.51.100.2"); w.Code != http.StatusOK {
		t.Fatalf("expected a separate bucket per forwarded client, got %d", w.Code)
	}
	if w := tr.getFrom("/v1/get_task_status/task-1", "198.51.100.1"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
