package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"woodcraft/internal/adapter/http/dto/request"
	"woodcraft/internal/adapter/http/dto/response"
	"woodcraft/internal/domain/entities"
)

// DesignClient calls the design generation endpoints of the API.
type DesignClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewDesignClient(baseURL string) *DesignClient {
	return &DesignClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// APIError is a non-2xx answer that carried no usable body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// RequestDesign sends POST /v1/initiate_task_id. A 400 with a structured
// body is returned as a failed quote rather than an error.
func (c *DesignClient) RequestDesign(req request.DesignRequest) (*response.DesignQuoteResponse, error) {
	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/v1/initiate_task_id", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Add("Content-Type", "application/json")

	var result response.DesignQuoteResponse
	if err := c.do(httpReq, &result, http.StatusOK, http.StatusBadRequest); err != nil {
		return nil, err
	}
	return &result, nil
}

// TaskStatus sends GET /v1/get_task_status/{id}.
func (c *DesignClient) TaskStatus(taskID string) (*response.TaskStatusResponse, error) {
	httpReq, err := http.NewRequest(http.MethodGet, c.BaseURL+"/v1/get_task_status/"+url.PathEscape(taskID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var result response.TaskStatusResponse
	if err := c.do(httpReq, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *DesignClient) do(req *http.Request, out any, accepted ...int) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	ok := false
	for _, code := range accepted {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}
	if !ok {
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// WaitForTask checks the task up to maxChecks times, sleeping interval
// between checks. It returns the first finished status (ready or failed) or
// the last one seen when the budget runs out. onCheck may be nil.
func (c *DesignClient) WaitForTask(taskID string, interval time.Duration, maxChecks int, onCheck func(int, *response.TaskStatusResponse)) (*response.TaskStatusResponse, error) {
	if maxChecks < 1 {
		maxChecks = 1
	}

	var last *response.TaskStatusResponse
	for check := 1; check <= maxChecks; check++ {
		st, err := c.TaskStatus(taskID)
		if err != nil {
			return nil, err
		}
		last = st
		if onCheck != nil {
			onCheck(check, st)
		}
		if st.Success || st.TaskStatus != string(entities.TaskStateGenerating) {
			return st, nil
		}
		if check < maxChecks {
			time.Sleep(interval)
		}
	}
	return last, nil
}
