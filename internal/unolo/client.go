// Package unolo is the HTTP client for the external field-tracking API.
// Responses arrive in several envelope shapes and are normalized to item
// lists before any entity processing.
package unolo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fieldpulse/config"
	"fieldpulse/internal/logger"
)

// requestTimeout bounds every call to the tracking API.
const requestTimeout = 30 * time.Second

// APIError is a failure talking to the tracking API, distinguishable from
// validation and internal errors so callers can map it to a bad-gateway
// class response.
type APIError struct {
	Message    string
	StatusCode int    // Upstream status, 0 for connection failures
	Body       string // Upstream body excerpt
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("unolo api error: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("unolo api error: %s", e.Message)
}

// Client talks to the tracking API with the fixed id/token header pair.
type Client struct {
	baseURL    string
	apiID      string
	apiToken   string
	httpClient *http.Client
}

// NewClient builds a Client from configuration.
func NewClient(cfg *config.Configuration) *Client {
	return &Client{
		baseURL:  cfg.UnoloBaseURL,
		apiID:    cfg.UnoloAPIID,
		apiToken: cfg.UnoloAPIToken,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// get performs an authenticated GET and returns the raw body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	log := logger.GetSyncLogger()

	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("id", c.apiID)
	req.Header.Set("token", c.apiToken)
	req.Header.Set("Accept", "application/json")

	log.WithField("endpoint", endpoint).Info("Unolo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Unolo API connection error")
		return nil, &APIError{Message: fmt.Sprintf("connect: %v", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: fmt.Sprintf("read response: %v", err), StatusCode: resp.StatusCode}
	}

	log.WithFields(map[string]interface{}{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
	}).Info("Unolo API response")

	if resp.StatusCode >= 400 {
		excerpt := string(body)
		if len(excerpt) > 512 {
			excerpt = excerpt[:512]
		}
		return nil, &APIError{
			Message:    "request failed",
			StatusCode: resp.StatusCode,
			Body:       excerpt,
		}
	}

	return body, nil
}

// GetEmployees fetches the full employee master list.
func (c *Client) GetEmployees(ctx context.Context) ([]map[string]interface{}, error) {
	body, err := c.get(ctx, "/api/protected/employeeMaster", nil)
	if err != nil {
		return nil, err
	}
	env, err := DecodeEnvelope(body, "employees", "")
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	return env.Items(), nil
}

// GetClients fetches the full client list.
func (c *Client) GetClients(ctx context.Context) ([]map[string]interface{}, error) {
	body, err := c.get(ctx, "/api/protected/v2/clients", nil)
	if err != nil {
		return nil, err
	}
	env, err := DecodeEnvelope(body, "clients", "")
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	return env.Items(), nil
}

// GetTasks fetches task details for [start, end] (YYYY-MM-DD), optionally
// filtered by a custom task name.
func (c *Client) GetTasks(ctx context.Context, start, end, customTaskName string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	if customTaskName != "" {
		params.Set("customTaskName", customTaskName)
	}
	body, err := c.get(ctx, "/api/protected/tasksDetail/v2", params)
	if err != nil {
		return nil, err
	}
	env, err := DecodeEnvelope(body, "tasks", "")
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	return env.Items(), nil
}

// GetEODSummaries fetches end-of-day summaries for [start, end].
func (c *Client) GetEODSummaries(ctx context.Context, start, end string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	body, err := c.get(ctx, "/api/protected/eodSummary", params)
	if err != nil {
		return nil, err
	}
	env, err := DecodeEnvelope(body, "eodSummaries", "")
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	return env.Items(), nil
}

// GetAttendance fetches attendance records for [start, end]. The upstream
// sometimes answers with a bare single object instead of a list; the
// userID field identifies that shape.
func (c *Client) GetAttendance(ctx context.Context, start, end string) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("start", start)
	params.Set("end", end)
	body, err := c.get(ctx, "/api/protected/attendance", params)
	if err != nil {
		return nil, err
	}
	env, err := DecodeEnvelope(body, "attendance", "userID")
	if err != nil {
		return nil, &APIError{Message: err.Error()}
	}
	return env.Items(), nil
}
