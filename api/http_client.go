package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// StatusError is returned for any non 2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the server's {"error": ...} text, if it sent one.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status code: %s: %s", e.Status, e.Message)
	}
	return "unexpected status code: " + e.Status
}

// Request makes an HTTP request to the API and decodes the JSON response
// into response when it is not nil.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, query url.Values, body interface{}, response interface{}) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, requestBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: res.StatusCode, Status: res.Status}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(resBody, &e) == nil {
			statusErr.Message = e.Error
		}
		return statusErr
	}

	if response != nil && len(resBody) > 0 {
		if err := json.Unmarshal(resBody, response); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
