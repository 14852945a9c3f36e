// Package mlmodel is a client for an external heading-classification
// inference service. It is used when rule-based detection finds too few
// headings to be trusted.
package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tsawler/outliner/classify"
)

// DefaultTimeout is the default HTTP timeout for inference calls.
// Model inference on large batches can be slow.
const DefaultTimeout = 60 * time.Second

// Client communicates with the heading-classification inference service
// over HTTP. It implements classify.Predictor.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an inference client for the service at baseURL
// (e.g. "http://localhost:8500").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithHTTPClient creates an inference client with a custom
// underlying HTTP client, for callers that need their own transport or
// timeout settings.
func NewClientWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: hc}
}

// predictRequest is the body for POST /predict.
type predictRequest struct {
	Texts []string `json:"texts"`
}

// predictResponse is the response from POST /predict.
type predictResponse struct {
	Predictions []classify.Prediction `json:"predictions"`
}

// Predict sends candidate texts to the inference service and returns one
// prediction per text, in order.
func (c *Client) Predict(ctx context.Context, texts []string) ([]classify.Prediction, error) {
	body, err := json.Marshal(predictRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("marshal predict request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("predict: status %d: %s", resp.StatusCode, string(respBody))
	}

	var result predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}

	if len(result.Predictions) != len(texts) {
		return nil, fmt.Errorf("predict: got %d predictions for %d texts", len(result.Predictions), len(texts))
	}
	return result.Predictions, nil
}

// Healthy reports whether the inference service is reachable and ready.
func (c *Client) Healthy(ctx context.Context) bool {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
