// Package graphql executes stored GraphQL operations against a remote HTTP
// endpoint.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sableworks/gqlbridge/internal/common"
)

// Client posts GraphQL requests to a single configured endpoint.
type Client struct {
	endpoint   string
	headers    map[string]string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a Client for the given endpoint. Configured headers are
// sent on every request and may override the Content-Type base header.
func NewClient(endpoint string, headers map[string]string, logger *common.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		headers:  headers,
		httpClient: &http.Client{
			Timeout: 300 * time.Second,
		},
		logger: logger,
	}
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string { return c.endpoint }

// envelope is the standard GraphQL HTTP response shape.
type envelope struct {
	Data   json.RawMessage   `json:"data"`
	Errors []json.RawMessage `json:"errors"`
}

// Execute posts the document and variables to the endpoint and returns the
// raw data field. Non-2xx statuses, GraphQL-reported errors, and non-JSON
// bodies are returned as typed errors; GraphQL errors take precedence over
// any partial data in the same response.
func (c *Client) Execute(ctx context.Context, document string, variables map[string]interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     document,
		"variables": variables,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Int("bytes", len(payload)).
		Msg("GraphQL Request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for key, val := range c.headers {
		req.Header.Set(key, val)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", c.endpoint).Dur("duration", duration).Msg("GraphQL Request Failed")
		return nil, fmt.Errorf("endpoint request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().
		Str("status", resp.Status).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Int("bytes", len(body)).
		Msg("GraphQL Response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	if len(env.Errors) > 0 {
		serialized, err := json.Marshal(env.Errors)
		if err != nil {
			serialized = body
		}
		return nil, &QueryError{Errors: string(serialized)}
	}

	return env.Data, nil
}
