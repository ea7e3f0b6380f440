package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"resume-builder/pkg/ai/formatters"
)

const DefaultAgent = "auto"

// Client calls the ai-service chat endpoint. Each call is a single attempt;
// callers decide what a failure means.
type Client struct {
	BaseURL string
	Agent   string
	HTTP    *http.Client
}

// NewClient builds a client for baseURL. A zero timeout leaves requests
// bounded only by the caller's context.
func NewClient(baseURL, agent string, timeout time.Duration) *Client {
	if agent == "" {
		agent = DefaultAgent
	}
	return &Client{BaseURL: baseURL, Agent: agent, HTTP: &http.Client{Timeout: timeout}}
}

type chatRequest struct {
	Agent string `json:"agent"`
	Input string `json:"input"`
}

type chatResponse struct {
	Agent  string `json:"agent"`
	Output string `json:"output"`
}

// Chat sends input to POST {BaseURL}/v1/chat and returns the output text.
func (c *Client) Chat(ctx context.Context, input string) (string, error) {
	b, err := json.Marshal(chatRequest{Agent: c.Agent, Input: input})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/chat", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("ai.client: POST /v1/chat", "url", c.BaseURL, "agent", c.Agent, "input_len", len(input))

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Output, nil
}

// NewSummaryFormatter returns the professional summary generator backed by c.
func (c *Client) NewSummaryFormatter() *formatters.SummaryFormatter {
	return formatters.NewSummaryFormatter(c)
}
