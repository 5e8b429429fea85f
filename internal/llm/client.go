package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

// Client talks to a locally-hosted Ollama instance over its native HTTP API.
type Client struct {
	baseURL    string
	http       *http.Client
	maxRetries int
	backoff    time.Duration // first retry delay, doubled per attempt
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

func WithBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.backoff = d
		}
	}
}

func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{}, // per-call deadlines come from ctx
		maxRetries: 3,
		backoff:    time.Second,
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type generateBody struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Generate calls /api/generate with bounded retries and exponential backoff.
// After maxRetries failed attempts it returns common.ErrUnavailable.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	body := generateBody{
		Model:  req.Model,
		Prompt: req.Prompt,
		System: req.System,
		Stream: false,
		Options: map[string]any{
			"temperature": req.Temperature,
		},
	}
	if req.MaxTokens > 0 {
		body.Options["num_predict"] = req.MaxTokens
	}

	c.logger.Info("llm.generate.start",
		"req_id", rid,
		"model", req.Model,
		"temp", req.Temperature,
		"prompt_len", len(req.Prompt),
	)

	var lastErr error
	delay := c.backoff
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		raw, status, err := c.post(ctx, c.baseURL+"/api/generate", body)
		if err == nil {
			var gr generateResponse
			if derr := json.Unmarshal(raw, &gr); derr != nil {
				c.logger.Error("llm.generate.decode_error",
					"req_id", rid, "error", derr, "raw_bytes", len(raw))
				return "", fmt.Errorf("decode generate response: %w", derr)
			}
			c.logger.Info("llm.generate.ok",
				"req_id", rid,
				"attempt", attempt,
				"response_len", len(gr.Response),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return gr.Response, nil
		}

		lastErr = err
		c.logger.Warn("llm.generate.attempt_failed",
			"req_id", rid, "attempt", attempt, "status", status, "error", err)

		if ctx.Err() != nil {
			break // deadline exceeded; retrying cannot help
		}
		if attempt < c.maxRetries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				lastErr = ctx.Err()
			}
			delay *= 2
		}
	}

	c.logger.Error("llm.generate.unavailable",
		"req_id", rid, "attempts", c.maxRetries, "error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return "", fmt.Errorf("%w: %v", common.ErrUnavailable, lastErr)
}

// Available probes /api/tags for the named model.
func (c *Client) Available(ctx context.Context, model string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer closeBody(resp.Body, c.logger)

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: tags status %d", common.ErrUnavailable, resp.StatusCode)
	}
	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	for _, m := range tags.Models {
		if m.Name == model || strings.SplitN(m.Name, ":", 2)[0] == model {
			return nil
		}
	}
	return fmt.Errorf("%w: model %q not present", common.ErrUnavailable, model)
}

// post sends one JSON request and returns the raw response body.
func (c *Client) post(ctx context.Context, url string, body any) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer closeBody(resp.Body, c.logger)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}

func closeBody(body io.ReadCloser, logger *slog.Logger) {
	if err := body.Close(); err != nil {
		logger.Warn("llm.http.response_body_close_error", "error", err)
	}
}
