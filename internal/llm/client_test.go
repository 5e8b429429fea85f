package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

func TestGenerateSuccess(t *testing.T) {
	var gotBody generateBody
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %q, want /api/generate", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"response": `{"ok": true}`, "done": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	out, err := c.Generate(context.Background(), GenerateRequest{
		Model:       "qwen2:1.5b",
		Prompt:      "hello",
		System:      "be brief",
		Temperature: 0.1,
		MaxTokens:   256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != `{"ok": true}` {
		t.Errorf("response = %q", out)
	}
	if gotBody.Model != "qwen2:1.5b" || gotBody.Stream {
		t.Errorf("request body = %+v, want model set and stream=false", gotBody)
	}
	if gotBody.Options["num_predict"] != 256.0 {
		t.Errorf("num_predict = %v, want 256", gotBody.Options["num_predict"])
	}
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"response": "ok", "done": true})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, WithMaxRetries(3), WithBackoff(time.Millisecond))
	out, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "ok" {
		t.Errorf("response = %q", out)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil, WithMaxRetries(3), WithBackoff(time.Millisecond))
	_, err := c.Generate(context.Background(), GenerateRequest{Model: "m", Prompt: "p"})
	if !errors.Is(err, common.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable after exhausting retries", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want exactly maxRetries attempts", calls.Load())
	}
}

func TestGenerateStopsOnDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, nil, WithMaxRetries(3), WithBackoff(time.Millisecond))
	start := time.Now()
	_, err := c.Generate(ctx, GenerateRequest{Model: "m", Prompt: "p"})
	if !errors.Is(err, common.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Generate kept retrying past the deadline (%v)", elapsed)
	}
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			t.Errorf("path = %q, want /api/tags", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]string{
				{"name": "moondream:1.8b"},
				{"name": "qwen2:1.5b"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)

	if err := c.Available(context.Background(), "moondream:1.8b"); err != nil {
		t.Errorf("exact tag should be available: %v", err)
	}
	if err := c.Available(context.Background(), "qwen2"); err != nil {
		t.Errorf("bare model name should match tagged entry: %v", err)
	}
	if err := c.Available(context.Background(), "llama3:8b"); !errors.Is(err, common.ErrUnavailable) {
		t.Errorf("missing model: err = %v, want ErrUnavailable", err)
	}
}
