package llm

import "context"

// GenerateRequest mirrors the inference service's synchronous generate call.
type GenerateRequest struct {
	Model       string
	Prompt      string
	System      string
	Temperature float32
	MaxTokens   int
}

// Generator is the inference contract the extractor and decision stage
// depend on. Generate returns the raw model text; implementations surface
// common.ErrUnavailable once bounded retries are exhausted, and callers treat
// that as recoverable (fallback tier / fallback decision), never as a task
// failure.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Available(ctx context.Context, model string) error
}
