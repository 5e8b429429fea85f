// Package extract converts recognized document text into a complete, typed
// field map using a model tier with a deterministic pattern-tier fallback.
package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/llm"
)

// Tier identifies which extraction strategy produced a result.
type Tier string

const (
	TierModel    Tier = "model"
	TierPatterns Tier = "patterns"
)

// defaultModelConfidence is assumed when the model omits its own confidence.
const defaultModelConfidence = 0.7

// Result is the extractor's tagged output. Fields always contains every
// schema field, typed and defaulted; callers branch on Tier rather than on
// errors for the fallback case.
type Result struct {
	Fields         map[string]any
	Confidence     float64
	Tier           Tier
	FallbackReason string
	ModelName      string
	Duration       time.Duration
}

// Extractor implements the model → patterns → sentinel chain. From the
// caller's perspective it never fails except for an unsupported document
// kind.
type Extractor struct {
	gen    llm.Generator
	cfg    common.LLMConfig
	logger *slog.Logger
}

func NewExtractor(gen llm.Generator, cfg common.LLMConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{gen: gen, cfg: cfg, logger: logger}
}

// Extract produces the normalized field map for text of the given kind.
func (e *Extractor) Extract(ctx context.Context, text string, kind constants.DocumentKind) (Result, error) {
	start := time.Now()

	specs, err := fieldSpecs(kind)
	if err != nil {
		return Result{}, err
	}

	raw, reason := e.modelTier(ctx, text, kind, specs)
	if reason == "" {
		fields := normalizeFields(specs, raw)
		conf := fields["confidence"].(float64)
		if conf == 0 {
			conf = defaultModelConfidence
			fields["confidence"] = conf
		}
		e.logger.Info("extract.model_tier.ok",
			"kind", kind, "confidence", conf,
			"elapsed_ms", time.Since(start).Milliseconds())
		return Result{
			Fields:     fields,
			Confidence: conf,
			Tier:       TierModel,
			ModelName:  e.cfg.ExtractModel,
			Duration:   time.Since(start),
		}, nil
	}

	// pattern tier: deterministic, always converges to a complete map
	e.logger.Warn("extract.falling_back_to_patterns", "kind", kind, "reason", reason)
	fields := normalizeFields(specs, runPatterns(kind, text))
	return Result{
		Fields:         fields,
		Confidence:     fields["confidence"].(float64),
		Tier:           TierPatterns,
		FallbackReason: reason,
		ModelName:      e.cfg.ExtractModel,
		Duration:       time.Since(start),
	}, nil
}

// modelTier runs the LLM extraction attempt. A non-empty reason means the
// tier did not produce usable output and the caller should fall back.
func (e *Extractor) modelTier(ctx context.Context, text string, kind constants.DocumentKind, specs []FieldSpec) (map[string]any, string) {
	if e.gen == nil {
		return nil, "no inference service configured"
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.ExtractTimeout)
	defer cancel()

	response, err := e.gen.Generate(ctx, llm.GenerateRequest{
		Model:       e.cfg.ExtractModel,
		Prompt:      buildUserPrompt(text),
		System:      buildSystemPrompt(kind, specs),
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	})
	if err != nil {
		return nil, "inference call failed: " + err.Error()
	}

	obj, err := llm.DecodeJSONObject(response)
	if err != nil {
		return nil, "model output not parseable as JSON: " + err.Error()
	}

	// local schema validation before trusting model output
	encoded, err := json.Marshal(obj)
	if err != nil {
		return nil, "re-encode model output: " + err.Error()
	}
	if err := llm.ValidateJSONAgainstSchema(buildJSONSchema(specs), encoded); err != nil {
		return nil, "model output failed schema validation: " + err.Error()
	}
	return obj, ""
}
