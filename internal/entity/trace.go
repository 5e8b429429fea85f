package entity

import "time"

// StepKind is the kind of a single reasoning step.
type StepKind string

const (
	StepThought     StepKind = "thought"
	StepAction      StepKind = "action"
	StepObservation StepKind = "observation"
)

// ReasoningStep is one recorded step of a decision run. Steps are ephemeral:
// they live on the trace for one run and are summarized into the Decision.
type ReasoningStep struct {
	Kind       StepKind       `json:"kind"`
	Content    string         `json:"content"`
	Confidence *float64       `json:"confidence,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ReasoningTrace is the ordered step record of one decision run.
// Step order is significant and preserved exactly as produced.
type ReasoningTrace struct {
	Steps         []ReasoningStep `json:"steps"`
	FinalOutcome  string          `json:"final_outcome"`
	Confidence    float64         `json:"confidence"`
	StepCount     int             `json:"step_count"`
	TotalDuration time.Duration   `json:"total_duration"`
	ModelName     string          `json:"model_name"`
}

// Summary flattens the trace for audit/system-context payloads.
func (t *ReasoningTrace) Summary() map[string]any {
	steps := make([]map[string]any, len(t.Steps))
	for i, s := range t.Steps {
		m := map[string]any{
			"kind":    string(s.Kind),
			"content": s.Content,
		}
		if s.Confidence != nil {
			m["confidence"] = *s.Confidence
		}
		steps[i] = m
	}
	return map[string]any{
		"final_outcome":  t.FinalOutcome,
		"confidence":     t.Confidence,
		"step_count":     t.StepCount,
		"total_duration": t.TotalDuration.Milliseconds(),
		"model_name":     t.ModelName,
		"steps":          steps,
	}
}
