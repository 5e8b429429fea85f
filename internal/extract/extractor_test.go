package extract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/llm"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) Generate(_ context.Context, _ llm.GenerateRequest) (string, error) {
	return s.response, s.err
}

func (s *stubGenerator) Available(_ context.Context, _ string) error { return s.err }

func testLLMConfig() common.LLMConfig {
	return common.LLMConfig{
		ExtractModel:   "moondream:1.8b",
		Temperature:    0.1,
		ExtractTimeout: 5 * time.Second,
	}
}

func TestExtractModelTier(t *testing.T) {
	gen := &stubGenerator{response: `{
		"account_holder_name": "Ahmed Al Mansouri",
		"bank_name": "First Abu Dhabi Bank",
		"account_number": "1234567890123",
		"monthly_income": "3,200.00",
		"account_balance": 2890.5,
		"statement_period": "01/01/2024 - 31/01/2024",
		"confidence": 0.9
	}`}
	e := NewExtractor(gen, testLLMConfig(), nil)

	res, err := e.Extract(context.Background(), sampleStatement, constants.BankStatement)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Tier != TierModel {
		t.Fatalf("Tier = %q, want %q (fallback reason %q)", res.Tier, TierModel, res.FallbackReason)
	}
	if res.Confidence != 0.9 {
		t.Errorf("Confidence = %v, want 0.9", res.Confidence)
	}
	if got := res.Fields["monthly_income"]; got != 3200.0 {
		t.Errorf("monthly_income = %v, want coerced 3200", got)
	}
	if got := res.Fields["account_balance"]; got != 2890.5 {
		t.Errorf("account_balance = %v, want 2890.5", got)
	}
}

func TestExtractModelTierWrappedJSON(t *testing.T) {
	gen := &stubGenerator{response: "Here is the result:\n```json\n" +
		`{"full_name": "Ahmed Al Mansouri", "id_number": "784-1990-1234567-1", "nationality": "UAE", "date_of_birth": "15/06/1990", "expiry_date": "14/06/2027", "confidence": 0.85}` +
		"\n```\nLet me know if you need more."}
	e := NewExtractor(gen, testLLMConfig(), nil)

	res, err := e.Extract(context.Background(), sampleIdentity, constants.IdentityCard)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Tier != TierModel {
		t.Fatalf("Tier = %q, want model tier to survive prose wrapping", res.Tier)
	}
	if got := res.Fields["id_number"]; got != "784-1990-1234567-1" {
		t.Errorf("id_number = %v", got)
	}
}

func TestExtractFallsBackWhenUnavailable(t *testing.T) {
	gen := &stubGenerator{err: common.ErrUnavailable}
	e := NewExtractor(gen, testLLMConfig(), nil)

	res, err := e.Extract(context.Background(), sampleStatement, constants.BankStatement)
	if err != nil {
		t.Fatalf("Extract must not fail when inference is unavailable: %v", err)
	}
	if res.Tier != TierPatterns {
		t.Fatalf("Tier = %q, want %q", res.Tier, TierPatterns)
	}
	if res.FallbackReason == "" {
		t.Error("FallbackReason should be set on the pattern tier")
	}
	if res.Confidence != PatternTierConfidence {
		t.Errorf("Confidence = %v, want %v", res.Confidence, PatternTierConfidence)
	}

	specs, _ := fieldSpecs(constants.BankStatement)
	if len(res.Fields) != len(specs) {
		t.Errorf("Fields has %d entries, want complete map of %d", len(res.Fields), len(specs))
	}
	if got := res.Fields["monthly_income"]; got != 3200.0 {
		t.Errorf("monthly_income = %v, want 3200 from pattern tier", got)
	}
}

func TestExtractFallsBackOnGarbageOutput(t *testing.T) {
	gen := &stubGenerator{response: "I could not find any structured data in this document."}
	e := NewExtractor(gen, testLLMConfig(), nil)

	res, err := e.Extract(context.Background(), "no patterns either", constants.BankStatement)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Tier != TierPatterns {
		t.Fatalf("Tier = %q, want pattern fallback on unparseable output", res.Tier)
	}
	// nothing matched: every field is a typed sentinel, confidence stays 0.8
	if got := res.Fields["monthly_income"]; got != 0.0 {
		t.Errorf("monthly_income = %v, want numeric sentinel", got)
	}
	if got := res.Fields["bank_name"]; got != "Unknown" {
		t.Errorf("bank_name = %v, want text sentinel", got)
	}
	if res.Confidence != PatternTierConfidence {
		t.Errorf("Confidence = %v, want %v", res.Confidence, PatternTierConfidence)
	}
}

func TestExtractUnsupportedKind(t *testing.T) {
	e := NewExtractor(&stubGenerator{}, testLLMConfig(), nil)

	_, err := e.Extract(context.Background(), "text", constants.DocumentKind("payslip"))
	if !errors.Is(err, common.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestExtractDefaultsModelConfidence(t *testing.T) {
	gen := &stubGenerator{response: `{"full_name": "Ahmed", "id_number": "784-1990-1234567-1", "nationality": "UAE", "date_of_birth": "15/06/1990", "expiry_date": "14/06/2027"}`}
	e := NewExtractor(gen, testLLMConfig(), nil)

	res, err := e.Extract(context.Background(), sampleIdentity, constants.IdentityCard)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Tier != TierModel {
		t.Fatalf("Tier = %q, want model", res.Tier)
	}
	if res.Confidence != defaultModelConfidence {
		t.Errorf("Confidence = %v, want default %v when the model omits it", res.Confidence, defaultModelConfidence)
	}
}
