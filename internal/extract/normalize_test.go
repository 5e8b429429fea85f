package extract

import (
	"testing"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"plain float", 3200.5, 3200.5},
		{"int", 4000, 4000},
		{"numeric string", "2890.50", 2890.5},
		{"thousands separators", "3,200.00", 3200},
		{"currency prefix", "AED 1,500", 1500},
		{"dollar symbol", "$950.25", 950.25},
		{"arabic dirham symbol", "د.إ 700", 700},
		{"embedded amount", "approximately 1200 per month", 1200},
		{"garbage string", "not a number", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceNumber(tt.in); got != tt.want {
				t.Errorf("coerceNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoerceText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"plain", "Ahmed Al Mansouri", "Ahmed Al Mansouri"},
		{"trims whitespace", "  UAE  ", "UAE"},
		{"empty becomes sentinel", "", textSentinel},
		{"null string becomes sentinel", "null", textSentinel},
		{"n/a becomes sentinel", "N/A", textSentinel},
		{"non-string becomes sentinel", 42, textSentinel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerceText(tt.in); got != tt.want {
				t.Errorf("coerceText(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFieldsCompleteMap(t *testing.T) {
	specs, err := fieldSpecs(constants.BankStatement)
	if err != nil {
		t.Fatalf("fieldSpecs: %v", err)
	}

	out := normalizeFields(specs, map[string]any{
		"monthly_income": "AED 3,200.00",
		"bank_name":      "First Abu Dhabi Bank",
		"confidence":     1.7, // out of range, must clamp
	})

	if len(out) != len(specs) {
		t.Fatalf("normalized map has %d fields, want %d", len(out), len(specs))
	}
	if got := out["monthly_income"]; got != 3200.0 {
		t.Errorf("monthly_income = %v, want 3200", got)
	}
	if got := out["account_balance"]; got != numberSentinel {
		t.Errorf("account_balance = %v, want sentinel %v", got, numberSentinel)
	}
	if got := out["account_holder_name"]; got != textSentinel {
		t.Errorf("account_holder_name = %v, want sentinel %q", got, textSentinel)
	}
	if got := out["confidence"]; got != 1.0 {
		t.Errorf("confidence = %v, want clamped to 1.0", got)
	}
}

func TestFieldSpecsUnsupportedKind(t *testing.T) {
	if _, err := fieldSpecs(constants.DocumentKind("payslip")); err == nil {
		t.Fatal("fieldSpecs should reject an unknown document kind")
	}
}
