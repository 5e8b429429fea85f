package quality

import (
	"strings"
	"testing"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/ocr"
)

const goodBankText = `FIRST ABU DHABI BANK
ACCOUNT STATEMENT
Account Holder: Ahmed Al Mansouri
Statement Period: 01/01/2024 - 31/01/2024
Closing Balance: AED 2,890.50`

func TestGateCheck(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		confidence float64
		kind       constants.DocumentKind
		wantOK     bool
		wantReason string
	}{
		{
			name:       "accepts good bank statement",
			text:       goodBankText,
			confidence: 0.9,
			kind:       constants.BankStatement,
			wantOK:     true,
		},
		{
			name:       "rejects low confidence",
			text:       goodBankText,
			confidence: 0.49,
			kind:       constants.BankStatement,
			wantOK:     false,
			wantReason: "OCR quality insufficient for processing",
		},
		{
			name:       "rejects short text",
			text:       "bank account",
			confidence: 0.9,
			kind:       constants.BankStatement,
			wantOK:     false,
			wantReason: "extracted text too short",
		},
		{
			name:       "rejects wrong document type",
			text:       strings.Repeat("Quarterly sales projections for the region. ", 3),
			confidence: 0.9,
			kind:       constants.BankStatement,
			wantOK:     false,
			wantReason: "does not look like a bank_statement",
		},
		{
			name:       "accepts identity card with two keywords",
			text:       "UNITED ARAB EMIRATES identity card holder record 784-1990-1234567-1",
			confidence: 0.8,
			kind:       constants.IdentityCard,
			wantOK:     true,
		},
		{
			name:       "rejects unknown kind",
			text:       goodBankText,
			confidence: 0.9,
			kind:       constants.DocumentKind("passport"),
			wantOK:     false,
			wantReason: "unknown document kind",
		},
	}

	g := NewGate(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := g.Check(ocr.Result{Text: tt.text, Confidence: tt.confidence}, tt.kind)
			if ok != tt.wantOK {
				t.Fatalf("Check() ok = %v, want %v (reason %q)", ok, tt.wantOK, reason)
			}
			if !ok && !strings.Contains(reason, tt.wantReason) {
				t.Errorf("Check() reason = %q, want it to contain %q", reason, tt.wantReason)
			}
			if ok && reason != "" {
				t.Errorf("Check() accepted but reason = %q, want empty", reason)
			}
		})
	}
}

func TestGateBoundaries(t *testing.T) {
	g := NewGate(nil)

	// exactly at the confidence floor passes the confidence check
	if ok, reason := g.Check(ocr.Result{Text: goodBankText, Confidence: MinConfidence}, constants.BankStatement); !ok {
		t.Errorf("confidence at floor rejected: %q", reason)
	}

	// exactly MinTextLength characters passes the length check; pad with
	// keyword-bearing filler so only length is at stake
	text := "bank account balance " + strings.Repeat("x", MinTextLength)
	text = text[:MinTextLength]
	if ok, reason := g.Check(ocr.Result{Text: text, Confidence: 0.9}, constants.BankStatement); !ok {
		t.Errorf("text at minimum length rejected: %q", reason)
	}
}
