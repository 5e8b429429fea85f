package ocr

import (
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// placeholderConfidence is the fixed confidence reported for placeholder
// output. High enough that the downstream quality gate and extraction tiers
// can still be exercised when the recognition engine is not installed.
const placeholderConfidence = 0.82

var placeholderTexts = map[constants.DocumentKind]string{
	constants.BankStatement: `FIRST ABU DHABI BANK
ACCOUNT STATEMENT
Account Holder: Ahmed Al Mansouri
Account Number: 1234567890123
Statement Period: 01/01/2024 - 31/01/2024
Opening Balance: AED 2,150.00
SALARY CREDIT AED 3,200.00
Utility Payment AED -310.50
Closing Balance: AED 2,890.50`,

	constants.IdentityCard: `UNITED ARAB EMIRATES
FEDERAL AUTHORITY FOR IDENTITY AND CITIZENSHIP
IDENTITY CARD
Name: Ahmed Al Mansouri
ID Number: 784-1990-1234567-1
Nationality: UAE
Date of Birth: 15/06/1990
Expiry Date: 14/06/2027`,
}

// placeholderResult returns the deterministic stand-in recognition output for
// kind. Clearly flagged: Method "placeholder" and Placeholder=true, never
// conflated with real recognition.
func placeholderResult(kind constants.DocumentKind) Result {
	text := placeholderTexts[kind]
	var spans []Span
	for i, line := range strings.Split(text, "\n") {
		spans = append(spans, Span{
			Text:       line,
			Confidence: placeholderConfidence,
			Page:       1,
			Top:        i * 24,
			Height:     20,
			Width:      8 * len(line),
		})
	}
	return Result{
		Text:        text,
		Confidence:  placeholderConfidence,
		Spans:       spans,
		Pages:       1,
		Method:      "placeholder",
		Placeholder: true,
		Warnings:    []string{"recognition engine unavailable; deterministic placeholder output substituted"},
	}
}
