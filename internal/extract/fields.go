package extract

import (
	"fmt"
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

// FieldType is the coercion target for a schema field.
type FieldType int

const (
	Number FieldType = iota
	Text
)

// FieldSpec describes one output field: its name, type, and the extraction
// hint surfaced to the model prompt.
type FieldSpec struct {
	Name string
	Type FieldType
	Hint string
}

// Field schemas. Order matters: prompts enumerate them in this order and the
// pattern tier scans them in this order.
var bankStatementFields = []FieldSpec{
	{Name: "account_holder_name", Type: Text, Hint: `the account owner's full name, usually after "Account Holder"`},
	{Name: "bank_name", Type: Text, Hint: "the issuing bank's name from the statement header"},
	{Name: "account_number", Type: Text, Hint: `digits after "Account Number" or "Account No"`},
	{Name: "monthly_income", Type: Number, Hint: `monthly salary amount; look for "SALARY", "MONTHLY INCOME" or "SALARY CREDIT" lines with AED amounts`},
	{Name: "account_balance", Type: Number, Hint: `closing or current balance; look for "Closing Balance" or "Balance" with an AED amount`},
	{Name: "statement_period", Type: Text, Hint: `the covered date range, e.g. "01/01/2024 - 31/01/2024"`},
	{Name: "confidence", Type: Number, Hint: "your extraction confidence between 0 and 1"},
}

var identityCardFields = []FieldSpec{
	{Name: "full_name", Type: Text, Hint: `the holder's full name after "Name"`},
	{Name: "id_number", Type: Text, Hint: "the national ID in 784-XXXX-XXXXXXX-X format"},
	{Name: "nationality", Type: Text, Hint: "the holder's nationality"},
	{Name: "date_of_birth", Type: Text, Hint: "DD/MM/YYYY"},
	{Name: "expiry_date", Type: Text, Hint: "DD/MM/YYYY"},
	{Name: "confidence", Type: Number, Hint: "your extraction confidence between 0 and 1"},
}

// fieldSpecs resolves the schema for a document kind. An unknown kind is the
// extractor's only unrecoverable error.
func fieldSpecs(kind constants.DocumentKind) ([]FieldSpec, error) {
	switch kind {
	case constants.BankStatement:
		return bankStatementFields, nil
	case constants.IdentityCard:
		return identityCardFields, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupported, kind)
	}
}

// buildJSONSchema returns the JSON-Schema (draft 2020-12 subset) used both in
// the prompt and to validate the model's output locally.
func buildJSONSchema(specs []FieldSpec) map[string]any {
	props := map[string]any{}
	for _, s := range specs {
		switch {
		case s.Name == "confidence":
			props[s.Name] = map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0}
		case s.Type == Number:
			// models sometimes emit amounts as formatted strings; accept both
			// and let normalization coerce
			props[s.Name] = map[string]any{"type": []string{"number", "string"}}
		default:
			props[s.Name] = map[string]any{"type": "string"}
		}
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

// buildSystemPrompt composes the extraction instruction for a document kind,
// enumerating the exact output schema and the per-field hints.
func buildSystemPrompt(kind constants.DocumentKind, specs []FieldSpec) string {
	var fieldLines []string
	for _, s := range specs {
		typ := "string"
		if s.Type == Number {
			typ = "number"
		}
		fieldLines = append(fieldLines, fmt.Sprintf("- %q (%s): %s", s.Name, typ, s.Hint))
	}

	parts := []string{
		fmt.Sprintf("You are a document parser for %s documents. Return ONLY a JSON object with exactly these fields:", strings.ReplaceAll(string(kind), "_", " ")),
		strings.Join(fieldLines, "\n"),
		"Amounts are in AED; output numbers without currency symbols or thousands separators.",
		"Dates use DD/MM/YYYY.",
		"Never output null. If a field is not visible in the text, use 0 for numbers and \"Unknown\" for strings.",
		"Do not add commentary before or after the JSON.",
	}
	return strings.Join(parts, "\n")
}

// buildUserPrompt packages the recognized text (capped to keep small local
// models inside their context window).
func buildUserPrompt(text string) string {
	const maxChars = 4000
	var b strings.Builder
	b.WriteString("Recognized document text:\n")
	if len(text) > maxChars {
		b.WriteString(text[:maxChars])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}
