package extract

import (
	"testing"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

const sampleStatement = `FIRST ABU DHABI BANK
ACCOUNT STATEMENT
Account Holder: Ahmed Al Mansouri
Account Number: 1234567890123
Statement Period: 01/01/2024 - 31/01/2024
Opening Balance: AED 2,150.00
SALARY CREDIT AED 3,200.00
Utility Payment AED -310.50
Closing Balance: AED 2,890.50`

const sampleIdentity = `UNITED ARAB EMIRATES
IDENTITY CARD
Name: Ahmed Al Mansouri
ID Number: 784-1990-1234567-1
Nationality: UAE
Date of Birth: 15/06/1990
Expiry Date: 14/06/2027`

func TestRunPatternsBankStatement(t *testing.T) {
	raw := runPatterns(constants.BankStatement, sampleStatement)

	if got := raw["confidence"]; got != PatternTierConfidence {
		t.Errorf("confidence = %v, want %v", got, PatternTierConfidence)
	}
	want := map[string]string{
		"monthly_income":      "3,200.00",
		"account_balance":     "2,890.50",
		"account_number":      "1234567890123",
		"account_holder_name": "Ahmed Al Mansouri",
		"statement_period":    "01/01/2024 - 31/01/2024",
	}
	for field, exp := range want {
		got, ok := raw[field].(string)
		if !ok {
			t.Errorf("%s missing from pattern output", field)
			continue
		}
		if got != exp {
			t.Errorf("%s = %q, want %q", field, got, exp)
		}
	}
	if bank, _ := raw["bank_name"].(string); bank != "FIRST ABU DHABI BANK" {
		t.Errorf("bank_name = %q, want header line", bank)
	}
}

func TestRunPatternsIdentityCard(t *testing.T) {
	raw := runPatterns(constants.IdentityCard, sampleIdentity)

	want := map[string]string{
		"id_number":     "784-1990-1234567-1",
		"full_name":     "Ahmed Al Mansouri",
		"nationality":   "UAE",
		"date_of_birth": "15/06/1990",
		"expiry_date":   "14/06/2027",
	}
	for field, exp := range want {
		if got, _ := raw[field].(string); got != exp {
			t.Errorf("%s = %q, want %q", field, got, exp)
		}
	}
}

func TestRunPatternsOrderedFallthrough(t *testing.T) {
	// no salary line: the later "monthly income" pattern should fire
	text := "Monthly Income: AED 4,500\nCurrent Balance 900.00"
	raw := runPatterns(constants.BankStatement, text)

	if got, _ := raw["monthly_income"].(string); got != "4,500" {
		t.Errorf("monthly_income = %q, want %q", got, "4,500")
	}
	if got, _ := raw["account_balance"].(string); got != "900.00" {
		t.Errorf("account_balance = %q, want %q", got, "900.00")
	}
}

func TestRunPatternsUnmatchedFieldsAbsent(t *testing.T) {
	raw := runPatterns(constants.BankStatement, "nothing recognizable here")

	if len(raw) != 1 {
		t.Errorf("raw = %v, want only the confidence preset", raw)
	}
	if _, ok := raw["monthly_income"]; ok {
		t.Error("monthly_income should be absent when no pattern matches")
	}
}
