package llm

import "testing"

func TestDecodeJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantKey string
		wantVal any
		wantErr bool
	}{
		{
			name:    "clean object",
			in:      `{"outcome": "approved"}`,
			wantKey: "outcome",
			wantVal: "approved",
		},
		{
			name:    "leading and trailing whitespace",
			in:      "\n\t {\"score\": 0.8} \n",
			wantKey: "score",
			wantVal: 0.8,
		},
		{
			name:    "markdown fenced",
			in:      "```json\n{\"bank_name\": \"FAB\"}\n```",
			wantKey: "bank_name",
			wantVal: "FAB",
		},
		{
			name:    "prose around object",
			in:      `Sure! The extracted fields are {"income": 3200} as requested.`,
			wantKey: "income",
			wantVal: 3200.0,
		},
		{
			name:    "nested braces",
			in:      `prefix {"a": {"b": 1}, "c": "x"} suffix`,
			wantKey: "c",
			wantVal: "x",
		},
		{
			name:    "braces inside strings ignored",
			in:      `{"note": "contains } brace", "ok": true}`,
			wantKey: "ok",
			wantVal: true,
		},
		{
			name:    "no object at all",
			in:      "the model refused to answer",
			wantErr: true,
		},
		{
			name:    "unbalanced braces",
			in:      `{"broken": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeJSONObject(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeJSONObject(%q) = %v, want error", tt.in, m)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeJSONObject(%q): %v", tt.in, err)
			}
			if got := m[tt.wantKey]; got != tt.wantVal {
				t.Errorf("m[%q] = %v, want %v", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestFirstBalancedObjectEscapedQuotes(t *testing.T) {
	in := `{"quote": "she said \"hi {there}\""}`
	span, ok := firstBalancedObject("noise " + in + " noise")
	if !ok {
		t.Fatal("firstBalancedObject found nothing")
	}
	if span != in {
		t.Errorf("span = %q, want %q", span, in)
	}
}
