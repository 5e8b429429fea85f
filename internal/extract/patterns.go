package extract

import (
	"regexp"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// PatternTierConfidence is the fixed confidence reported by the
// deterministic pattern tier.
const PatternTierConfidence = 0.80

const amount = `([0-9][0-9,]*(?:\.[0-9]+)?)`

// fieldPatterns is the ordered pattern list for one field: patterns are tried
// in sequence and the first match wins.
type fieldPatterns struct {
	field    string
	patterns []*regexp.Regexp
}

var bankStatementPatterns = []fieldPatterns{
	{
		field: "monthly_income",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)salary[^0-9\n]{0,24}` + amount),
			regexp.MustCompile(`(?i)monthly\s+income[^0-9\n]{0,24}` + amount),
			regexp.MustCompile(`(?i)salary\s+credit[^0-9\n]{0,24}aed\s*` + amount),
		},
	},
	{
		field: "account_balance",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)closing\s+balance[^0-9\n]{0,24}` + amount),
			regexp.MustCompile(`(?i)current\s+balance[^0-9\n]{0,24}` + amount),
			regexp.MustCompile(`(?i)balance[^0-9\n]{0,24}` + amount),
		},
	},
	{
		field: "account_number",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)account\s*(?:number|no\.?)[^0-9\n]{0,12}([0-9][0-9 -]{6,})`),
			regexp.MustCompile(`(?i)iban[^A-Z0-9\n]{0,8}([A-Z]{2}[0-9A-Z ]{13,})`),
		},
	},
	{
		field: "bank_name",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?im)^([^\n]*\bbank\b[^\n]*)$`),
		},
	},
	{
		field: "account_holder_name",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)account\s+holder[:\s]+([^\n]+)`),
			regexp.MustCompile(`(?i)customer\s+name[:\s]+([^\n]+)`),
		},
	},
	{
		field: "statement_period",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)statement\s+period[:\s]+([^\n]+)`),
			regexp.MustCompile(`([0-9]{2}/[0-9]{2}/[0-9]{4}\s*[-–]\s*[0-9]{2}/[0-9]{2}/[0-9]{4})`),
		},
	},
}

var identityCardPatterns = []fieldPatterns{
	{
		field: "id_number",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(784-[0-9]{4}-[0-9]{7}-[0-9])`),
			regexp.MustCompile(`(?i)id\s*(?:number|no\.?)[^0-9\n]{0,12}([0-9-]{10,})`),
			regexp.MustCompile(`\b(784[0-9]{12})\b`),
		},
	},
	{
		field: "full_name",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bname[:\s]+([^\n]+)`),
		},
	},
	{
		field: "nationality",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)nationality[:\s]+([^\n]+)`),
		},
	},
	{
		field: "date_of_birth",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:date\s+of\s+birth|dob)[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`),
		},
	},
	{
		field: "expiry_date",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)expiry(?:\s+date)?[:\s]+([0-9]{1,2}/[0-9]{1,2}/[0-9]{4})`),
		},
	},
}

func patternsFor(kind constants.DocumentKind) []fieldPatterns {
	switch kind {
	case constants.BankStatement:
		return bankStatementPatterns
	case constants.IdentityCard:
		return identityCardPatterns
	default:
		return nil
	}
}

// runPatterns scans text with the kind's ordered pattern lists and returns a
// raw field map; unmatched fields are simply absent and pick up sentinels in
// normalization. Always succeeds.
func runPatterns(kind constants.DocumentKind, text string) map[string]any {
	raw := map[string]any{"confidence": PatternTierConfidence}
	for _, fp := range patternsFor(kind) {
		for _, re := range fp.patterns {
			m := re.FindStringSubmatch(text)
			if len(m) > 1 {
				raw[fp.field] = m[1]
				break
			}
		}
	}
	return raw
}
