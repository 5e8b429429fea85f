package constants

import "strings"

// DocumentKind is the declared type of an uploaded document.
type DocumentKind string

const (
	BankStatement DocumentKind = "bank_statement"
	IdentityCard  DocumentKind = "identity_card"
)

// AllKinds lists the supported document kinds.
var AllKinds = []DocumentKind{BankStatement, IdentityCard}

// ValidKind reports whether k is a supported document kind.
func ValidKind(k DocumentKind) bool {
	for _, kn := range AllKinds {
		if kn == k {
			return true
		}
	}
	return false
}

// KindStrings returns the supported kinds as plain strings (for validators).
func KindStrings() []string {
	out := make([]string, len(AllKinds))
	for i, k := range AllKinds {
		out[i] = string(k)
	}
	return out
}

// RequiredKeywords holds the per-kind keyword sets the quality gate checks;
// at least two must appear (case-insensitive) in recognized text.
var RequiredKeywords = map[DocumentKind][]string{
	BankStatement: {"account", "balance", "statement", "bank"},
	IdentityCard:  {"emirates", "identity", "784"},
}

// FileFormats holds the allowed file formats for documents.
var FileFormats = []string{"PDF", "IMAGE"}

const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedExtensions holds the accepted upload extensions.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tiff": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its file format,
// or "" when the extension is not supported.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tiff":
		return IMAGE
	default:
		return ""
	}
}
