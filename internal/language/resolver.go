// Package language maps human-readable language names to standardized codes.
package language

import (
	"strings"

	"golang.org/x/text/language"
)

// aliases covers the languages the product targets directly. Some of these
// (Punjabi, Sindhi) resolve inconsistently or not at all through generic
// locale lookups, so the table wins over the fallback.
var aliases = map[string]string{
	"english":  "en",
	"punjabi":  "pa",
	"sindhi":   "sd",
	"urdu":     "ur",
	"hindi":    "hi",
	"bengali":  "bn",
	"arabic":   "ar",
	"spanish":  "es",
	"french":   "fr",
	"german":   "de",
	"italian":  "it",
	"chinese":  "zh",
	"japanese": "ja",
	"korean":   "ko",
	"russian":  "ru",
}

// Resolve maps a language name to its standardized code. The lookup is
// case-insensitive: the curated alias table first, then a BCP 47 parse for
// callers that already pass a code ("pa", "en-GB"). The second return value
// is false when the language is not supported; callers must treat that as
// non-fatal.
func Resolve(name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return "", false
	}

	if code, ok := aliases[normalized]; ok {
		return code, true
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return "", false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
