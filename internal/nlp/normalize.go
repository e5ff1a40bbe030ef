// Package nlp implements the deterministic text-understanding primitives:
// normalization, script detection, time-period extraction, financial-term
// resolution, and fund-name entity extraction. Everything here is a pure
// function over strings and is total over the string domain, including "".
package nlp

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/finspeak/finspeak/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases, trims, and collapses runs of whitespace to a single
// space. Normalizing already-normalized text is a no-op.
func Normalize(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// HasDevanagari reports whether text contains any code point in the
// Devanagari block (U+0900-U+097F).
func HasDevanagari(text string) bool {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}

// DetectScript classifies text as Devanagari or Latin. Mixed-script text
// counts as Devanagari so the Hindi pattern tables apply.
func DetectScript(text string) model.Script {
	if HasDevanagari(text) {
		return model.ScriptDevanagari
	}
	return model.ScriptLatin
}
