package nlp

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Query verbs and particles that never belong to a fund name.
var fundStopWords = map[string]bool{
	// English
	"what": true, "is": true, "the": true, "nav": true, "of": true,
	"current": true, "value": true, "price": true, "show": true, "me": true,
	"tell": true, "about": true, "get": true, "returns": true, "return": true,
	"performance": true, "how": true, "much": true, "fund": true,
	"mutual": true, "month": true, "year": true, "latest": true,
	"today": true, "give": true, "please": true,
	// Hinglish
	"kya": true, "hai": true, "ka": true, "ki": true, "ke": true,
	"batao": true, "bataiye": true, "dikhao": true, "kitna": true,
	"kitni": true, "kitne": true, "abhi": true, "aaj": true, "mujhe": true,
}

var (
	devanagariParticlesRe = regexp.MustCompile(`(क्या|है|का|की|के|बताओ|बताइए|दिखाओ|कितना|कितनी|आज|अभी|मुझे)`)
	digitsRe              = regexp.MustCompile(`\d+`)
	fundPunctRe           = regexp.MustCompile(`[^\w\s\x{0900}-\x{097F}]`)
)

// ExtractFundName strips question particles, digits, punctuation, and stop
// words from a query, returning the surviving tokens rejoined in original
// order as the candidate fund name. Returns "" when nothing survives, which
// callers treat as "no fund named".
func ExtractFundName(text string) string {
	lower := Normalize(text)

	cleaned := devanagariParticlesRe.ReplaceAllString(lower, "")
	cleaned = digitsRe.ReplaceAllString(cleaned, "")
	cleaned = fundPunctRe.ReplaceAllString(cleaned, "")

	var kept []string
	for _, w := range strings.Fields(cleaned) {
		if fundStopWords[w] || utf8.RuneCountInString(w) <= 1 {
			continue
		}
		kept = append(kept, w)
	}

	return strings.Join(kept, " ")
}
