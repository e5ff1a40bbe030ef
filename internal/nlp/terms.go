package nlp

import (
	"regexp"
	"strings"
)

// CanonicalTerms is the ordered set of canonical term keys the resolver can
// land on. Order matters: substring resolution takes the first hit.
var CanonicalTerms = []string{
	"nav", "sip", "returns", "mutual fund", "expense ratio",
	"aum", "cagr", "exit load", "elss", "large cap", "small cap",
}

// termAlias maps a Devanagari or expanded-English form to its canonical key.
// An empty key marks a question filler that is stripped rather than mapped.
// The table is a slice, not a map: resolution ties break on table order.
type termAlias struct {
	alias string
	key   string
}

var termAliases = []termAlias{
	// Devanagari
	{"एनएवी", "nav"}, {"एन ए वी", "nav"},
	{"एसआईपी", "sip"}, {"एस आई पी", "sip"},
	{"रिटर्न्स", "returns"}, {"रिटर्न", "returns"},
	{"म्यूचुअल फंड", "mutual fund"}, {"म्युचुअल फंड", "mutual fund"},
	{"एक्सपेंस रेशियो", "expense ratio"},
	{"ईएलएसएस", "elss"},
	{"लार्ज कैप", "large cap"}, {"लार्ज़ कैप", "large cap"},
	{"स्मॉल कैप", "small cap"},
	{"सीएजीआर", "cagr"},
	{"एक्जिट लोड", "exit load"},
	{"एयूएम", "aum"},
	// Expanded English forms
	{"net asset value", "nav"},
	{"systematic investment plan", "sip"},
	{"equity linked savings scheme", "elss"},
	{"assets under management", "aum"},
	{"compound annual growth rate", "cagr"},
	// Hinglish question fillers, stripped during term extraction
	{"kya hota hai", ""}, {"kya hoti hai", ""}, {"kya hai", ""},
	{"matlab kya hai", ""}, {"matlab", ""},
	{"samjhao", ""}, {"samjhaiye", ""}, {"batao", ""}, {"bataiye", ""},
}

// Explain-signal pattern sets, per script. Devanagari queries get the Hindi
// set, Latin queries the English set; the Hinglish set applies either way.
var (
	ExplainSignalsHindi = compileAll(
		`क्या\s*(है|होता|होती|हैं|होते)`,
		`(मतलब|अर्थ|meaning)`,
		`(समझाओ|समझाइए|बताओ|बताइए)`,
	)
	ExplainSignalsHinglish = compileAll(
		`\b(kya\s+h[ao]i|kya\s+hota?\s+h[ao]i)\b`,
		`\b(matlab|meaning|samjh[ao]|bata[oi])\b`,
		`\b(explain|define)\b`,
	)
	ExplainSignalsEnglish = compileAll(
		`\b(what\s+is|what\s+are|explain|define|meaning\s+of|tell\s+me\s+about)\b`,
		`\b(what\s+does)\b.*\b(mean)\b`,
	)
)

// Keeps Latin word characters, digits, whitespace, and the Devanagari block.
var termPunctRe = regexp.MustCompile(`[^\w\s\x{0900}-\x{097F}]`)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// ResolveTerm maps any alias of a financial concept to its canonical key.
// Resolution is layered: exact canonical match, then bidirectional substring
// match against the alias table, then against the canonical key set. An
// unresolvable input passes through lowercased and trimmed so callers can
// report "unknown term" downstream. Never fails.
func ResolveTerm(candidate string) string {
	term := Normalize(candidate)
	if term == "" {
		return ""
	}

	for _, key := range CanonicalTerms {
		if term == key {
			return key
		}
	}

	for _, a := range termAliases {
		if a.key == "" {
			continue
		}
		if strings.Contains(term, a.alias) || strings.Contains(a.alias, term) {
			return a.key
		}
	}

	for _, key := range CanonicalTerms {
		if strings.Contains(term, key) || strings.Contains(key, term) {
			return key
		}
	}

	return term
}

// ExtractExplainTerm pulls the term to explain out of a definitional query.
// It strips every recognized explain signal (all three pattern sets; the
// stripping is script-independent), drops punctuation while preserving
// Devanagari and Latin word characters, then applies the alias table to the
// residue. An empty residue falls back to the original text.
func ExtractExplainTerm(normalized string) string {
	cleaned := normalized

	for _, re := range ExplainSignalsHindi {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, re := range ExplainSignalsHinglish {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, re := range ExplainSignalsEnglish {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	cleaned = strings.TrimSpace(termPunctRe.ReplaceAllString(cleaned, ""))

	for _, a := range termAliases {
		if !strings.Contains(cleaned, a.alias) {
			continue
		}
		if a.key != "" {
			return a.key
		}
		cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, a.alias, ""))
	}

	if cleaned == "" {
		return normalized
	}
	return cleaned
}
