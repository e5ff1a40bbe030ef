package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/nlp"
)

// Per-stage confidences for the rule-based detector.
const (
	confPatternMatch = 0.9
	confExplain      = 0.8
	confBrandHint    = 0.6
	confUnknown      = 0.3
)

// navPatterns and returnPatterns are ordered: the first match wins and the
// ordering is part of the contract.
var navPatterns = compile(
	// English. The first pattern requires an "of" continuation so that a
	// bare definitional "what is nav" falls through to the explain stage.
	`\b(what|current|latest|today)\b.*\b(nav|price|value)\b.*\bof\b`,
	`\bnav\b.*\bof\b`,
	`\bprice\b.*\bof\b`,
	`\bcurrent\s+value\b`,
	// Hindi / Hinglish
	`(एनएवी|nav)\s*(बताओ|batao|dikhao|दिखाओ)`,
	`\b(nav|price|value)\b.*(batao|dikhao|bataiye)\b`,
	`\b(kitna|kitni)\b.*\b(nav|price|value)\b`,
)

var returnPatterns = compile(
	// English
	`\b(return|returns|performance|gain|growth)\b`,
	`\bhow\s+(much|well)\b.*\b(perform|doing|grown)\b`,
	`\b(\d+)\s*(month|year)\b.*\b(return|performance)\b`,
	// Hindi / Hinglish
	`(रिटर्न|return)\s*(बताओ|दिखाओ|कितना|kitna)`,
	`\b(return|returns|performance)\b.*(batao|dikhao)\b`,
	`\b(kitna|kitni)\b.*(return|badha|growth)\b`,
)

// Known fund-house brand tokens. A brand mention implies a fund lookup even
// without an explicit NAV or return verb.
var fundHouseHints = []string{
	"hdfc", "sbi", "icici", "axis", "kotak", "nippon", "tata",
	"birla", "aditya", "dsp", "franklin", "mirae", "parag",
	"uti", "canara", "idfc", "sundaram", "motilal", "edelweiss",
	"bandhan", "pgim", "invesco", "quant", "baroda", "hsbc",
	"mahindra", "union", "lic", "ppfas", "quantum",
}

// explainSets maps a script to its ordered explain-signal pattern list.
// Adding a language means adding an entry here, not new control flow.
var explainSets = map[model.Script][][]*regexp.Regexp{
	model.ScriptDevanagari: {nlp.ExplainSignalsHindi, nlp.ExplainSignalsHinglish},
	model.ScriptLatin:      {nlp.ExplainSignalsEnglish, nlp.ExplainSignalsHinglish},
}

func compile(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// RuleBased is the deterministic pattern-matching detector
type RuleBased struct{}

// NewRuleBased creates the rule-based detector
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Name returns the strategy name
func (d *RuleBased) Name() string {
	return "rules"
}

// Detect classifies the query by ordered pattern matching. Stages, in order:
// NAV patterns, RETURN patterns, fund-house hint (forces get_nav on an
// otherwise-unknown query), then explain signals for the query's script.
// Never returns an error.
func (d *RuleBased) Detect(_ context.Context, text string) (model.IntentResult, error) {
	return d.detect(text), nil
}

func (d *RuleBased) detect(text string) model.IntentResult {
	lower := nlp.Normalize(text)
	script := nlp.DetectScript(text)

	hasFundHint := false
	for _, hint := range fundHouseHints {
		if strings.Contains(lower, hint) {
			hasFundHint = true
			break
		}
	}

	detected := model.IntentUnknown

	for _, re := range navPatterns {
		if re.MatchString(lower) {
			detected = model.IntentGetNAV
			break
		}
	}

	if detected == model.IntentUnknown {
		for _, re := range returnPatterns {
			if re.MatchString(lower) {
				detected = model.IntentGetReturn
				break
			}
		}
	}

	// A fund intent or a brand mention means this is a fund query, not a
	// definitional one. Explain signals are deliberately not consulted.
	if detected != model.IntentUnknown || hasFundHint {
		confidence := confPatternMatch
		if detected == model.IntentUnknown {
			detected = model.IntentGetNAV // brand mention defaults to NAV lookup
			confidence = confBrandHint
		}
		return model.IntentResult{
			Intent:       detected,
			PeriodMonths: nlp.ExtractPeriodMonths(text),
			Confidence:   confidence,
		}
	}

	for _, set := range explainSets[script] {
		for _, re := range set {
			if re.MatchString(lower) {
				return model.IntentResult{
					Intent:     model.IntentExplainTerm,
					Term:       nlp.ExtractExplainTerm(lower),
					Confidence: confExplain,
				}
			}
		}
	}

	return model.IntentResult{
		Intent:       model.IntentUnknown,
		PeriodMonths: nlp.ExtractPeriodMonths(text),
		Confidence:   confUnknown,
	}
}
