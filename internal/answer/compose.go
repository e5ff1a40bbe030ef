// Package answer renders a completed pipeline result into a natural-
// language sentence. Templates are keyed by intent and language and fall
// back to English; numeric fields render with fixed precision regardless of
// language (NAV and percent to 2 decimals, months to 1).
package answer

import (
	"fmt"

	"github.com/finspeak/finspeak/internal/model"
)

// Data carries whatever the pipeline fetched for the query
type Data struct {
	Query       string
	Fund        *model.FundMatch
	NAV         *model.NAVQuote
	Return      *model.ReturnReport
	Explanation *model.Explanation
	Term        string
}

var navTemplates = map[model.Language]string{
	model.LangEnglish: "The current NAV of %s is ₹%.2f as of %s.",
	model.LangHindi:   "%s ka current NAV ₹%.2f hai (%s).",
}

var returnTemplates = map[model.Language]string{
	model.LangEnglish: "%s has given %.2f%% returns over the last %.1f months.",
	model.LangHindi:   "%s ne last %.1f months mein %.2f%% return diya hai.",
}

var noFundMessages = map[model.Language]string{
	model.LangEnglish: "Could not identify a fund name in your query. Try something like 'NAV of HDFC Equity Fund'.",
	model.LangHindi:   "Fund ka naam samajh nahi aaya. Kripya fund ka naam likhein, jaise 'HDFC Equity Fund NAV batao'.",
}

var noDataMessages = map[model.Language]string{
	model.LangEnglish: "I couldn't find data for %s.",
	model.LangHindi:   "%s ka data nahi mila.",
}

var noTermMessages = map[model.Language]string{
	model.LangEnglish: "No explanation available for '%s'. Try terms like NAV, SIP, ELSS.",
	model.LangHindi:   "'%s' ki explanation abhi available nahi hai. NAV, SIP, ELSS jaise terms try karein.",
}

var helpMessages = map[model.Language]string{
	model.LangEnglish: "I can tell you a fund's current NAV, its returns over a period, and explain terms like NAV or SIP. You asked: '%s'. Could you rephrase your question?",
	model.LangHindi:   "Main fund ka NAV, returns, aur NAV/SIP jaise terms ki explanation bata sakta hoon. Aapne poocha: '%s'. Kripya apna sawal dobara poochein.",
}

// Compose renders the result into a sentence for the given language. Pure
// function: no I/O, total over its inputs.
func Compose(intent model.Intent, data Data, language model.Language) string {
	switch intent {
	case model.IntentGetNAV:
		if data.Fund == nil {
			return lookup(noFundMessages, language)
		}
		if data.NAV == nil {
			return fmt.Sprintf(lookup(noDataMessages, language), data.Fund.Name)
		}
		if key(language) == model.LangHindi {
			return fmt.Sprintf(navTemplates[model.LangHindi], data.NAV.SchemeName, data.NAV.NAV, data.NAV.Date)
		}
		return fmt.Sprintf(navTemplates[model.LangEnglish], data.NAV.SchemeName, data.NAV.NAV, data.NAV.Date)

	case model.IntentGetReturn:
		if data.Fund == nil {
			return lookup(noFundMessages, language)
		}
		if data.Return == nil {
			return fmt.Sprintf(lookup(noDataMessages, language), data.Fund.Name)
		}
		r := data.Return
		if key(language) == model.LangHindi {
			// Hindi template orders period before percent
			return fmt.Sprintf(returnTemplates[model.LangHindi], r.SchemeName, r.PeriodMonths, r.PercentReturn)
		}
		return fmt.Sprintf(returnTemplates[model.LangEnglish], r.SchemeName, r.PercentReturn, r.PeriodMonths)

	case model.IntentExplainTerm:
		if data.Explanation == nil {
			return fmt.Sprintf(lookup(noTermMessages, language), data.Term)
		}
		return data.Explanation.Text

	default:
		return fmt.Sprintf(lookup(helpMessages, language), data.Query)
	}
}

// key folds Hinglish into the Hindi template set; everything else is
// English. The Hindi templates are written in Roman script so they read
// naturally for both registers.
func key(language model.Language) model.Language {
	switch language {
	case model.LangHindi, model.LangHinglish, "hi-in":
		return model.LangHindi
	default:
		return model.LangEnglish
	}
}

func lookup(templates map[model.Language]string, language model.Language) string {
	if t, ok := templates[key(language)]; ok {
		return t
	}
	return templates[model.LangEnglish]
}
