package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPeriodMonths is assumed when a query names no period.
const DefaultPeriodMonths = 12

var (
	monthTokenRe = regexp.MustCompile(`(\d+)\s*(month|mahine|महीने|mahin[ae])`)
	yearTokenRe  = regexp.MustCompile(`(\d+)\s*(year|saal|साल)`)

	oneYearPhrases    = []string{"one year", "ek saal", "एक साल"}
	sixMonthPhrases   = []string{"six month", "cheh mahine", "छह महीने"}
	threeMonthPhrases = []string{"three month", "teen mahine", "तीन महीने"}
)

// ExtractPeriodMonths pulls a duration in months out of free text, in any of
// the three registers. Numeric tokens win over fixed phrases; first matching
// rule applies. Defaults to 12 months.
func ExtractPeriodMonths(text string) int {
	lower := Normalize(text)

	if m := monthTokenRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}
	if m := yearTokenRe.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n * 12
		}
	}

	if containsAny(lower, oneYearPhrases) {
		return 12
	}
	if containsAny(lower, sixMonthPhrases) {
		return 6
	}
	if containsAny(lower, threeMonthPhrases) {
		return 3
	}

	return DefaultPeriodMonths
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
