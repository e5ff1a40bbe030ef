package intent

import (
	"context"
	"testing"

	"github.com/finspeak/finspeak/internal/model"
)

func TestRuleBased_NAVQueries(t *testing.T) {
	d := NewRuleBased()

	tests := []string{
		"What is the current NAV of Vanguard S&P 500 Fund?",
		"nav of hdfc equity fund",
		"price of sbi bluechip",
		"axis midcap nav batao",
		"kitna hai nav sbi bluechip ka",
	}

	for _, query := range tests {
		result, err := d.Detect(context.Background(), query)
		if err != nil {
			t.Fatalf("Detect(%q) returned error: %v", query, err)
		}
		if result.Intent != model.IntentGetNAV {
			t.Errorf("Detect(%q) intent = %s, want get_nav", query, result.Intent)
		}
		if result.PeriodMonths == 0 {
			t.Errorf("Detect(%q) missing period_months for fund intent", query)
		}
	}
}

func TestRuleBased_ReturnQueries(t *testing.T) {
	d := NewRuleBased()

	result, err := d.Detect(context.Background(), "Show me 6 month returns for Fidelity Growth Fund")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != model.IntentGetReturn {
		t.Errorf("intent = %s, want get_return", result.Intent)
	}
	if result.PeriodMonths != 6 {
		t.Errorf("period_months = %d, want 6", result.PeriodMonths)
	}
	if result.Confidence != confPatternMatch {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, confPatternMatch)
	}
}

func TestRuleBased_ExplainQueries(t *testing.T) {
	d := NewRuleBased()

	tests := []struct {
		query string
		term  string
	}{
		{"What is NAV?", "nav"},
		{"explain elss", "elss"},
		{"sip kya hota hai", "sip"},
		{"एसआईपी क्या है", "sip"},
	}

	for _, tt := range tests {
		result, err := d.Detect(context.Background(), tt.query)
		if err != nil {
			t.Fatalf("Detect(%q) returned error: %v", tt.query, err)
		}
		if result.Intent != model.IntentExplainTerm {
			t.Errorf("Detect(%q) intent = %s, want explain_term", tt.query, result.Intent)
		}
		if result.Term != tt.term {
			t.Errorf("Detect(%q) term = %q, want %q", tt.query, result.Term, tt.term)
		}
		if result.PeriodMonths != 0 {
			t.Errorf("Detect(%q) period_months = %d, want 0 for explain_term", tt.query, result.PeriodMonths)
		}
	}
}

func TestRuleBased_BrandHintForcesNAV(t *testing.T) {
	d := NewRuleBased()

	// "batao" is an explain signal, but the brand mention wins
	result, err := d.Detect(context.Background(), "HDFC Equity Fund batao")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != model.IntentGetNAV {
		t.Errorf("intent = %s, want get_nav from brand hint", result.Intent)
	}
	if result.Confidence != confBrandHint {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, confBrandHint)
	}

	// Known edge case: definitional phrasing with an incidental brand
	// mention still resolves to a fund query
	result, err = d.Detect(context.Background(), "What does NAV mean for HDFC funds?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != model.IntentGetNAV {
		t.Errorf("intent = %s, want get_nav for brand mention in definitional phrasing", result.Intent)
	}
}

func TestRuleBased_Unknown(t *testing.T) {
	d := NewRuleBased()

	result, err := d.Detect(context.Background(), "hello there general question")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intent != model.IntentUnknown {
		t.Errorf("intent = %s, want unknown", result.Intent)
	}
	if result.Confidence != confUnknown {
		t.Errorf("confidence = %.2f, want %.2f", result.Confidence, confUnknown)
	}
}

func TestRuleBased_IdempotentOverNormalization(t *testing.T) {
	d := NewRuleBased()

	raw := "  What is the CURRENT nav   of HDFC Equity Fund? "
	first := d.detect(raw)
	second := d.detect("what is the current nav of hdfc equity fund?")

	if first.Intent != second.Intent || first.PeriodMonths != second.PeriodMonths {
		t.Errorf("classification differs between raw and normalized input: %+v vs %+v", first, second)
	}
}
