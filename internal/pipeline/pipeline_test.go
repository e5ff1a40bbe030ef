package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finspeak/finspeak/internal/intent"
	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/nlp"
)

// stubDetector implements intent.Detector
type stubDetector struct {
	result model.IntentResult
	err    error
}

func (s *stubDetector) Name() string { return "stub" }

func (s *stubDetector) Detect(_ context.Context, _ string) (model.IntentResult, error) {
	return s.result, s.err
}

// stubCatalog implements Catalog
type stubCatalog struct {
	match   *model.FundMatch
	err     error
	gotName string
	calls   int
}

func (s *stubCatalog) LookupBestMatch(_ context.Context, name string) (*model.FundMatch, error) {
	s.calls++
	s.gotName = name
	return s.match, s.err
}

// stubMarket implements Market
type stubMarket struct {
	nav       *model.NAVQuote
	report    *model.ReturnReport
	err       error
	gotCode   string
	gotMonths int
}

func (s *stubMarket) CurrentNAV(_ context.Context, schemeCode string) (*model.NAVQuote, error) {
	s.gotCode = schemeCode
	return s.nav, s.err
}

func (s *stubMarket) HistoricalReturn(_ context.Context, schemeCode string, months int) (*model.ReturnReport, error) {
	s.gotCode = schemeCode
	s.gotMonths = months
	return s.report, s.err
}

// stubExplainer implements Explainer
type stubExplainer struct {
	explanation *model.Explanation
	err         error
}

func (s *stubExplainer) Explain(_ context.Context, _ string, _ model.Language) (*model.Explanation, error) {
	return s.explanation, s.err
}

func newTestPipeline(d intent.Detector, c Catalog, m Market, e Explainer) *Pipeline {
	return &Pipeline{
		detector:  d,
		fallback:  intent.NewRuleBased(),
		catalog:   c,
		market:    m,
		explainer: e,
		config:    model.DefaultConfig(),
	}
}

func TestPipeline_NAVFlow(t *testing.T) {
	cat := &stubCatalog{match: &model.FundMatch{SchemeCode: "100001", Name: "HDFC Equity Fund - Growth", Score: 100}}
	mkt := &stubMarket{nav: &model.NAVQuote{SchemeCode: "100001", SchemeName: "HDFC Equity Fund - Growth", NAV: 101.5, Date: "28-08-2026"}}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetNAV, PeriodMonths: 12, Confidence: 0.9}},
		cat, mkt, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "nav of hdfc equity fund"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if cat.gotName != "hdfc equity" {
		t.Errorf("catalog candidate = %q, want %q", cat.gotName, "hdfc equity")
	}
	if mkt.gotCode != "100001" {
		t.Errorf("market scheme code = %q, want 100001", mkt.gotCode)
	}
	if result.NAV == nil {
		t.Fatal("expected NAV in result")
	}
	if !strings.Contains(result.Answer, "101.50") {
		t.Errorf("answer should include the NAV: %q", result.Answer)
	}
}

func TestPipeline_ReturnFlowPassesPeriod(t *testing.T) {
	cat := &stubCatalog{match: &model.FundMatch{SchemeCode: "100002", Name: "SBI Bluechip Fund"}}
	mkt := &stubMarket{report: &model.ReturnReport{SchemeName: "SBI Bluechip Fund", PercentReturn: 12.5, PeriodMonths: 6, RequestedMonths: 6}}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetReturn, PeriodMonths: 6}},
		cat, mkt, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "6 month return of sbi bluechip"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if mkt.gotMonths != 6 {
		t.Errorf("market months = %d, want 6", mkt.gotMonths)
	}
	if result.Return == nil {
		t.Fatal("expected return report in result")
	}
	if !strings.Contains(result.Answer, "12.50%") {
		t.Errorf("answer should include the percent return: %q", result.Answer)
	}
}

func TestPipeline_ReturnFlowDefaultsPeriod(t *testing.T) {
	cat := &stubCatalog{match: &model.FundMatch{SchemeCode: "100002", Name: "SBI Bluechip Fund"}}
	mkt := &stubMarket{report: &model.ReturnReport{SchemeName: "SBI Bluechip Fund"}}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetReturn}},
		cat, mkt, &stubExplainer{},
	)

	if _, err := p.Answer(context.Background(), model.Query{Text: "sbi bluechip return"}); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if mkt.gotMonths != nlp.DefaultPeriodMonths {
		t.Errorf("market months = %d, want default %d", mkt.gotMonths, nlp.DefaultPeriodMonths)
	}
}

func TestPipeline_ExplainFlow(t *testing.T) {
	exp := &stubExplainer{explanation: &model.Explanation{Term: "sip", Text: "SIP means investing monthly.", Language: model.LangEnglish, Source: "builtin"}}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentExplainTerm, Term: "sip"}},
		&stubCatalog{}, &stubMarket{}, exp,
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "what is sip"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.Term != "sip" {
		t.Errorf("term = %q, want sip", result.Term)
	}
	if result.Answer != "SIP means investing monthly." {
		t.Errorf("answer = %q", result.Answer)
	}
}

func TestPipeline_NoFundNameIsGraceful(t *testing.T) {
	cat := &stubCatalog{}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetNAV, PeriodMonths: 12}},
		cat, &stubMarket{}, &stubExplainer{},
	)

	// Every word is a stop word: no candidate survives
	result, err := p.Answer(context.Background(), model.Query{Text: "nav batao"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if cat.calls != 0 {
		t.Errorf("catalog should not be consulted without a candidate, got %d calls", cat.calls)
	}
	if !strings.Contains(result.Answer, "Could not identify a fund name") {
		t.Errorf("expected no-fund message, got %q", result.Answer)
	}
}

func TestPipeline_NoCatalogMatchIsGraceful(t *testing.T) {
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetNAV, PeriodMonths: 12}},
		&stubCatalog{match: nil}, &stubMarket{}, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "nav of frobnicate scheme"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(result.Answer, "Could not identify a fund name") {
		t.Errorf("expected no-fund message, got %q", result.Answer)
	}
}

func TestPipeline_UnknownWithFundDefaultsToNAV(t *testing.T) {
	cat := &stubCatalog{match: &model.FundMatch{SchemeCode: "100003", Name: "HDFC Flexi Cap Fund"}}
	mkt := &stubMarket{nav: &model.NAVQuote{SchemeName: "HDFC Flexi Cap Fund", NAV: 55.5, Date: "28-08-2026"}}
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentUnknown, PeriodMonths: 12, Confidence: 0.3}},
		cat, mkt, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "hdfc flexi cap"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.Intent.Intent != model.IntentGetNAV {
		t.Errorf("intent = %s, want get_nav default", result.Intent.Intent)
	}
	if result.NAV == nil {
		t.Error("expected NAV lookup for unknown intent with a fund name")
	}
}

func TestPipeline_UnknownWithoutFundGetsHelp(t *testing.T) {
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentUnknown, PeriodMonths: 12}},
		&stubCatalog{}, &stubMarket{}, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "kya aaj abhi"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(result.Answer, "kya aaj abhi") {
		t.Errorf("help message should echo the query, got %q", result.Answer)
	}
}

func TestPipeline_DetectorFailureDegradesToRules(t *testing.T) {
	exp := &stubExplainer{explanation: &model.Explanation{Term: "nav", Text: "NAV is the unit price.", Language: model.LangEnglish, Source: "builtin"}}
	p := newTestPipeline(
		&stubDetector{err: errors.New("api down")},
		&stubCatalog{}, &stubMarket{}, exp,
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "What is NAV?"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}

	if result.Intent.Intent != model.IntentExplainTerm {
		t.Errorf("intent = %s, want explain_term from rules fallback", result.Intent.Intent)
	}
	if result.Answer != "NAV is the unit price." {
		t.Errorf("answer = %q", result.Answer)
	}
}

func TestPipeline_MarketErrorPropagates(t *testing.T) {
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetNAV, PeriodMonths: 12}},
		&stubCatalog{match: &model.FundMatch{SchemeCode: "100001", Name: "HDFC Equity Fund"}},
		&stubMarket{err: errors.New("timeout")},
		&stubExplainer{},
	)

	if _, err := p.Answer(context.Background(), model.Query{Text: "nav of hdfc equity"}); err == nil {
		t.Error("expected market error to propagate")
	}
}

func TestPipeline_DevanagariQueryAnswersInHindi(t *testing.T) {
	// No declared language: the Devanagari script picks the Hindi register
	p := newTestPipeline(
		&stubDetector{result: model.IntentResult{Intent: model.IntentGetNAV, PeriodMonths: 12}},
		&stubCatalog{match: nil}, &stubMarket{}, &stubExplainer{},
	)

	result, err := p.Answer(context.Background(), model.Query{Text: "एचडीएफसी फंड एनएवी"})
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if !strings.Contains(result.Answer, "samajh nahi aaya") {
		t.Errorf("expected Hindi-register message, got %q", result.Answer)
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		query    model.Query
		expected model.Language
	}{
		{model.Query{Text: "what is nav", Language: model.LangHinglish}, model.LangHinglish},
		{model.Query{Text: "एनएवी क्या है"}, model.LangHindi},
		{model.Query{Text: "what is nav"}, model.LangEnglish},
	}

	for _, tt := range tests {
		if got := resolveLanguage(tt.query); got != tt.expected {
			t.Errorf("resolveLanguage(%+v) = %s, want %s", tt.query, got, tt.expected)
		}
	}
}
