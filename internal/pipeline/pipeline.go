// Package pipeline wires the query-understanding core to its collaborator
// services: intent detection, fund-name extraction, catalog resolution,
// market data, term explanation, and answer composition.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/finspeak/finspeak/internal/answer"
	"github.com/finspeak/finspeak/internal/cache"
	"github.com/finspeak/finspeak/internal/catalog"
	"github.com/finspeak/finspeak/internal/educate"
	"github.com/finspeak/finspeak/internal/intent"
	"github.com/finspeak/finspeak/internal/market"
	"github.com/finspeak/finspeak/internal/match"
	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/nlp"
)

// Catalog resolves free-text fund names
type Catalog interface {
	LookupBestMatch(ctx context.Context, name string) (*model.FundMatch, error)
}

// Market provides NAV and return data
type Market interface {
	CurrentNAV(ctx context.Context, schemeCode string) (*model.NAVQuote, error)
	HistoricalReturn(ctx context.Context, schemeCode string, months int) (*model.ReturnReport, error)
}

// Explainer renders term explanations
type Explainer interface {
	Explain(ctx context.Context, term string, language model.Language) (*model.Explanation, error)
}

// Pipeline orchestrates one query end to end
type Pipeline struct {
	detector  intent.Detector
	fallback  *intent.RuleBased // Used when the model-based detector fails
	catalog   Catalog
	market    Market
	explainer Explainer
	config    *model.Config
}

// Result is the structured outcome of one query
type Result struct {
	Query       model.Query         `json:"query"`
	Intent      model.IntentResult  `json:"intent"`
	Fund        *model.FundMatch    `json:"fund,omitempty"`
	Term        string              `json:"term,omitempty"`
	NAV         *model.NAVQuote     `json:"nav,omitempty"`
	Return      *model.ReturnReport `json:"return,omitempty"`
	Explanation *model.Explanation  `json:"explanation,omitempty"`
	Answer      string              `json:"answer"`
}

// New creates a pipeline with the given configuration
func New(cfg *model.Config) (*Pipeline, error) {
	detector, err := intent.NewDetector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create detector: %w", err)
	}

	client := market.NewClient(cfg.HTTP)

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.DiskDir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	scorer := match.NewScorer(cfg.Catalog.Matcher)

	return &Pipeline{
		detector:  detector,
		fallback:  intent.NewRuleBased(),
		catalog:   catalog.New(client, store, cfg.Cache.MemoryTTL, scorer, cfg.Catalog.Threshold),
		market:    client,
		explainer: educate.New(cfg.LLM),
		config:    cfg,
	}, nil
}

// Answer runs one query through the full pipeline. A query the system
// cannot understand still produces a Result with a language-appropriate
// message; an error is returned only for collaborator failures.
func (p *Pipeline) Answer(ctx context.Context, q model.Query) (*Result, error) {
	language := resolveLanguage(q)

	// 1. Detect intent. A failing model-based detector degrades to rules.
	detected, err := p.detector.Detect(ctx, q.Text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s detector failed, using rules: %v\n", p.detector.Name(), err)
		detected, _ = p.fallback.Detect(ctx, q.Text)
	}

	result := &Result{Query: q, Intent: detected}

	// 2. Definitional questions route to the explanation service.
	if detected.Intent == model.IntentExplainTerm {
		result.Term = nlp.ResolveTerm(detected.Term)
		explanation, err := p.explainer.Explain(ctx, detected.Term, language)
		if err != nil {
			return nil, fmt.Errorf("explain term: %w", err)
		}
		result.Explanation = explanation
		result.Answer = answer.Compose(detected.Intent, answer.Data{Term: result.Term, Explanation: explanation}, language)
		return result, nil
	}

	// 3. Everything else is a fund query. An unknown intent with a
	// recognizable fund name defaults to a NAV lookup.
	candidate := nlp.ExtractFundName(q.Text)
	if candidate == "" {
		if detected.Intent == model.IntentUnknown {
			result.Answer = answer.Compose(model.IntentUnknown, answer.Data{Query: q.Text}, language)
		} else {
			result.Answer = answer.Compose(detected.Intent, answer.Data{}, language)
		}
		return result, nil
	}

	// 4. Resolve the candidate against the catalog.
	fund, err := p.catalog.LookupBestMatch(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("lookup fund: %w", err)
	}
	if fund == nil {
		target := detected.Intent
		if target == model.IntentUnknown {
			target = model.IntentGetNAV
		}
		result.Answer = answer.Compose(target, answer.Data{}, language)
		return result, nil
	}
	result.Fund = fund

	// 5. Fetch data and compose.
	switch detected.Intent {
	case model.IntentGetReturn:
		months := detected.PeriodMonths
		if months <= 0 {
			months = nlp.DefaultPeriodMonths
		}
		report, err := p.market.HistoricalReturn(ctx, fund.SchemeCode, months)
		if err != nil {
			return nil, fmt.Errorf("fetch returns: %w", err)
		}
		result.Return = report
		result.Answer = answer.Compose(model.IntentGetReturn, answer.Data{Fund: fund, Return: report}, language)

	default: // get_nav, and unknown-with-fund defaults to NAV
		quote, err := p.market.CurrentNAV(ctx, fund.SchemeCode)
		if err != nil {
			return nil, fmt.Errorf("fetch nav: %w", err)
		}
		result.NAV = quote
		result.Intent.Intent = model.IntentGetNAV
		result.Answer = answer.Compose(model.IntentGetNAV, answer.Data{Fund: fund, NAV: quote}, language)
	}

	return result, nil
}

// resolveLanguage picks the answer register: the declared language when
// given, otherwise Hindi for Devanagari queries and English for the rest.
func resolveLanguage(q model.Query) model.Language {
	if q.Language != model.LangUnspecified {
		return q.Language
	}
	if nlp.HasDevanagari(q.Text) {
		return model.LangHindi
	}
	return model.LangEnglish
}
