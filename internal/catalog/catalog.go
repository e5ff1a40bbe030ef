// Package catalog resolves free-text fund names against the live scheme
// list. The list is cached with a TTL because it is large and changes at
// most daily; the fuzzy matching itself stays pure and cache-free.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/finspeak/finspeak/internal/cache"
	"github.com/finspeak/finspeak/internal/match"
	"github.com/finspeak/finspeak/internal/model"
)

// FundLister provides the raw fund list. Implemented by the market client.
type FundLister interface {
	FundList(ctx context.Context) ([]model.Fund, error)
}

// Service is the Fund Catalog Service
type Service struct {
	lister   FundLister
	store    cache.Cache // nil disables caching
	cacheTTL time.Duration
	matcher  *match.Matcher
}

// New creates a catalog service. Pass a nil store to disable caching.
func New(lister FundLister, store cache.Cache, cacheTTL time.Duration, scorer match.Scorer, threshold float64) *Service {
	return &Service{
		lister:   lister,
		store:    store,
		cacheTTL: cacheTTL,
		matcher:  match.New(scorer, threshold),
	}
}

var fundListKey = cache.Key("fund-list")

// Funds returns the scheme list, from cache when fresh
func (s *Service) Funds(ctx context.Context) ([]model.Fund, error) {
	if s.store != nil {
		if data, found := s.store.Get(fundListKey); found {
			var funds []model.Fund
			if err := json.Unmarshal(data, &funds); err == nil {
				return funds, nil
			}
			// Corrupt entry; drop it and refetch
			_ = s.store.Delete(fundListKey)
		}
	}

	funds, err := s.lister.FundList(ctx)
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if data, err := json.Marshal(funds); err == nil {
			_ = s.store.Set(fundListKey, data, s.cacheTTL)
		}
	}

	return funds, nil
}

// LookupBestMatch resolves a free-text name to the best-matching fund, or
// nil when nothing clears the similarity threshold. Ties break by catalog
// order.
func (s *Service) LookupBestMatch(ctx context.Context, name string) (*model.FundMatch, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	funds, err := s.Funds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	names := make([]string, len(funds))
	for i, f := range funds {
		names[i] = f.SchemeName
	}

	best := s.matcher.Best(name, names)
	if best == nil {
		return nil, nil
	}

	fund := funds[best.Index]
	return &model.FundMatch{
		SchemeCode: fund.SchemeCode,
		Name:       fund.SchemeName,
		FundHouse:  fund.FundHouse,
		Score:      best.Score,
	}, nil
}

// Search returns up to limit funds whose name contains the query,
// case-insensitive, in catalog order.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]model.Fund, error) {
	funds, err := s.Funds(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}

	var matches []model.Fund
	for _, f := range funds {
		if strings.Contains(strings.ToLower(f.SchemeName), q) {
			matches = append(matches, f)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches, nil
}
