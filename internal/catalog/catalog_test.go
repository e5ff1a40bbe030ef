package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finspeak/finspeak/internal/cache"
	"github.com/finspeak/finspeak/internal/match"
	"github.com/finspeak/finspeak/internal/model"
)

// fakeLister implements FundLister with a fixed list and call counting
type fakeLister struct {
	funds []model.Fund
	err   error
	calls int
}

func (f *fakeLister) FundList(ctx context.Context) ([]model.Fund, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.funds, nil
}

func testFunds() []model.Fund {
	return []model.Fund{
		{SchemeCode: "100001", SchemeName: "HDFC Equity Fund - Growth", FundHouse: "HDFC Mutual Fund"},
		{SchemeCode: "100002", SchemeName: "SBI Bluechip Fund - Direct", FundHouse: "SBI Mutual Fund"},
		{SchemeCode: "100003", SchemeName: "Vanguard S&P 500 Index Fund", FundHouse: "Vanguard"},
	}
}

func TestService_Funds_CachesList(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	store := cache.NewMemoryCache(time.Hour, time.Hour)
	svc := New(lister, store, time.Hour, match.TokenSetScorer{}, 60)

	for i := 0; i < 3; i++ {
		funds, err := svc.Funds(context.Background())
		if err != nil {
			t.Fatalf("Funds: %v", err)
		}
		if len(funds) != 3 {
			t.Fatalf("expected 3 funds, got %d", len(funds))
		}
	}

	if lister.calls != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", lister.calls)
	}
}

func TestService_Funds_NilStoreFetchesEveryTime(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	for i := 0; i < 2; i++ {
		if _, err := svc.Funds(context.Background()); err != nil {
			t.Fatalf("Funds: %v", err)
		}
	}

	if lister.calls != 2 {
		t.Errorf("expected 2 upstream fetches without a store, got %d", lister.calls)
	}
}

func TestService_Funds_CorruptCacheEntryRefetches(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	store := cache.NewMemoryCache(time.Hour, time.Hour)
	_ = store.Set(cache.Key("fund-list"), []byte("not json"), time.Hour)

	svc := New(lister, store, time.Hour, match.TokenSetScorer{}, 60)

	funds, err := svc.Funds(context.Background())
	if err != nil {
		t.Fatalf("Funds: %v", err)
	}
	if len(funds) != 3 {
		t.Errorf("expected 3 funds after refetch, got %d", len(funds))
	}
	if lister.calls != 1 {
		t.Errorf("expected 1 upstream fetch, got %d", lister.calls)
	}
}

func TestService_LookupBestMatch(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	fund, err := svc.LookupBestMatch(context.Background(), "hdfc equity")
	if err != nil {
		t.Fatalf("LookupBestMatch: %v", err)
	}
	if fund == nil {
		t.Fatal("expected a match")
	}

	if fund.SchemeCode != "100001" {
		t.Errorf("scheme code = %s, want 100001", fund.SchemeCode)
	}
	if fund.Name != "HDFC Equity Fund - Growth" {
		t.Errorf("name = %s", fund.Name)
	}
	if fund.Score < 60 {
		t.Errorf("score = %.2f, want >= 60", fund.Score)
	}
}

func TestService_LookupBestMatch_NoMatch(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	fund, err := svc.LookupBestMatch(context.Background(), "zzzz qqqq wwww")
	if err != nil {
		t.Fatalf("LookupBestMatch: %v", err)
	}
	if fund != nil {
		t.Errorf("expected nil for no clear match, got %+v", fund)
	}
}

func TestService_LookupBestMatch_EmptyName(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	fund, err := svc.LookupBestMatch(context.Background(), "   ")
	if err != nil {
		t.Fatalf("LookupBestMatch: %v", err)
	}
	if fund != nil {
		t.Errorf("expected nil for empty name, got %+v", fund)
	}
	if lister.calls != 0 {
		t.Errorf("expected no upstream fetch for empty name, got %d", lister.calls)
	}
}

func TestService_LookupBestMatch_ListerError(t *testing.T) {
	lister := &fakeLister{err: errors.New("api down")}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	if _, err := svc.LookupBestMatch(context.Background(), "hdfc equity"); err == nil {
		t.Error("expected error when the fund list cannot be loaded")
	}
}

func TestService_Search(t *testing.T) {
	lister := &fakeLister{funds: testFunds()}
	svc := New(lister, nil, time.Hour, match.TokenSetScorer{}, 60)

	funds, err := svc.Search(context.Background(), "FUND", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(funds) != 2 {
		t.Fatalf("expected limit of 2 results, got %d", len(funds))
	}
	// Catalog order is preserved
	if funds[0].SchemeCode != "100001" || funds[1].SchemeCode != "100002" {
		t.Errorf("unexpected search order: %+v", funds)
	}

	none, err := svc.Search(context.Background(), "  ", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if none != nil {
		t.Errorf("expected nil for blank query, got %+v", none)
	}
}
