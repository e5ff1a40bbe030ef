// Package market fetches live mutual-fund data from an MFAPI.in-style JSON
// API: the full scheme list, current NAVs, and NAV history for return
// computation. Absence of data is reported as a nil result; transport and
// decode problems are errors the caller can distinguish and retry.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finspeak/finspeak/internal/model"
)

const navDateLayout = "02-01-2006"

// Client is the Market Data Service
type Client struct {
	httpClient *http.Client
	limiter    *Limiter
	baseURL    string
	userAgent  string
	maxBytes   int64
}

// NewClient creates a client from HTTP configuration
func NewClient(cfg model.HTTPConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    NewLimiter(cfg.RequestsPerSecond, cfg.Burst),
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		maxBytes:   cfg.MaxBodyBytes,
	}
}

// schemeDetails is the per-scheme API payload: metadata plus NAV history,
// newest first, with NAVs as strings.
type schemeDetails struct {
	Meta struct {
		SchemeName string `json:"scheme_name"`
		FundHouse  string `json:"fund_house"`
	} `json:"meta"`
	Data []struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	} `json:"data"`
}

// FundList fetches the full scheme list
func (c *Client) FundList(ctx context.Context) ([]model.Fund, error) {
	body, err := c.get(ctx, c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetch fund list: %w", err)
	}

	var funds []model.Fund
	if err := json.Unmarshal(body, &funds); err != nil {
		return nil, fmt.Errorf("decode fund list: %w", err)
	}
	return funds, nil
}

// CurrentNAV returns the latest published NAV for a scheme, or nil when the
// API has no data for it.
func (c *Client) CurrentNAV(ctx context.Context, schemeCode string) (*model.NAVQuote, error) {
	details, err := c.details(ctx, schemeCode)
	if err != nil {
		return nil, err
	}
	if details == nil || len(details.Data) == 0 {
		return nil, nil
	}

	latest := details.Data[0]
	nav, err := decimal.NewFromString(latest.NAV)
	if err != nil {
		return nil, fmt.Errorf("parse nav %q: %w", latest.NAV, err)
	}

	return &model.NAVQuote{
		SchemeCode: schemeCode,
		SchemeName: details.Meta.SchemeName,
		NAV:        nav.InexactFloat64(),
		Date:       latest.Date,
		FundHouse:  details.Meta.FundHouse,
	}, nil
}

// HistoricalReturn computes the return over the given number of months by
// walking the NAV history for the first quote at least months*30 days older
// than the latest one. Returns nil when the history is too short.
func (c *Client) HistoricalReturn(ctx context.Context, schemeCode string, months int) (*model.ReturnReport, error) {
	details, err := c.details(ctx, schemeCode)
	if err != nil {
		return nil, err
	}
	if details == nil || len(details.Data) < 2 {
		return nil, nil
	}

	latest := details.Data[0]
	endNAV, err := decimal.NewFromString(latest.NAV)
	if err != nil {
		return nil, fmt.Errorf("parse nav %q: %w", latest.NAV, err)
	}
	endDate, err := time.Parse(navDateLayout, latest.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", latest.Date, err)
	}

	targetDays := months * 30
	var startNAV decimal.Decimal
	var startDate time.Time
	var startDateRaw string
	found := false

	for _, entry := range details.Data[1:] {
		entryDate, err := time.Parse(navDateLayout, entry.Date)
		if err != nil {
			continue
		}
		if int(endDate.Sub(entryDate).Hours()/24) < targetDays {
			continue
		}
		nav, err := decimal.NewFromString(entry.NAV)
		if err != nil {
			continue
		}
		startNAV = nav
		startDate = entryDate
		startDateRaw = entry.Date
		found = true
		break
	}

	if !found || startNAV.IsZero() {
		return nil, nil
	}

	absolute := endNAV.Sub(startNAV)
	percent := absolute.Div(startNAV).Mul(decimal.NewFromInt(100))
	actualMonths := endDate.Sub(startDate).Hours() / 24 / 30

	return &model.ReturnReport{
		SchemeCode:      schemeCode,
		SchemeName:      details.Meta.SchemeName,
		StartNAV:        startNAV.InexactFloat64(),
		EndNAV:          endNAV.InexactFloat64(),
		StartDate:       startDateRaw,
		EndDate:         latest.Date,
		AbsoluteReturn:  absolute.Round(4).InexactFloat64(),
		PercentReturn:   percent.Round(2).InexactFloat64(),
		PeriodMonths:    actualMonths,
		RequestedMonths: months,
	}, nil
}

// details fetches scheme details; nil on 404 (unknown scheme).
func (c *Client) details(ctx context.Context, schemeCode string) (*schemeDetails, error) {
	body, err := c.getAllowNotFound(ctx, c.baseURL+"/"+schemeCode)
	if err != nil {
		return nil, fmt.Errorf("fetch scheme %s: %w", schemeCode, err)
	}
	if body == nil {
		return nil, nil
	}

	var details schemeDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("decode scheme %s: %w", schemeCode, err)
	}
	return &details, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	body, err := c.getAllowNotFound(ctx, url)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("unexpected status: 404")
	}
	return body, nil
}

func (c *Client) getAllowNotFound(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx, url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
