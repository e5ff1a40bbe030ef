package model

// Fund is one entry of the fund catalog
type Fund struct {
	SchemeCode string `json:"schemeCode"`
	SchemeName string `json:"schemeName"`
	FundHouse  string `json:"fundHouse,omitempty"`
}

// NAVQuote is the latest published NAV for a scheme
type NAVQuote struct {
	SchemeCode string  `json:"scheme_code"`
	SchemeName string  `json:"scheme_name"`
	NAV        float64 `json:"nav"`
	Date       string  `json:"date"` // DD-MM-YYYY as published
	FundHouse  string  `json:"fund_house,omitempty"`
}

// ReturnReport describes fund performance over a period
type ReturnReport struct {
	SchemeCode      string  `json:"scheme_code"`
	SchemeName      string  `json:"scheme_name"`
	StartNAV        float64 `json:"start_nav"`
	EndNAV          float64 `json:"end_nav"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	AbsoluteReturn  float64 `json:"absolute_return"`
	PercentReturn   float64 `json:"percent_return"`
	PeriodMonths    float64 `json:"period_months"`    // Actual span of the data used
	RequestedMonths int     `json:"requested_months"` // What the user asked for
}

// Explanation is a rendered term explanation
type Explanation struct {
	Term     string   `json:"term"` // Canonical key the input resolved to
	Text     string   `json:"text"`
	Language Language `json:"language"`
	Source   string   `json:"source"` // "ai" or "builtin"
}
