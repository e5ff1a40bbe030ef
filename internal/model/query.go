package model

// Intent classifies the purpose of a user query
type Intent string

const (
	IntentGetNAV      Intent = "get_nav"      // Current NAV lookup
	IntentGetReturn   Intent = "get_return"   // Return over a period
	IntentExplainTerm Intent = "explain_term" // Definitional question
	IntentUnknown     Intent = "unknown"      // Nothing matched
)

// Language identifies the register the user asked (or wants the answer) in
type Language string

const (
	LangEnglish     Language = "en"
	LangHindi       Language = "hi"
	LangHinglish    Language = "hinglish"
	LangUnspecified Language = ""
)

// Script identifies the writing system of a query
type Script string

const (
	ScriptDevanagari Script = "devanagari"
	ScriptLatin      Script = "latin"
)

// Query is the immutable input to the pipeline
type Query struct {
	Text     string   `json:"text"`               // Raw user text
	Language Language `json:"language,omitempty"` // Declared language, may be empty
}

// IntentResult is the output of intent detection
type IntentResult struct {
	Intent       Intent  `json:"intent"`
	PeriodMonths int     `json:"period_months,omitempty"` // 0 when the concept does not apply (explain_term)
	Term         string  `json:"term,omitempty"`          // Set for explain_term
	Confidence   float64 `json:"confidence,omitempty"`
}

// FundMatch is a fund resolved from free text against the catalog
type FundMatch struct {
	SchemeCode string  `json:"scheme_code"`
	Name       string  `json:"name"`
	FundHouse  string  `json:"fund_house,omitempty"`
	Score      float64 `json:"score"` // Similarity score 0-100
}
