// Package intent classifies what a query is asking for. Two strategies
// implement the same contract: a deterministic rule-based detector and an
// optional model-backed one, selected by configuration.
package intent

import (
	"context"
	"fmt"
	"strings"

	"github.com/finspeak/finspeak/internal/model"
)

// Detector turns raw query text into an IntentResult
type Detector interface {
	// Name returns the strategy name
	Name() string

	// Detect classifies the query. The rule-based detector never returns
	// an error; worst case is intent=unknown.
	Detect(ctx context.Context, text string) (model.IntentResult, error)
}

// NewDetector creates a detector based on configuration
func NewDetector(cfg *model.Config) (Detector, error) {
	switch strings.ToLower(cfg.Intent.Strategy) {
	case "rules", "":
		return NewRuleBased(), nil

	case "model":
		return NewModelBased(cfg.LLM)

	default:
		return nil, fmt.Errorf("unknown intent strategy: %s (supported: rules, model)", cfg.Intent.Strategy)
	}
}
