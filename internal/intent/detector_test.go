package intent

import (
	"testing"

	"github.com/finspeak/finspeak/internal/model"
)

func TestNewDetector_Rules(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Intent.Strategy = "rules"

	d, err := NewDetector(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name() != "rules" {
		t.Errorf("expected rules detector, got %s", d.Name())
	}
}

func TestNewDetector_EmptyStrategyDefaultsToRules(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Intent.Strategy = ""

	d, err := NewDetector(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name() != "rules" {
		t.Errorf("expected rules detector, got %s", d.Name())
	}
}

func TestNewDetector_ModelRequiresAPIKey(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Intent.Strategy = "model"
	cfg.LLM.APIKey = ""

	if _, err := NewDetector(cfg); err == nil {
		t.Error("expected error for model strategy without API key")
	}
}

func TestNewDetector_UnknownStrategy(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Intent.Strategy = "astrology"

	if _, err := NewDetector(cfg); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
