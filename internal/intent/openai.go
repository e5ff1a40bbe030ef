package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/nlp"
)

const classifyPrompt = `You classify mutual-fund questions. The user may write in English, Hindi (Devanagari), or Hinglish (Hindi in Roman script).

Classify the query into exactly one intent:
- get_nav: asking for the current NAV/price/value of a fund
- get_return: asking for returns/performance over a period
- explain_term: asking what a financial term means
- unknown: none of the above

Respond with ONLY a JSON object: {"intent": "...", "term": "..."}.
Set "term" only for explain_term, to the financial term being asked about, in lowercase English.`

// ModelBased classifies queries with an OpenAI-compatible chat API. It
// shares the IntentResult contract with the rule-based detector; the
// pipeline falls back to rules when a call fails.
type ModelBased struct {
	client *openai.Client
	config model.LLMConfig
}

// NewModelBased creates the model-backed detector
func NewModelBased(cfg model.LLMConfig) (*ModelBased, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("model-based intent detection requires an API key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &ModelBased{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// Name returns the strategy name
func (d *ModelBased) Name() string {
	return "model"
}

type classification struct {
	Intent string `json:"intent"`
	Term   string `json:"term"`
}

// Detect classifies the query via a chat completion. Period extraction stays
// rule-based: the deterministic extractor is already language-agnostic and
// exact, so only the intent label comes from the model.
func (d *ModelBased) Detect(ctx context.Context, text string) (model.IntentResult, error) {
	timeout := time.Duration(d.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatModel := d.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: classifyPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   100,
		Temperature: 0,
	})
	if err != nil {
		return model.IntentResult{}, fmt.Errorf("classify query: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.IntentResult{}, fmt.Errorf("no response from model")
	}

	var parsed classification
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.Trim(content, "` \n")
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return model.IntentResult{}, fmt.Errorf("parse classification: %w", err)
	}

	switch model.Intent(parsed.Intent) {
	case model.IntentGetNAV, model.IntentGetReturn:
		return model.IntentResult{
			Intent:       model.Intent(parsed.Intent),
			PeriodMonths: nlp.ExtractPeriodMonths(text),
			Confidence:   confPatternMatch,
		}, nil

	case model.IntentExplainTerm:
		term := nlp.Normalize(parsed.Term)
		if term == "" {
			term = nlp.ExtractExplainTerm(nlp.Normalize(text))
		}
		return model.IntentResult{
			Intent:     model.IntentExplainTerm,
			Term:       term,
			Confidence: confExplain,
		}, nil

	default:
		return model.IntentResult{
			Intent:       model.IntentUnknown,
			PeriodMonths: nlp.ExtractPeriodMonths(text),
			Confidence:   confUnknown,
		}, nil
	}
}
