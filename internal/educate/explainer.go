// Package educate is the Term Explanation Service: it resolves a financial
// term to its canonical key and renders a plain-language explanation in the
// requested register. An optional LLM path runs first when configured; the
// built-in table always backs it up.
package educate

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/nlp"
)

// Explainer maps resolved terms to explanations
type Explainer struct {
	client *openai.Client // nil when no API key is configured
	config model.LLMConfig
}

// New creates an explainer. Without an API key only the built-in table is
// used.
func New(cfg model.LLMConfig) *Explainer {
	e := &Explainer{config: cfg}
	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		e.client = openai.NewClientWithConfig(clientConfig)
	}
	return e
}

// Explain resolves the term and returns an explanation in the requested
// language, falling back to English when that register has no text. Returns
// nil when the term is unknown — an expected outcome, not an error.
func (e *Explainer) Explain(ctx context.Context, term string, language model.Language) (*model.Explanation, error) {
	resolved := nlp.ResolveTerm(term)

	if e.client != nil {
		if text := e.explainLLM(ctx, resolved, language); text != "" {
			return &model.Explanation{
				Term:     resolved,
				Text:     text,
				Language: language,
				Source:   "ai",
			}, nil
		}
	}

	if byLang, ok := explanations[resolved]; ok {
		return builtinExplanation(resolved, byLang, language), nil
	}

	// Partial match against known keys catches noisy resolutions
	for key, byLang := range explanations {
		if strings.Contains(resolved, key) || strings.Contains(key, resolved) {
			return builtinExplanation(key, byLang, language), nil
		}
	}

	return nil, nil
}

// AvailableTerms lists the canonical keys with built-in explanations
func (e *Explainer) AvailableTerms() []string {
	return nlp.CanonicalTerms
}

func builtinExplanation(key string, byLang map[model.Language]string, language model.Language) *model.Explanation {
	lang := langKey(language)
	text := byLang[lang]
	if text == "" {
		lang = model.LangEnglish
		text = byLang[model.LangEnglish]
	}
	return &model.Explanation{
		Term:     key,
		Text:     text,
		Language: lang,
		Source:   "builtin",
	}
}

func langKey(language model.Language) model.Language {
	switch strings.ToLower(string(language)) {
	case "hi", "hi-in":
		return model.LangHindi
	case "hinglish":
		return model.LangHinglish
	default:
		return model.LangEnglish
	}
}

// explainLLM asks the chat API for a short explanation. Any failure returns
// "" so the caller falls through to the built-in table.
func (e *Explainer) explainLLM(ctx context.Context, term string, language model.Language) string {
	timeout := time.Duration(e.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	register := "simple English"
	if langKey(language) != model.LangEnglish {
		register = "Hinglish (Hindi written in Roman script mixed with English)"
	}

	chatModel := e.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	maxTokens := e.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 200
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a friendly Indian mutual fund advisor. Respond in %s so a first-time investor can understand. Use examples with Indian Rupees (₹). Keep the response under 100 words.", register),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Explain '%s' in mutual funds in very simple language for someone who knows nothing about investing.", term),
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	})
	if err != nil || len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
