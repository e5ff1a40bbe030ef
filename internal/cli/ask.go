package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finspeak/finspeak/internal/model"
	"github.com/finspeak/finspeak/internal/pipeline"
)

var (
	language       string
	timeout        time.Duration
	userAgent      string
	maxBytes       int64
	noCache        bool
	cacheDir       string
	outputJSON     bool
	matcherName    string
	matchThreshold float64
	intentStrategy string
	llmModel       string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a mutual fund question in English, Hindi, or Hinglish",
	Long: `Ask answers a single question end to end:
- Classify the intent (NAV lookup, returns, term explanation)
- Extract the investment period and fund name
- Resolve the fund against the live scheme list with fuzzy matching
- Fetch NAV or historical return data
- Answer in the language of the question

Example:
  finspeak ask "What is the NAV of HDFC Equity Fund?"
  finspeak ask "SBI Bluechip ka 6 month return batao"
  finspeak ask "एसआईपी क्या है?" --lang hi
  finspeak ask "explain elss" --intent model --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	// Output flags
	askCmd.Flags().StringVar(&language, "lang", "", "answer language (en, hi, hinglish; default: follow the question)")
	askCmd.Flags().BoolVar(&outputJSON, "json", false, "print the full structured result as JSON")

	// HTTP flags
	askCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall query timeout")
	askCmd.Flags().StringVar(&userAgent, "ua", "FinSpeak/0.2 (+https://github.com/finspeak/finspeak)", "HTTP User-Agent")
	askCmd.Flags().Int64Var(&maxBytes, "max-bytes", 20_000_000, "max response bytes to read")
	askCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fund-list cache (force fresh fetch)")
	askCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (memory-only when empty)")

	// Matching flags
	askCmd.Flags().StringVar(&matcherName, "matcher", "token_set", "fund-name matcher (token_set, substring)")
	askCmd.Flags().Float64Var(&matchThreshold, "threshold", 60, "minimum similarity score (0-100) to accept a fund match")

	// Intent flags
	askCmd.Flags().StringVar(&intentStrategy, "intent", "rules", "intent detection strategy (rules, model)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name for model-based detection and explanations")
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Question: %s\n", question)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}

	result, err := p.Answer(ctx, model.Query{Text: question, Language: model.Language(language)})
	if err != nil {
		return fmt.Errorf("answer failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Intent: %s (confidence %.1f)\n", result.Intent.Intent, result.Intent.Confidence)
		if result.Fund != nil {
			fmt.Fprintf(os.Stderr, "✓ Matched fund: %s (scheme %s, score %.0f)\n", result.Fund.Name, result.Fund.SchemeCode, result.Fund.Score)
		}
		if result.Term != "" {
			fmt.Fprintf(os.Stderr, "✓ Term: %s\n", result.Term)
		}
		fmt.Fprintln(os.Stderr)
	}

	if outputJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(result.Answer)
	return nil
}

// buildConfig assembles the pipeline configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	// Not every command registers every flag; zero values keep the default
	cfg := model.DefaultConfig()
	if timeout > 0 {
		cfg.HTTP.Timeout = timeout
	}
	if userAgent != "" {
		cfg.HTTP.UserAgent = userAgent
	}
	if maxBytes > 0 {
		cfg.HTTP.MaxBodyBytes = maxBytes
	}
	cfg.Cache.Enabled = !noCache
	cfg.Cache.DiskDir = cacheDir
	if matcherName != "" {
		cfg.Catalog.Matcher = matcherName
	}
	if matchThreshold > 0 {
		cfg.Catalog.Threshold = matchThreshold
	}
	if intentStrategy != "" {
		cfg.Intent.Strategy = intentStrategy
	}
	if llmModel != "" {
		cfg.LLM.Model = llmModel
	}
	cfg.Output.Verbose = verbose
	cfg.Output.JSON = outputJSON

	// The model-based detector and AI explanations need an API key
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	if intentStrategy == "model" && cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	return cfg, nil
}
