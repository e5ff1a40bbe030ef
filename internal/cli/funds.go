package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/finspeak/finspeak/internal/cache"
	"github.com/finspeak/finspeak/internal/catalog"
	"github.com/finspeak/finspeak/internal/market"
	"github.com/finspeak/finspeak/internal/match"
)

var fundsLimit int

// fundsCmd represents the funds command
var fundsCmd = &cobra.Command{
	Use:   "funds <query>",
	Short: "Search the mutual fund scheme list by name",
	Long: `Funds searches the live scheme list for names containing the query,
case-insensitive. Useful for finding the exact scheme name before asking
about its NAV or returns.

Example:
  finspeak funds "hdfc flexi"
  finspeak funds bluechip --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runFunds,
}

func init() {
	rootCmd.AddCommand(fundsCmd)

	fundsCmd.Flags().IntVar(&fundsLimit, "limit", 20, "maximum number of results")
	fundsCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "query timeout")
	fundsCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the fund-list cache (force fresh fetch)")
	fundsCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (memory-only when empty)")
}

func runFunds(cmd *cobra.Command, args []string) error {
	query := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	client := market.NewClient(cfg.HTTP)

	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.DiskDir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	svc := catalog.New(client, store, cfg.Cache.MemoryTTL, match.NewScorer(cfg.Catalog.Matcher), cfg.Catalog.Threshold)

	funds, err := svc.Search(ctx, query, fundsLimit)
	if err != nil {
		return fmt.Errorf("search funds: %w", err)
	}

	if len(funds) == 0 {
		fmt.Printf("No funds found matching %q\n", query)
		return nil
	}

	for _, f := range funds {
		fmt.Printf("%-10s %s\n", f.SchemeCode, f.SchemeName)
	}
	return nil
}
