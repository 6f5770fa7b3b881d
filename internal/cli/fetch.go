package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suphian/quran-art/internal/corpus"
	"github.com/Suphian/quran-art/internal/model"
)

var (
	fetchDataset string
	fetchTimeout time.Duration
	fetchNoCache bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the corpus dataset without running the pipeline",
	Long: `Fetch downloads the QAC morphology table from the configured mirrors,
trying each in order, and writes it to the dataset path. The download is
robots.txt-checked, rate-limited per host, and cached; an existing
dataset file is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchDataset, "dataset", "data/qac-with-id.tsv", "TSV dataset path")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 2*time.Minute, "download timeout")
	fetchCmd.Flags().BoolVar(&fetchNoCache, "no-cache", false, "disable download cache (force fresh fetch)")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Dataset.Path = fetchDataset
	cfg.HTTP.Timeout = fetchTimeout
	cfg.Cache.Enabled = !fetchNoCache

	if _, err := os.Stat(cfg.Dataset.Path); err == nil {
		fmt.Printf("Dataset already present: %s\n", cfg.Dataset.Path)
		return nil
	}

	fetcher := corpus.NewFetcher(cfg)
	if err := fetcher.Download(ctx, cfg.Dataset.Path); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	fmt.Printf("✓ Downloaded dataset: %s\n", cfg.Dataset.Path)
	return nil
}
