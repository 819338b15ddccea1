package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/pipeline"
)

var batchScoreCmd = &cobra.Command{
	Use:   "batch-score",
	Short: "Score every resume in a directory against one job",
	Long:  "Parse and score all .txt and .md resumes in a directory concurrently; results are ranked by score.",
	RunE:  runBatchScore,
}

var (
	batchDir         string
	batchConcurrency int
	batchKeywords    keywordSourceFlags
)

func init() {
	batchScoreCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory of resume .txt/.md files (required)")
	batchScoreCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Resumes scored at once (default from config, 4)")
	batchKeywords.register(batchScoreCmd)
	if err := batchScoreCmd.MarkFlagRequired("dir"); err != nil {
		panic(fmt.Sprintf("failed to mark dir flag as required: %v", err))
	}
	rootCmd.AddCommand(batchScoreCmd)
}

func runBatchScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	resumes, err := pipeline.LoadResumeDir(batchDir)
	if err != nil {
		return err
	}
	ks, err := loadKeywords(ctx, batchKeywords.keywords, batchKeywords.job, batchKeywords.url)
	if err != nil {
		return err
	}

	concurrency := cfg.Concurrency
	if batchConcurrency > 0 {
		concurrency = batchConcurrency
	}
	log.WithField("resumes", len(resumes)).WithField("concurrency", concurrency).Debug("scoring batch")

	entries, err := pipeline.ScoreBatch(ctx, ks, resumes, concurrency)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}
	if p := printer(); p != nil {
		for _, e := range entries {
			p.PrintScore(e.Name, e.Score)
		}
	}
	return writeJSON(entries)
}
