package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/generator"
)

var variationsCmd = &cobra.Command{
	Use:   "variations",
	Short: "Generate alternative wordings of a resume for a job",
	RunE:  runVariations,
}

var (
	variationsResume   string
	variationsCount    int
	variationsKeywords keywordSourceFlags
)

func init() {
	variationsCmd.Flags().StringVarP(&variationsResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	variationsCmd.Flags().IntVarP(&variationsCount, "count", "n", 3, "Number of variations")
	variationsKeywords.register(variationsCmd)
	if err := variationsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(variationsCmd)
}

func runVariations(cmd *cobra.Command, _ []string) error {
	if variationsCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	ctx := cmd.Context()
	resume, err := loadResume(ctx, variationsResume)
	if err != nil {
		return err
	}
	ks, err := loadKeywords(ctx, variationsKeywords.keywords, variationsKeywords.job, variationsKeywords.url)
	if err != nil {
		return err
	}
	return writeJSON(generator.GenerateVariations(resume, ks, variationsCount, time.Now()))
}
