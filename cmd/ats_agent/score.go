package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/schemas"
	docs "github.com/jonathan/ats-optimizer/schemas"
)

// keywordSourceFlags are shared by every command that scores against a job.
type keywordSourceFlags struct {
	keywords string
	job      string
	url      string
}

func (k *keywordSourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&k.keywords, "keywords", "k", "", "Path to keyword set JSON")
	cmd.Flags().StringVarP(&k.job, "job", "j", "", "Path to job posting text file")
	cmd.Flags().StringVarP(&k.url, "url", "u", "", "URL to fetch job posting from")
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Calculate the ATS score of a resume against a job",
	RunE:  runScore,
}

var (
	scoreResume   string
	scoreKeywords keywordSourceFlags
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	scoreKeywords.register(scoreCmd)
	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	resume, err := loadResume(ctx, scoreResume)
	if err != nil {
		return err
	}
	ks, err := loadKeywords(ctx, scoreKeywords.keywords, scoreKeywords.job, scoreKeywords.url)
	if err != nil {
		return err
	}

	score, err := svc.CalculateScore(ctx, resume, ks)
	if err != nil {
		return fmt.Errorf("failed to calculate score: %w", err)
	}
	if err := schemas.ValidateValue(docs.Score, score); err != nil {
		return fmt.Errorf("score failed validation: %w", err)
	}
	if p := printer(); p != nil {
		p.PrintScore("", *score)
	}
	return writeJSON(score)
}
