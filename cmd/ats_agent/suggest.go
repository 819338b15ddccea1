package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/keywords"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "List job keywords missing from a resume's skills",
	RunE:  runSuggest,
}

var (
	suggestResume   string
	suggestKeywords keywordSourceFlags
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	suggestKeywords.register(suggestCmd)
	if err := suggestCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	resume, err := loadResume(ctx, suggestResume)
	if err != nil {
		return err
	}
	ks, err := loadKeywords(ctx, suggestKeywords.keywords, suggestKeywords.job, suggestKeywords.url)
	if err != nil {
		return err
	}

	suggestions, err := svc.GetSuggestions(ctx, keywords.ResumeSkills(resume), ks)
	if err != nil {
		return fmt.Errorf("failed to get suggestions: %w", err)
	}
	if p := printer(); p != nil {
		p.PrintSuggestions(suggestions)
	}
	return writeJSON(suggestions)
}
