package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a resume to match a job's keywords",
	Long:  "Optimize a resume for a job: add missing skills, strengthen weak bullets and summary, then re-score and compare with the original.",
	RunE:  runOptimize,
}

var (
	optimizeResume   string
	optimizeKeywords keywordSourceFlags
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	optimizeKeywords.register(optimizeCmd)
	if err := optimizeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	resume, err := loadResume(ctx, optimizeResume)
	if err != nil {
		return err
	}
	ks, err := loadKeywords(ctx, optimizeKeywords.keywords, optimizeKeywords.job, optimizeKeywords.url)
	if err != nil {
		return err
	}

	out, err := svc.OptimizeResume(ctx, resume, ks)
	if err != nil {
		return fmt.Errorf("failed to optimize resume: %w", err)
	}
	if p := printer(); p != nil {
		p.PrintChanges(out.OptimizedResume.Changes)
		p.PrintScore("OPTIMIZED SCORE", out.Score)
		if out.Comparison != nil {
			p.PrintComparison(*out.Comparison)
		}
	}
	return writeJSON(out)
}
