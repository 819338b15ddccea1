package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis: keywords, score, optimize, compare",
	Long: "Ingest a job posting, extract its keywords, load or parse a resume, score it, " +
		"optimize it, re-score and compare. Writes the complete result as JSON.",
	RunE: runAnalyze,
}

var (
	analyzeJobPath string
	analyzeJobURL  string
	analyzeResume  string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "job", "j", "", "Path to job posting text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "url", "u", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJobPath == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --url must be provided")
	}
	if analyzeJobPath != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --url are mutually exclusive; provide only one")
	}

	opts := pipeline.RunOptions{
		JobPath:    analyzeJobPath,
		JobURL:     analyzeJobURL,
		ResumePath: analyzeResume,
		UseBrowser: cfg.UseBrowser,
		Service:    svc,
		Log:        log,
	}
	if cfg.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			log.WithField("step", e.Step).WithField("category", e.Category).Info(e.Message)
		}
	}

	result, err := pipeline.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if p := printer(); p != nil {
		p.PrintKeywords(result.Keywords)
		p.PrintScore("ORIGINAL SCORE", result.ScoreBefore)
		p.PrintChanges(result.Optimized.Changes)
		p.PrintComparison(result.Comparison)
		p.PrintSuggestions(result.Suggestions)
	}
	return writeJSON(result)
}
