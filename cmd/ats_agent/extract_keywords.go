package main

import (
	"github.com/spf13/cobra"
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract ATS keywords from a job posting",
	Long:  "Extract technical skills, soft skills, requirements, experience and education phrases from a job posting file or URL.",
	RunE:  runExtractKeywords,
}

var (
	extractJobPath string
	extractJobURL  string
)

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractJobPath, "job", "j", "", "Path to job posting text file")
	extractKeywordsCmd.Flags().StringVarP(&extractJobURL, "url", "u", "", "URL to fetch job posting from")
	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	ks, err := loadKeywords(cmd.Context(), "", extractJobPath, extractJobURL)
	if err != nil {
		return err
	}
	if p := printer(); p != nil {
		p.PrintKeywords(ks)
	}
	return writeJSON(ks)
}
