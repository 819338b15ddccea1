package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a plain-text resume into structured JSON",
	RunE:  runParseResume,
}

var parseResumeInput string

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume .txt or .md file (required)")
	if err := parseResumeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(cmd.Context(), parseResumeInput)
	if err != nil {
		return err
	}
	if p := printer(); p != nil {
		p.PrintResume(resume)
	}
	return writeJSON(resume)
}
