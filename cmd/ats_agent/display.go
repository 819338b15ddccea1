package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/generator"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Project a resume into its display form",
	RunE:  runDisplay,
}

var displayResume string

func init() {
	displayCmd.Flags().StringVarP(&displayResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	if err := displayCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(displayCmd)
}

func runDisplay(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(cmd.Context(), displayResume)
	if err != nil {
		return err
	}
	return writeJSON(generator.FormatForDisplay(resume))
}
