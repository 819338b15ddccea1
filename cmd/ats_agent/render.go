package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/generator"
	"github.com/jonathan/ats-optimizer/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume as ATS-friendly plain text or LaTeX",
	RunE:  runRender,
}

var (
	renderResume   string
	renderFormat   string
	renderTemplate string
)

func init() {
	renderCmd.Flags().StringVarP(&renderResume, "resume", "r", "", "Path to resume (.json, .txt or .md) (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(rendering.FormatText), "Output format: text or latex")
	renderCmd.Flags().StringVarP(&renderTemplate, "template", "t", "", "Path to LaTeX template (default from config, else embedded)")
	if err := renderCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	resume, err := loadResume(cmd.Context(), renderResume)
	if err != nil {
		return err
	}

	tmpl := renderTemplate
	if tmpl == "" {
		tmpl = cfg.Template
	}
	out, err := rendering.Render(generator.FormatForDisplay(resume), rendering.Format(renderFormat), tmpl)
	if err != nil {
		return err
	}
	return writeOutput([]byte(out))
}
