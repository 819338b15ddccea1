package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-optimizer/internal/schemas"
	docs "github.com/jonathan/ats-optimizer/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON document against a schema",
	Long:  "Validate a resume, keyword set or score JSON file against one of the embedded schemas, or against a schema file on disk.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateInput  string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "resume", "Schema: resume, keywords, score, or a path to a schema file")
	validateCmd.Flags().StringVarP(&validateInput, "in", "i", "", "Path to JSON file to validate (required)")
	if err := validateCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	var err error
	if name := validateSchema + ".schema.json"; slices.Contains(docs.Names(), name) {
		err = schemas.ValidateFile(name, validateInput)
	} else if strings.HasSuffix(validateSchema, ".json") {
		err = schemas.ValidateJSON(validateSchema, validateInput)
	} else {
		return fmt.Errorf("unknown schema %q: use resume, keywords, score or a .json schema path", validateSchema)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s is valid\n", validateInput)
	return nil
}
