package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against a bundled or external schema",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "",
		"Schema file path, or bundled schema name: "+strings.Join(schemafiles.Names(), ", "))
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file (required)")

	_ = validateCmd.MarkFlagRequired("schema")
	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	validate := schemas.ValidateFile
	if isSchemaPath(validateSchema) {
		validate = schemas.ValidateJSON
	}
	if err := validate(validateSchema, validateJSON); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid against %s\n", validateJSON, validateSchema)
	return nil
}

// isSchemaPath reports whether the --schema value points at a schema on disk
// rather than a bundled one.
func isSchemaPath(s string) bool {
	if strings.ContainsRune(s, filepath.Separator) || strings.ContainsRune(s, '/') {
		return true
	}
	info, err := os.Stat(s)
	return err == nil && info.Mode().IsRegular()
}
