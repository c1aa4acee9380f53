package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a tailored resume as plain text or LaTeX",
	Long:  "Renders the sections of a tailored_resume.json as plain text or LaTeX source using the built-in or a custom template.",
	RunE:  runRender,
}

var (
	renderResumeFile   string
	renderFormat       string
	renderTemplateFile string
	renderOutputFile   string
)

func init() {
	renderCmd.Flags().StringVarP(&renderResumeFile, "resume", "r", "", "Path to tailored_resume.json (required)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "txt", "Output format: txt or tex")
	renderCmd.Flags().StringVarP(&renderTemplateFile, "template", "t", "", "Path to a custom LaTeX template (tex only)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (required)")

	_ = renderCmd.MarkFlagRequired("resume")
	_ = renderCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	if err := schemas.ValidateFile(schemafiles.TailoredResume, renderResumeFile); err != nil {
		return fmt.Errorf("invalid resume file: %w", err)
	}
	var resume types.TailoredResume
	if err := readJSON(renderResumeFile, &resume); err != nil {
		return err
	}

	var content string
	switch renderFormat {
	case "txt":
		content = rendering.RenderPlainText(resume.Sections)
	case "tex":
		tex, err := rendering.RenderLaTeX(resume.Sections, rendering.LaTeXOptions{
			Template:     resume.Template,
			TemplatePath: renderTemplateFile,
		})
		if err != nil {
			return err
		}
		content = tex
	default:
		return fmt.Errorf("unsupported format %q: must be txt or tex", renderFormat)
	}

	if dir := filepath.Dir(renderOutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s resume to %s\n", renderFormat, renderOutputFile)
	return nil
}
