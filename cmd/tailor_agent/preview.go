package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/portfolio"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
)

const (
	resumeFileName    = "tailored_resume.json"
	plainTextFileName = "resume.txt"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Assemble a tailored resume from local files",
	Long:  "Select skills and portfolio items for a job and write the tailored resume as JSON and plain text.",
	RunE:  runPreview,
}

var (
	previewExtraction string
	previewJobText    string
	previewCatalog    string
	previewItems      string
	previewProjects   string
	previewConfirmed  string
	previewTemplate   string
	previewUserID     string
	previewMaxItems   int
	previewMaxBullets int
	previewOutDir     string
)

func init() {
	previewCmd.Flags().StringVarP(&previewExtraction, "extraction", "e", "", "Path to job_extraction.json from ingest-job")
	previewCmd.Flags().StringVarP(&previewJobText, "job-text", "j", "", "Path to raw job posting text")
	previewCmd.Flags().StringVarP(&previewCatalog, "catalog", "c", "", "Path to skill catalog JSON file (required)")
	previewCmd.Flags().StringVarP(&previewItems, "items", "i", "", "Path to portfolio items JSON file")
	previewCmd.Flags().StringVarP(&previewProjects, "projects", "p", "", "Path to legacy projects JSON file, used when no items are given")
	previewCmd.Flags().StringVar(&previewConfirmed, "confirmed", "", "Comma-separated confirmed skill ids")
	previewCmd.Flags().StringVar(&previewTemplate, "template", types.DefaultTemplate, "Template identifier recorded on the resume")
	previewCmd.Flags().StringVar(&previewUserID, "user-id", "local", "User id recorded on the resume")
	previewCmd.Flags().IntVar(&previewMaxItems, "max-items", types.DefaultMaxItems, "Maximum portfolio items (1-10)")
	previewCmd.Flags().IntVar(&previewMaxBullets, "max-bullets", types.DefaultMaxBulletsPerItem, "Maximum bullets per item (1-10)")
	previewCmd.Flags().StringVarP(&previewOutDir, "out", "o", "", "Output directory (required)")

	_ = previewCmd.MarkFlagRequired("catalog")
	_ = previewCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if previewExtraction == "" && previewJobText == "" {
		return fmt.Errorf("either --extraction or --job-text must be provided")
	}
	if previewExtraction != "" && previewJobText != "" {
		return fmt.Errorf("--extraction and --job-text are mutually exclusive; provide only one")
	}

	catalog, err := portfolio.LoadCatalog(previewCatalog)
	if err != nil {
		return err
	}

	input := tailor.PreviewInput{
		UserID:            previewUserID,
		Template:          previewTemplate,
		SkillNames:        types.SkillNames(catalog),
		Confirmed:         idSetFromList(portfolio.ParseIDList(previewConfirmed)),
		MaxItems:          previewMaxItems,
		MaxBulletsPerItem: previewMaxBullets,
	}

	if previewExtraction != "" {
		if err := schemas.ValidateFile(schemafiles.JobExtraction, previewExtraction); err != nil {
			return fmt.Errorf("invalid extraction file: %w", err)
		}
		var extraction types.JobExtraction
		if err := readJSON(previewExtraction, &extraction); err != nil {
			return err
		}
		input.Extraction = &extraction
	} else {
		data, err := os.ReadFile(previewJobText)
		if err != nil {
			return fmt.Errorf("failed to read job text: %w", err)
		}
		input.JobText = string(data)
		input.Matcher = skills.NewMatcher(catalog)
	}

	var items []types.PortfolioItem
	if previewItems != "" {
		if items, err = portfolio.LoadItems(previewItems); err != nil {
			return err
		}
	}
	var projects []types.LegacyProject
	if previewProjects != "" {
		if projects, err = portfolio.LoadProjects(previewProjects); err != nil {
			return err
		}
	}
	input.Items = selection.CandidateItems(items, projects)

	result, err := tailor.NewEngine(cliLogger()).Preview(input)
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(schemafiles.TailoredResume, result.Resume); err != nil {
		return fmt.Errorf("tailored resume failed schema validation: %w", err)
	}

	if err := os.MkdirAll(previewOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeJSON(filepath.Join(previewOutDir, resumeFileName), result.Resume); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(previewOutDir, plainTextFileName), []byte(result.Resume.PlainText), 0o644); err != nil {
		return fmt.Errorf("failed to write plain text: %w", err)
	}

	out := cmd.OutOrStdout()
	if verbose {
		p := observability.NewPrinter(out)
		p.PrintJobExtraction(result.Extraction)
		p.PrintRankedItems(result.RankedItems)
		p.PrintUnresolvedSkills(result.UnresolvedSkillIDs)
		p.PrintTailoredResume(result.Resume)
	}
	fmt.Fprintf(out, "Selected %d skills and %d items\n", len(result.Resume.SelectedSkillIDs), len(result.Resume.SelectedItemIDs))
	fmt.Fprintf(out, "Resume: %s\n", filepath.Join(previewOutDir, resumeFileName))
	fmt.Fprintf(out, "Plain text: %s\n", filepath.Join(previewOutDir, plainTextFileName))
	return nil
}

func idSetFromList(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
