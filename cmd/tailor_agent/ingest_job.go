package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/portfolio"
	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/tailor"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	extractionFileName  = "job_extraction.json"
	cleanedTextFileName = "job_posting.cleaned.txt"
	browserTimeout      = 45 * time.Second
)

var ingestJobCmd = &cobra.Command{
	Use:   "ingest-job",
	Short: "Extract catalog skills and keywords from a job posting",
	Long:  "Ingest a job posting from either a text file or URL, clean the content, and write the skill/keyword extraction.",
	RunE:  runIngestJob,
}

var (
	ingestTextFile   string
	ingestURL        string
	ingestUseBrowser bool
	ingestCatalog    string
	ingestOutDir     string
)

func init() {
	ingestJobCmd.Flags().StringVarP(&ingestTextFile, "text-file", "t", "", "Path to text file containing job posting")
	ingestJobCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch job posting from")
	ingestJobCmd.Flags().BoolVar(&ingestUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in headless Chrome when plain fetch yields too little text")
	ingestJobCmd.Flags().StringVarP(&ingestCatalog, "catalog", "c", "", "Path to skill catalog JSON file (required)")
	ingestJobCmd.Flags().StringVarP(&ingestOutDir, "out", "o", "", "Output directory (required)")

	_ = ingestJobCmd.MarkFlagRequired("catalog")
	_ = ingestJobCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestJobCmd)
}

func runIngestJob(cmd *cobra.Command, _ []string) error {
	// Validate mutually exclusive flags
	if ingestTextFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestTextFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	log := cliLogger()
	catalog, err := portfolio.LoadCatalog(ingestCatalog)
	if err != nil {
		return err
	}

	text, err := readJobText(cmd.Context(), log)
	if err != nil {
		return err
	}

	extraction, err := tailor.NewEngine(log).IngestJob(text, skills.NewMatcher(catalog))
	if err != nil {
		return err
	}
	if err := schemas.ValidateDocument(schemafiles.JobExtraction, extraction); err != nil {
		return fmt.Errorf("extraction failed schema validation: %w", err)
	}

	if err := os.MkdirAll(ingestOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(ingestOutDir, cleanedTextFileName), []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}
	if err := writeJSON(filepath.Join(ingestOutDir, extractionFileName), extraction); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		observability.NewPrinter(out).PrintJobExtraction(extraction)
	}
	fmt.Fprintf(out, "Successfully ingested job posting\n")
	fmt.Fprintf(out, "Cleaned text: %s\n", filepath.Join(ingestOutDir, cleanedTextFileName))
	fmt.Fprintf(out, "Extraction: %s\n", filepath.Join(ingestOutDir, extractionFileName))
	return nil
}

func readJobText(ctx context.Context, log *zap.Logger) (string, error) {
	if ingestTextFile != "" {
		data, err := os.ReadFile(ingestTextFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job text: %w", err)
		}
		return ingestion.CleanText(string(data)), nil
	}

	var opts []ingestion.Option
	if ingestUseBrowser || browserEnabledByConfig() {
		opts = append(opts, ingestion.WithBrowser(ingestion.ChromeRenderer(browserTimeout)))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	doc, err := ingestion.NewURLIngester(log, opts...).Ingest(ctx, ingestURL)
	if err != nil {
		return "", fmt.Errorf("failed to ingest from URL: %w", err)
	}
	return doc.Text, nil
}

// browserEnabledByConfig reports whether TAILOR_USE_BROWSER or a config file turns on browser rendering
func browserEnabledByConfig() bool {
	cfg, err := config.Load("")
	return err == nil && cfg.UseBrowser
}

// cliLogger logs to stderr only when --verbose is set
func cliLogger() *zap.Logger {
	if !verbose {
		return logger.NewNop()
	}
	log, err := logger.New("debug", "console")
	if err != nil {
		return logger.NewNop()
	}
	return log
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

