package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `[
  {"id": "py", "name": "Python", "aliases": ["python3"]},
  {"id": "fa", "name": "FastAPI"},
  {"id": "mg", "name": "MongoDB"}
]`

const testItemsJSON = `[
  {"id": "a", "type": "work", "title": "Search API", "org": "Acme", "date_start": "2021", "date_end": "2023",
   "bullets": ["Built FastAPI services", "Tuned MongoDB indexes"], "skill_ids": ["fa", "mg"]},
  {"id": "b", "type": "project", "title": "Garden Planner", "bullets": ["Drew plots"], "skill_ids": []}
]`

const testProjectsJSON = `[
  {"id": "p1", "title": "Legacy Service", "description": "A fastapi microservice", "tags": ["backend"]}
]`

const testJobText = "We need a backend engineer who ships FastAPI services. " +
	"FastAPI and MongoDB experience required; python3 tooling is a plus."

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testCommand returns a command whose output is captured in the returned buffer
func testCommand() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

// resetFlags restores flag variables shared across tests in this package
func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		verbose = false

		ingestTextFile, ingestURL, ingestCatalog, ingestOutDir = "", "", "", ""
		ingestUseBrowser = false

		previewExtraction, previewJobText, previewCatalog = "", "", ""
		previewItems, previewProjects, previewConfirmed, previewOutDir = "", "", "", ""
		previewTemplate = types.DefaultTemplate
		previewUserID = "local"
		previewMaxItems = types.DefaultMaxItems
		previewMaxBullets = types.DefaultMaxBulletsPerItem

		renderResumeFile, renderTemplateFile, renderOutputFile = "", "", ""
		renderFormat = "txt"

		validateSchema, validateJSON = "", ""

		importDatabaseURL, importUserID, importCatalog = "", "", ""
		importItems, importProjects, importConfirmed = "", "", ""
	})
}
