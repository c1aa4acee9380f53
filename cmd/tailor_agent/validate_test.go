package main

import (
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = schemafiles.SkillCatalog
	validateJSON = writeFixture(t, dir, "catalog.json", testCatalogJSON)

	cmd, out := testCommand()
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "is valid against")
}

func TestValidateCommand_ShortSchemaName(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = "portfolio_items"
	validateJSON = writeFixture(t, dir, "items.json", testItemsJSON)

	cmd, _ := testCommand()
	assert.NoError(t, runValidate(cmd, nil))
}

func TestValidateCommand_Invalid(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = schemafiles.SkillCatalog
	validateJSON = writeFixture(t, dir, "catalog.json", `[{"name": "no id"}]`)

	cmd, _ := testCommand()
	assert.Error(t, runValidate(cmd, nil))
}

func TestValidateCommand_UnknownSchema(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = "nope"
	validateJSON = writeFixture(t, dir, "catalog.json", testCatalogJSON)

	cmd, _ := testCommand()
	err := runValidate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schema")
}

const externalSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title"],
  "properties": {"title": {"type": "string"}}
}`

func TestValidateCommand_ExternalSchemaFile(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = writeFixture(t, dir, "posting.schema.json", externalSchema)
	validateJSON = writeFixture(t, dir, "posting.json", `{"title": "Backend Engineer"}`)

	cmd, out := testCommand()
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "posting.schema.json")
}

func TestValidateCommand_ExternalSchemaFileInvalid(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = writeFixture(t, dir, "posting.schema.json", externalSchema)
	validateJSON = writeFixture(t, dir, "posting.json", `{"title": 42}`)

	cmd, _ := testCommand()
	err := runValidate(cmd, nil)
	require.Error(t, err)
	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestValidateCommand_MissingExternalSchema(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	validateSchema = filepath.Join(dir, "missing.schema.json")
	validateJSON = writeFixture(t, dir, "posting.json", `{"title": "x"}`)

	cmd, _ := testCommand()
	err := runValidate(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}
