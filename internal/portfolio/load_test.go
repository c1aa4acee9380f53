package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadItems_ValidFile(t *testing.T) {
	path := writeFile(t, "items.json", `[
		{"id": "i1", "user_id": "u1", "type": "Project", "title": "  Resume Tailor ",
		 "bullets": ["Built API", "  ", "Deployed"], "skill_ids": ["s1", "s1", "s2"], "priority": 2},
		{"id": "i2", "user_id": "u1", "title": "Talk"}
	]`)

	items, err := LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, types.ItemTypeProject, items[0].Type)
	assert.Equal(t, "Resume Tailor", items[0].Title)
	assert.Equal(t, []string{"Built API", "Deployed"}, items[0].Bullets)
	assert.Equal(t, []string{"s1", "s2"}, items[0].SkillIDs)
	assert.Equal(t, 2, items[0].Priority)
	assert.Equal(t, types.VisibilityPrivate, items[0].Visibility)

	assert.Equal(t, types.ItemTypeOther, items[1].Type)
}

func TestLoadItems_InvalidType(t *testing.T) {
	path := writeFile(t, "items.json", `[{"id": "i1", "type": "hobby", "title": "x"}]`)

	_, err := LoadItems(path)
	require.Error(t, err)

	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
	assert.Contains(t, normErr.Error(), "hobby")
}

func TestLoadItems_FileNotFound(t *testing.T) {
	_, err := LoadItems("nonexistent_file.json")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to read file")
	assert.Error(t, loadErr.Unwrap())
}

func TestLoadItems_InvalidJSON(t *testing.T) {
	path := writeFile(t, "items.json", `{not json`)

	_, err := LoadItems(path)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "failed to unmarshal JSON")
}

func TestLoadCatalog(t *testing.T) {
	path := writeFile(t, "catalog.json", `[
		{"id": "s1", "name": " Python ", "aliases": ["python3", "", "python3"]},
		{"id": "s2", "name": "Go", "aliases": ["golang"]}
	]`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Python", catalog[0].Name)
	assert.Equal(t, []string{"python3"}, catalog[0].Aliases)
}

func TestLoadCatalog_DuplicateID(t *testing.T) {
	path := writeFile(t, "catalog.json", `[{"id": "s1", "name": "A"}, {"id": "s1", "name": "B"}]`)

	_, err := LoadCatalog(path)
	var normErr *NormalizationError
	require.ErrorAs(t, err, &normErr)
	assert.Contains(t, normErr.Error(), "duplicate skill id")
}

func TestLoadProjects(t *testing.T) {
	path := writeFile(t, "projects.json", `[{"id": "p1", "user_id": "u1", "title": "Old thing", "description": "Legacy"}]`)

	projects, err := LoadProjects(path)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Legacy", projects[0].Description)
}

func TestParseIDList(t *testing.T) {
	assert.Nil(t, ParseIDList(""))
	assert.Nil(t, ParseIDList("   "))
	assert.Equal(t, []string{"s3", "s7"}, ParseIDList("s3, s7,,s3"))
}
