package schemas_test

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-tailor/internal/schemas"
	schemafiles "github.com/jonathan/resume-tailor/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	names := schemafiles.Names()
	require.ElementsMatch(t, []string{
		schemafiles.SkillCatalog,
		schemafiles.PortfolioItems,
		schemafiles.JobExtraction,
		schemafiles.TailoredResume,
	}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := schemafiles.Load(name)
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(content), &schemaObj))
			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "type")
		})
	}
}

func TestLoad_SuffixOptional(t *testing.T) {
	full, err := schemafiles.Load(schemafiles.JobExtraction)
	require.NoError(t, err)
	short, err := schemafiles.Load("job_extraction")
	require.NoError(t, err)
	assert.Equal(t, full, short)

	_, err = schemafiles.Load("nope")
	assert.Error(t, err)
}

func TestJobExtractionSchema(t *testing.T) {
	schema, err := schemafiles.Load(schemafiles.JobExtraction)
	require.NoError(t, err)

	valid := `{"extracted_skills":[{"skill_id":"s1","skill_name":"Python","matched_on":"alias","count":1}],"keywords":["python3"]}`
	assert.NoError(t, schemas.ValidateJSONString(schema, valid))

	invalid := `{"extracted_skills":[{"skill_id":"s1","skill_name":"Python","matched_on":"guess","count":0}],"keywords":[]}`
	err = schemas.ValidateJSONString(schema, invalid)
	var vErr *schemas.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.GreaterOrEqual(t, len(vErr.Errors), 2)
}

func TestTailoredResumeSchema(t *testing.T) {
	schema, err := schemafiles.Load(schemafiles.TailoredResume)
	require.NoError(t, err)

	valid := `{
		"user_id": "u1",
		"template": "ats_v1",
		"selected_skill_ids": ["s1"],
		"selected_item_ids": [],
		"sections": [{"title": "Summary", "lines": ["a", "b"]}],
		"plain_text": "SUMMARY\na\nb\n"
	}`
	assert.NoError(t, schemas.ValidateJSONString(schema, valid))

	missingSummary := `{
		"user_id": "u1",
		"template": "ats_v1",
		"selected_skill_ids": [],
		"selected_item_ids": [],
		"sections": [{"title": "Skills", "lines": []}],
		"plain_text": "SKILLS\n"
	}`
	assert.Error(t, schemas.ValidateJSONString(schema, missingSummary))
}
