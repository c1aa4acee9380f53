package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ tailor.Store = (*DB)(nil)

func TestSchema(t *testing.T) {
	schema := Schema()
	for _, table := range []string{
		"skills", "portfolio_items", "projects", "skill_confirmations", "job_ingests", "tailored_resumes",
	} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, ok := parseID(id.String())
	assert.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = parseID("not-a-uuid")
	assert.False(t, ok)
}

func TestNullableID(t *testing.T) {
	got, err := nullableID("")
	require.NoError(t, err)
	assert.Nil(t, got)

	id := uuid.New()
	got, err = nullableID(id.String())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	_, err = nullableID("bogus")
	assert.Error(t, err)
}

func TestEmptyIfNil(t *testing.T) {
	assert.Equal(t, []string{}, emptyIfNil(nil))
	assert.Equal(t, []string{"a"}, emptyIfNil([]string{"a"}))
}
