package types

import "time"

// MatchedOn records which kind of catalog pattern produced a skill match
type MatchedOn string

const (
	MatchedOnName  MatchedOn = "name"
	MatchedOnAlias MatchedOn = "alias"
)

// ExtractedSkill is a catalog skill detected in a job posting
type ExtractedSkill struct {
	SkillID   string    `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	MatchedOn MatchedOn `json:"matched_on"`
	Count     int       `json:"count"`
}

// JobExtraction is the cached output of the job ingest pipeline.
// Skills are ordered by count desc, then name asc (case-insensitive).
type JobExtraction struct {
	Skills   []ExtractedSkill `json:"extracted_skills"`
	Keywords []string         `json:"keywords"`
}

// SkillIDs returns the extracted skill ids in rank order.
func (e *JobExtraction) SkillIDs() []string {
	if e == nil {
		return nil
	}
	ids := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		ids = append(ids, s.SkillID)
	}
	return ids
}

// JobIngest is a stored job posting together with its extraction
type JobIngest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Title       string        `json:"title,omitempty"`
	Company     string        `json:"company,omitempty"`
	Location    string        `json:"location,omitempty"`
	SourceURL   string        `json:"source_url,omitempty"`
	Text        string        `json:"text"`
	TextPreview string        `json:"text_preview"`
	ContentHash string        `json:"content_hash,omitempty"`
	Extraction  JobExtraction `json:"extraction"`
	CreatedAt   time.Time     `json:"created_at"`
}
