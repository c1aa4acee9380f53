package types

import "time"

// DefaultTemplate is the template identifier used when a request names none
const DefaultTemplate = "ats_v1"

// ResumeSection is a titled block of resume lines
type ResumeSection struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

// TailoredResume is a generated, job-specific resume
type TailoredResume struct {
	ID               string          `json:"id,omitempty"`
	UserID           string          `json:"user_id"`
	JobID            string          `json:"job_id,omitempty"`
	Template         string          `json:"template"`
	SelectedSkillIDs []string        `json:"selected_skill_ids"`
	SelectedItemIDs  []string        `json:"selected_item_ids"`
	Sections         []ResumeSection `json:"sections"`
	PlainText        string          `json:"plain_text"`
	CreatedAt        time.Time       `json:"created_at"`
}
