package types

// Preview limits
const (
	DefaultMaxItems          = 4
	DefaultMaxBulletsPerItem = 4
	MinJobTextLength         = 50
)

// IngestJobRequest is the input to job ingestion
type IngestJobRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Location string `json:"location,omitempty"`
	URL      string `json:"url,omitempty" validate:"omitempty,url"`
	Text     string `json:"text" validate:"required,min=50"`
}

// JobIngestResponse is the presentation view of a stored job ingest
type JobIngestResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"user_id"`
	Title           string           `json:"title,omitempty"`
	Company         string           `json:"company,omitempty"`
	Location        string           `json:"location,omitempty"`
	TextPreview     string           `json:"text_preview"`
	ExtractedSkills []ExtractedSkill `json:"extracted_skills"`
	Keywords        []string         `json:"keywords"`
	CreatedAt       string           `json:"created_at"`
}

// PreviewRequest is the input to tailored resume generation.
// Exactly one of JobID or JobText should identify the job; JobID wins when both are set.
type PreviewRequest struct {
	UserID            string `json:"user_id" validate:"required"`
	JobID             string `json:"job_id,omitempty"`
	JobText           string `json:"job_text,omitempty" validate:"omitempty,min=50"`
	Template          string `json:"template,omitempty"`
	MaxItems          int    `json:"max_items,omitempty" validate:"omitempty,min=1,max=10"`
	MaxBulletsPerItem int    `json:"max_bullets_per_item,omitempty" validate:"omitempty,min=1,max=10"`
}

// ApplyDefaults fills unset optional fields.
func (r *PreviewRequest) ApplyDefaults() {
	if r.Template == "" {
		r.Template = DefaultTemplate
	}
	if r.MaxItems == 0 {
		r.MaxItems = DefaultMaxItems
	}
	if r.MaxBulletsPerItem == 0 {
		r.MaxBulletsPerItem = DefaultMaxBulletsPerItem
	}
}
