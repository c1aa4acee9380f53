package tailor

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/keywords"
	"github.com/jonathan/resume-tailor/internal/ranking"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/skills"
	"github.com/jonathan/resume-tailor/internal/types"
	"go.uber.org/zap"
)

const (
	// MaxStoredSkills caps the skills kept on a job extraction
	MaxStoredSkills = 50
	// MaxResponseSkills caps the skills shown in an ingest response
	MaxResponseSkills = 25

	minLimit = 1
	maxLimit = 10
)

// Engine runs the pure matching, selection and assembly steps. It performs
// no I/O and holds no mutable state.
type Engine struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewEngine creates an Engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// IngestJob extracts catalog skills and keywords from job text.
func (e *Engine) IngestJob(text string, matcher *skills.Matcher) (*types.JobExtraction, error) {
	if utf8.RuneCountInString(text) < types.MinJobTextLength {
		return nil, &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("job text must be at least %d characters", types.MinJobTextLength),
		}
	}
	if matcher == nil {
		return nil, fmt.Errorf("skill matcher is required")
	}

	return &types.JobExtraction{
		Skills:   skills.Top(matcher.Match(text), MaxStoredSkills),
		Keywords: keywords.Tokenize(text),
	}, nil
}

// PreviewInput is a fully loaded tailoring request. Either Extraction or
// JobText (with Matcher) must be provided.
type PreviewInput struct {
	UserID            string
	JobID             string
	Template          string
	Extraction        *types.JobExtraction
	JobText           string
	Matcher           *skills.Matcher
	SkillNames        map[string]string
	Confirmed         map[string]bool
	Items             []types.PortfolioItem
	MaxItems          int
	MaxBulletsPerItem int
}

// PreviewResult carries the tailored resume and the intermediate results behind it
type PreviewResult struct {
	Resume             *types.TailoredResume
	Extraction         *types.JobExtraction
	RankedItems        []ranking.ScoredItem
	UnresolvedSkillIDs []string
}

// Preview selects skills and items for the job and assembles the resume.
func (e *Engine) Preview(in PreviewInput) (*PreviewResult, error) {
	if err := validateLimit("max_items", in.MaxItems); err != nil {
		return nil, err
	}
	if err := validateLimit("max_bullets_per_item", in.MaxBulletsPerItem); err != nil {
		return nil, err
	}

	extraction := in.Extraction
	if extraction == nil {
		if utf8.RuneCountInString(in.JobText) < types.MinJobTextLength {
			return nil, &ValidationError{
				Field:   "job_text",
				Message: fmt.Sprintf("provide job_id or job_text (>=%d chars)", types.MinJobTextLength),
			}
		}
		var err error
		extraction, err = e.IngestJob(in.JobText, in.Matcher)
		if err != nil {
			return nil, err
		}
	}

	jobSkillIDs := extraction.SkillIDs()
	if len(jobSkillIDs) > selection.MaxJobSkills {
		jobSkillIDs = jobSkillIDs[:selection.MaxJobSkills]
	}
	jobSkillSet := idSet(jobSkillIDs)
	keywordSet := keywords.Set(extraction.Keywords)

	selectedItems, err := selection.SelectItems(in.Items, jobSkillSet, keywordSet, in.MaxItems)
	if err != nil {
		return nil, &ValidationError{Field: "max_items", Message: err.Error()}
	}
	selectedSkillIDs := selection.SelectSkills(jobSkillIDs, in.Confirmed)

	names, unresolved := selection.ResolveSkillNames(selectedSkillIDs, in.SkillNames)
	if len(unresolved) > 0 {
		e.logger.Warn("selected skills missing from catalog, using raw ids",
			zap.String("user_id", in.UserID),
			zap.Strings("skill_ids", unresolved))
	}

	items := make([]types.PortfolioItem, 0, len(selectedItems))
	itemIDs := make([]string, 0, len(selectedItems))
	for _, s := range selectedItems {
		items = append(items, s.Item)
		if s.Item.ID != "" {
			itemIDs = append(itemIDs, s.Item.ID)
		}
	}

	sections, plainText := rendering.Assemble(rendering.AssembleInput{
		SkillNames:        names,
		Items:             items,
		MaxBulletsPerItem: in.MaxBulletsPerItem,
	})

	template := in.Template
	if template == "" {
		template = types.DefaultTemplate
	}

	return &PreviewResult{
		Resume: &types.TailoredResume{
			UserID:           in.UserID,
			JobID:            in.JobID,
			Template:         template,
			SelectedSkillIDs: selectedSkillIDs,
			SelectedItemIDs:  itemIDs,
			Sections:         sections,
			PlainText:        plainText,
			CreatedAt:        e.now(),
		},
		Extraction:         extraction,
		RankedItems:        selectedItems,
		UnresolvedSkillIDs: unresolved,
	}, nil
}

func validateLimit(field string, v int) error {
	if v < minLimit || v > maxLimit {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d, got %d", minLimit, maxLimit, v),
		}
	}
	return nil
}

func idSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
