package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-tailor/internal/types"
)

const tailoredResumeColumns = `id::text, user_id, COALESCE(job_id::text, ''), template,
	selected_skill_ids, selected_item_ids, sections, plain_text, created_at`

// InsertTailoredResume stores a tailored resume and fills in its id and created_at
func (db *DB) InsertTailoredResume(ctx context.Context, r *types.TailoredResume) error {
	jobID, err := nullableID(r.JobID)
	if err != nil {
		return fmt.Errorf("failed to insert tailored resume: %w", err)
	}
	sectionsJSON, err := json.Marshal(r.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO tailored_resumes (user_id, job_id, template, selected_skill_ids,
		                               selected_item_ids, sections, plain_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id::text, created_at`,
		r.UserID, jobID, r.Template, emptyIfNil(r.SelectedSkillIDs),
		emptyIfNil(r.SelectedItemIDs), sectionsJSON, r.PlainText,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert tailored resume: %w", err)
	}
	return nil
}

// GetTailoredResume retrieves a tailored resume by id, or nil if there is none
func (db *DB) GetTailoredResume(ctx context.Context, id string) (*types.TailoredResume, error) {
	resumeID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	row := db.pool.QueryRow(ctx,
		`SELECT `+tailoredResumeColumns+` FROM tailored_resumes WHERE id = $1`,
		resumeID,
	)
	r, err := scanTailoredResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tailored resume: %w", err)
	}
	return r, nil
}

// ListTailoredResumes returns a user's tailored resumes, newest first
func (db *DB) ListTailoredResumes(ctx context.Context, userID string, limit int) ([]types.TailoredResume, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+tailoredResumeColumns+` FROM tailored_resumes
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	defer rows.Close()

	resumes := []types.TailoredResume{}
	for rows.Next() {
		r, err := scanTailoredResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tailored resume: %w", err)
		}
		resumes = append(resumes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tailored resumes: %w", err)
	}
	return resumes, nil
}

func scanTailoredResume(row pgx.Row) (*types.TailoredResume, error) {
	var r types.TailoredResume
	var sectionsJSON []byte
	if err := row.Scan(&r.ID, &r.UserID, &r.JobID, &r.Template, &r.SelectedSkillIDs,
		&r.SelectedItemIDs, &sectionsJSON, &r.PlainText, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(sectionsJSON, &r.Sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	return &r, nil
}
