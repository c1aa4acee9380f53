package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-tailor/internal/types"
)

// InsertJobIngest stores a job ingest and fills in its id and created_at
func (db *DB) InsertJobIngest(ctx context.Context, job *types.JobIngest) error {
	extractionJSON, err := json.Marshal(job.Extraction)
	if err != nil {
		return fmt.Errorf("failed to marshal extraction: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_ingests (user_id, title, company, location, source_url, text,
		                          text_preview, content_hash, extraction)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6,
		         $7, NULLIF($8, ''), $9)
		 RETURNING id::text, created_at`,
		job.UserID, job.Title, job.Company, job.Location, job.SourceURL, job.Text,
		job.TextPreview, job.ContentHash, extractionJSON,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert job ingest: %w", err)
	}
	return nil
}

// GetJobIngest retrieves a job ingest owned by userID, or nil if there is none
func (db *DB) GetJobIngest(ctx context.Context, userID, id string) (*types.JobIngest, error) {
	jobID, ok := parseID(id)
	if !ok {
		return nil, nil
	}

	var job types.JobIngest
	var extractionJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id::text, user_id, COALESCE(title, ''), COALESCE(company, ''),
		        COALESCE(location, ''), COALESCE(source_url, ''), text, text_preview,
		        COALESCE(content_hash, ''), extraction, created_at
		 FROM job_ingests WHERE id = $1 AND user_id = $2`,
		jobID, userID,
	).Scan(&job.ID, &job.UserID, &job.Title, &job.Company, &job.Location, &job.SourceURL,
		&job.Text, &job.TextPreview, &job.ContentHash, &extractionJSON, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job ingest: %w", err)
	}

	if err := json.Unmarshal(extractionJSON, &job.Extraction); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extraction: %w", err)
	}
	return &job, nil
}
