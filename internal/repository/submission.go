package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/models"
)

// SubmissionRepository handles document operations for the submissions collection
type SubmissionRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *appwrite.Databases, collectionID string) *SubmissionRepository {
	return &SubmissionRepository{db: db, collectionID: collectionID}
}

type submissionPage struct {
	Total     int64               `json:"total"`
	Documents []models.Submission `json:"documents"`
}

// Create creates a new submission document and returns the stored representation
func (r *SubmissionRepository) Create(ctx context.Context, data map[string]interface{}) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.CreateDocument(ctx, r.collectionID, data, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetByHackathonID retrieves all submissions for one hackathon, most recent first
func (r *SubmissionRepository) GetByHackathonID(ctx context.Context, hackathonID string) ([]models.Submission, error) {
	queries := []string{
		appwrite.QueryEqual("hackathon_id", hackathonID),
		appwrite.QueryOrderDesc("$createdAt"),
	}

	var page submissionPage
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return nil, err
	}
	return page.Documents, nil
}

// CountByHackathonID counts submissions received for one hackathon
func (r *SubmissionRepository) CountByHackathonID(ctx context.Context, hackathonID string) (int64, error) {
	queries := []string{
		appwrite.QueryEqual("hackathon_id", hackathonID),
		appwrite.QueryLimit(1),
	}

	var page submissionPage
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return 0, err
	}
	return page.Total, nil
}
