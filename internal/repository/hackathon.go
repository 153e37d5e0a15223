package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/models"
)

// HackathonRepository handles document operations for the hackathons collection
type HackathonRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewHackathonRepository creates a new hackathon repository
func NewHackathonRepository(db *appwrite.Databases, collectionID string) *HackathonRepository {
	return &HackathonRepository{db: db, collectionID: collectionID}
}

// Create creates a new hackathon document and returns the stored representation
func (r *HackathonRepository) Create(ctx context.Context, data map[string]interface{}) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := r.db.CreateDocument(ctx, r.collectionID, data, &hackathon); err != nil {
		return nil, err
	}
	return &hackathon, nil
}

// GetByID retrieves a hackathon document by id
func (r *HackathonRepository) GetByID(ctx context.Context, id string) (*models.Hackathon, error) {
	var hackathon models.Hackathon
	if err := r.db.GetDocument(ctx, r.collectionID, id, &hackathon); err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, err
	}
	return &hackathon, nil
}

// GetAll retrieves every hackathon document
func (r *HackathonRepository) GetAll(ctx context.Context) ([]models.Hackathon, int64, error) {
	var page struct {
		Total     int64              `json:"total"`
		Documents []models.Hackathon `json:"documents"`
	}
	if err := r.db.ListDocuments(ctx, r.collectionID, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Documents, page.Total, nil
}
