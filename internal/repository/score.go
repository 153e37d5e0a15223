package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/models"
)

// ScoreRepository handles document operations for the scores collection
type ScoreRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *appwrite.Databases, collectionID string) *ScoreRepository {
	return &ScoreRepository{db: db, collectionID: collectionID}
}

// Create creates a new score document and returns the stored representation.
// There is no update path: a judge resubmitting creates an independent record.
func (r *ScoreRepository) Create(ctx context.Context, data map[string]interface{}) (*models.Score, error) {
	var score models.Score
	if err := r.db.CreateDocument(ctx, r.collectionID, data, &score); err != nil {
		return nil, err
	}
	return &score, nil
}
