package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/models"
)

// UserRepository handles document operations for the users profile collection
type UserRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewUserRepository creates a new user profile repository
func NewUserRepository(db *appwrite.Databases, collectionID string) *UserRepository {
	return &UserRepository{db: db, collectionID: collectionID}
}

type userPage struct {
	Total     int64                `json:"total"`
	Documents []models.UserProfile `json:"documents"`
}

// GetByID retrieves a profile document by id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.GetDocument(ctx, r.collectionID, id, &profile); err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update applies a partial update to a profile document
func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.UpdateDocument(ctx, r.collectionID, id, updates, &profile); err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Count counts all registered profile documents
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	queries := []string{appwrite.QueryLimit(1)}

	var page userPage
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return 0, err
	}
	return page.Total, nil
}

// CountLookingForTeam counts users looking for a team. The collection has no
// dedicated flag yet, so this counts all profiles until the schema grows one.
func (r *UserRepository) CountLookingForTeam(ctx context.Context) (int64, error) {
	return r.Count(ctx)
}
