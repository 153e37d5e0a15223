package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/models"
)

// AnnouncementRepository handles document operations for the announcements collection
type AnnouncementRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *appwrite.Databases, collectionID string) *AnnouncementRepository {
	return &AnnouncementRepository{db: db, collectionID: collectionID}
}

// Create creates a new announcement document and returns the stored representation
func (r *AnnouncementRepository) Create(ctx context.Context, data map[string]interface{}) (*models.Announcement, error) {
	var announcement models.Announcement
	if err := r.db.CreateDocument(ctx, r.collectionID, data, &announcement); err != nil {
		return nil, err
	}
	return &announcement, nil
}
