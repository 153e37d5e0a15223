package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/models"
)

// TeamRepository handles document operations for the teams collection
type TeamRepository struct {
	db           *appwrite.Databases
	collectionID string
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *appwrite.Databases, collectionID string) *TeamRepository {
	return &TeamRepository{db: db, collectionID: collectionID}
}

type teamPage struct {
	Total     int64         `json:"total"`
	Documents []models.Team `json:"documents"`
}

// Create creates a new team document and returns the stored representation
func (r *TeamRepository) Create(ctx context.Context, data map[string]interface{}) (*models.Team, error) {
	var team models.Team
	if err := r.db.CreateDocument(ctx, r.collectionID, data, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByID retrieves a team document by id
func (r *TeamRepository) GetByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.GetDocument(ctx, r.collectionID, id, &team); err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves every team document
func (r *TeamRepository) GetAll(ctx context.Context) ([]models.Team, int64, error) {
	var page teamPage
	if err := r.db.ListDocuments(ctx, r.collectionID, nil, &page); err != nil {
		return nil, 0, err
	}
	return page.Documents, page.Total, nil
}

// GetByHackathonID retrieves all teams registered for one hackathon
func (r *TeamRepository) GetByHackathonID(ctx context.Context, hackathonID string) ([]models.Team, int64, error) {
	queries := []string{appwrite.QueryEqual("hackathon_id", hackathonID)}

	var page teamPage
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return nil, 0, err
	}
	return page.Documents, page.Total, nil
}

// UpdateMembership rewrites the mutated membership fields of a team document
// in a single partial update
func (r *TeamRepository) UpdateMembership(ctx context.Context, id string, updates map[string]interface{}) (*models.Team, error) {
	var team models.Team
	if err := r.db.UpdateDocument(ctx, r.collectionID, id, updates, &team); err != nil {
		if appwrite.IsNotFound(err) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// Delete removes a team document
func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.DeleteDocument(ctx, r.collectionID, id); err != nil {
		if appwrite.IsNotFound(err) {
			return apperrors.ErrTeamNotFound
		}
		return err
	}
	return nil
}

// GetNamesByIDs resolves team ids to names in one batched query using an
// id+name projection
func (r *TeamRepository) GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error) {
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	values := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	queries := []string{
		appwrite.QueryEqual("$id", values...),
		appwrite.QuerySelect("$id", "name"),
	}

	var page struct {
		Total     int64             `json:"total"`
		Documents []models.TeamName `json:"documents"`
	}
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(page.Documents))
	for _, doc := range page.Documents {
		names[doc.ID] = doc.Name
	}
	return names, nil
}

// CountByHackathonID counts teams registered for one hackathon
func (r *TeamRepository) CountByHackathonID(ctx context.Context, hackathonID string) (int64, error) {
	queries := []string{
		appwrite.QueryEqual("hackathon_id", hackathonID),
		appwrite.QueryLimit(1),
	}

	var page teamPage
	if err := r.db.ListDocuments(ctx, r.collectionID, queries, &page); err != nil {
		return 0, err
	}
	return page.Total, nil
}
