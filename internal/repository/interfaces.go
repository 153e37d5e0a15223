package repository

import (
	"context"

	"hackconnect-backend/internal/appwrite"
	"hackconnect-backend/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines document operations on the teams collection
type TeamRepositoryInterface interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, int64, error)
	GetByHackathonID(ctx context.Context, hackathonID string) ([]models.Team, int64, error)
	UpdateMembership(ctx context.Context, id string, updates map[string]interface{}) (*models.Team, error)
	Delete(ctx context.Context, id string) error
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
	CountByHackathonID(ctx context.Context, hackathonID string) (int64, error)
}

// HackathonRepositoryInterface defines document operations on the hackathons collection
type HackathonRepositoryInterface interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.Hackathon, error)
	GetByID(ctx context.Context, id string) (*models.Hackathon, error)
	GetAll(ctx context.Context) ([]models.Hackathon, int64, error)
}

// SubmissionRepositoryInterface defines document operations on the submissions collection
type SubmissionRepositoryInterface interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.Submission, error)
	GetByHackathonID(ctx context.Context, hackathonID string) ([]models.Submission, error)
	CountByHackathonID(ctx context.Context, hackathonID string) (int64, error)
}

// ScoreRepositoryInterface defines document operations on the scores collection
type ScoreRepositoryInterface interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.Score, error)
}

// AnnouncementRepositoryInterface defines document operations on the announcements collection
type AnnouncementRepositoryInterface interface {
	Create(ctx context.Context, data map[string]interface{}) (*models.Announcement, error)
}

// UserRepositoryInterface defines document operations on the users profile collection
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.UserProfile, error)
	Count(ctx context.Context) (int64, error)
	CountLookingForTeam(ctx context.Context) (int64, error)
}

// DirectoryInterface defines the consumed slice of the auth user directory
type DirectoryInterface interface {
	Get(ctx context.Context, userID string) (*appwrite.User, error)
	List(ctx context.Context, limit int) ([]appwrite.User, error)
	UpdateName(ctx context.Context, userID, name string) error
}
