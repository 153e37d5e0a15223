package service

import (
	"context"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// HackathonService handles business logic for hackathon listings
type HackathonService struct {
	repo      repository.HackathonRepositoryInterface
	validator *validator.Validate
}

// NewHackathonService creates a new hackathon service
func NewHackathonService(repo repository.HackathonRepositoryInterface, validator *validator.Validate) *HackathonService {
	return &HackathonService{repo: repo, validator: validator}
}

// CreateHackathonRequest represents the request to create a hackathon
type CreateHackathonRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Mode        string   `json:"mode,omitempty" validate:"omitempty,oneof=online offline hybrid"`
	PrizePool   string   `json:"prize_pool,omitempty"`
	MaxTeamSize int      `json:"max_team_size,omitempty" validate:"omitempty,min=1"`
	BannerURL   string   `json:"banner_url,omitempty" validate:"omitempty,url"`
	Status      string   `json:"status,omitempty"`
}

// HackathonResponse represents the response for hackathon operations
type HackathonResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	PrizePool   string   `json:"prize_pool,omitempty"`
	MaxTeamSize int      `json:"max_team_size,omitempty"`
	BannerURL   string   `json:"banner_url,omitempty"`
	Status      string   `json:"status,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// Create creates a new hackathon
func (s *HackathonService) Create(ctx context.Context, req *CreateHackathonRequest) (*HackathonResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	data := map[string]interface{}{
		"title": req.Title,
	}
	if req.Description != "" {
		data["description"] = req.Description
	}
	if len(req.Tags) > 0 {
		data["tags"] = req.Tags
	}
	if req.StartDate != "" {
		data["start_date"] = req.StartDate
	}
	if req.EndDate != "" {
		data["end_date"] = req.EndDate
	}
	if req.Location != "" {
		data["location"] = req.Location
	}
	if req.Mode != "" {
		data["mode"] = req.Mode
	}
	if req.PrizePool != "" {
		data["prize_pool"] = req.PrizePool
	}
	if req.MaxTeamSize > 0 {
		data["max_team_size"] = req.MaxTeamSize
	}
	if req.BannerURL != "" {
		data["banner_url"] = req.BannerURL
	}
	if req.Status != "" {
		data["status"] = req.Status
	}

	hackathon, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	return toHackathonResponse(hackathon), nil
}

// GetAll returns every hackathon
func (s *HackathonService) GetAll(ctx context.Context) ([]HackathonResponse, error) {
	hackathons, _, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toHackathonResponses(hackathons), nil
}

// GetByID returns one hackathon by id
func (s *HackathonService) GetByID(ctx context.Context, id string) (*HackathonResponse, error) {
	hackathon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHackathonResponse(hackathon), nil
}

// Recommend returns hackathons whose tag set intersects the user's tags. An
// empty tag list returns everything unfiltered.
func (s *HackathonService) Recommend(ctx context.Context, userTags []string) ([]HackathonResponse, error) {
	hackathons, _, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toHackathonResponses(FilterByTags(hackathons, userTags)), nil
}

// FilterByTags keeps hackathons sharing at least one tag with userTags,
// preserving the original relative order. Empty userTags matches everything.
func FilterByTags(hackathons []models.Hackathon, userTags []string) []models.Hackathon {
	if len(userTags) == 0 {
		return hackathons
	}

	tagSet := make(map[string]struct{}, len(userTags))
	for _, tag := range userTags {
		tagSet[tag] = struct{}{}
	}

	matches := make([]models.Hackathon, 0, len(hackathons))
	for _, h := range hackathons {
		for _, tag := range h.Tags {
			if _, ok := tagSet[tag]; ok {
				matches = append(matches, h)
				break
			}
		}
	}
	return matches
}

func toHackathonResponse(h *models.Hackathon) *HackathonResponse {
	return &HackathonResponse{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Tags:        h.Tags,
		StartDate:   h.StartDate,
		EndDate:     h.EndDate,
		Location:    h.Location,
		Mode:        h.Mode,
		PrizePool:   h.PrizePool,
		MaxTeamSize: h.MaxTeamSize,
		BannerURL:   h.BannerURL,
		Status:      h.Status,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func toHackathonResponses(hackathons []models.Hackathon) []HackathonResponse {
	responses := make([]HackathonResponse, 0, len(hackathons))
	for i := range hackathons {
		responses = append(responses, *toHackathonResponse(&hackathons[i]))
	}
	return responses
}
