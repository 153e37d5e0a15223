package service

import (
	"context"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// unknownTeamName labels submissions whose team was deleted or unresolvable
const unknownTeamName = "Unknown Team"

// SubmissionService handles project submissions and their team-name enrichment
type SubmissionService struct {
	repo      repository.SubmissionRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(repo repository.SubmissionRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateSubmissionRequest represents the request to submit a project
type CreateSubmissionRequest struct {
	HackathonID  string   `json:"hackathon_id" validate:"required"`
	TeamID       string   `json:"team_id" validate:"required"`
	ProjectTitle string   `json:"project_title" validate:"required,min=1,max=200"`
	Description  string   `json:"description,omitempty"`
	RepoLinks    []string `json:"repo_links,omitempty" validate:"dive,url"`
	DemoVideoURL string   `json:"demo_video_url,omitempty" validate:"omitempty,url"`
}

// SubmissionResponse represents the response for submission operations
type SubmissionResponse struct {
	ID           string   `json:"id"`
	HackathonID  string   `json:"hackathon_id"`
	TeamID       string   `json:"team_id"`
	ProjectTitle string   `json:"project_title"`
	Description  string   `json:"description,omitempty"`
	RepoLinks    []string `json:"repo_links,omitempty"`
	DemoVideoURL string   `json:"demo_video_url,omitempty"`
	TeamName     string   `json:"team_name,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

// Create records a project submission. There is no update or delete path.
func (s *SubmissionService) Create(ctx context.Context, req *CreateSubmissionRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	data := map[string]interface{}{
		"hackathon_id":  req.HackathonID,
		"team_id":       req.TeamID,
		"project_title": req.ProjectTitle,
	}
	if req.Description != "" {
		data["description"] = req.Description
	}
	if len(req.RepoLinks) > 0 {
		data["repo_links"] = req.RepoLinks
	}
	if req.DemoVideoURL != "" {
		data["demo_video_url"] = req.DemoVideoURL
	}

	submission, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponse(submission), nil
}

// ListByHackathon returns submissions for one hackathon, most recent first,
// each enriched with its team name. Team names are resolved in a single
// batched lookup over the distinct team ids regardless of submission count.
func (s *SubmissionService) ListByHackathon(ctx context.Context, hackathonID string) ([]SubmissionResponse, error) {
	submissions, err := s.repo.GetByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if len(submissions) == 0 {
		return []SubmissionResponse{}, nil
	}

	seen := make(map[string]struct{}, len(submissions))
	teamIDs := make([]string, 0, len(submissions))
	for _, sub := range submissions {
		if _, ok := seen[sub.TeamID]; ok {
			continue
		}
		seen[sub.TeamID] = struct{}{}
		teamIDs = append(teamIDs, sub.TeamID)
	}

	names, err := s.teamRepo.GetNamesByIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		resp := toSubmissionResponse(&submissions[i])
		if name, ok := names[resp.TeamID]; ok {
			resp.TeamName = name
		} else {
			resp.TeamName = unknownTeamName
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func toSubmissionResponse(sub *models.Submission) *SubmissionResponse {
	return &SubmissionResponse{
		ID:           sub.ID,
		HackathonID:  sub.HackathonID,
		TeamID:       sub.TeamID,
		ProjectTitle: sub.ProjectTitle,
		Description:  sub.Description,
		RepoLinks:    sub.RepoLinks,
		DemoVideoURL: sub.DemoVideoURL,
		TeamName:     sub.TeamName,
		CreatedAt:    sub.CreatedAt,
	}
}
