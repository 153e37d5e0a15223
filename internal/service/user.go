package service

import (
	"context"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/logger"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// UserService merges profile documents with the auth directory
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	directory repository.DirectoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, directory repository.DirectoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		userRepo:  userRepo,
		directory: directory,
		validator: validator,
	}
}

// UpdateProfileRequest represents a profile update. Name belongs to the auth
// directory; every other field belongs to the profile document.
type UpdateProfileRequest struct {
	Name         *string  `json:"name,omitempty"`
	Bio          *string  `json:"bio,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	TechStack    []string `json:"tech_stack,omitempty"`
	GithubURL    *string  `json:"github_url,omitempty" validate:"omitempty,url"`
	PortfolioURL *string  `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	AvatarURL    *string  `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// ProfileResponse is the merged profile view: document fields plus directory
// email and display name
type ProfileResponse struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Bio             string   `json:"bio,omitempty"`
	AvatarURL       string   `json:"avatar_url,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	PortfolioURL    string   `json:"portfolio_url,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	TechStack       []string `json:"tech_stack,omitempty"`
	XP              int      `json:"xp"`
	ReputationScore float64  `json:"reputation_score"`
	AccountID       string   `json:"account_id,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// GetProfile returns the merged profile for one user id
func (s *UserService) GetProfile(ctx context.Context, id string) (*ProfileResponse, error) {
	profile, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account, err := s.directory.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		ID:              profile.ID,
		Username:        profile.Username,
		Email:           account.Email,
		Name:            account.Name,
		Bio:             profile.Bio,
		AvatarURL:       profile.AvatarURL,
		GithubURL:       profile.GithubURL,
		PortfolioURL:    profile.PortfolioURL,
		Skills:          profile.Skills,
		TechStack:       profile.TechStack,
		XP:              profile.XP,
		ReputationScore: profile.ReputationScore,
		AccountID:       profile.AccountID,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}, nil
}

// UpdateProfile splits the payload: display name goes to the directory, every
// other field goes to the profile document. A directory name update failing is
// logged and does not abort the document update.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if req.Name != nil && *req.Name != "" {
		if err := s.directory.UpdateName(ctx, id, *req.Name); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("failed to update display name in directory")
		}
	}

	updates := make(map[string]interface{})
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Skills != nil {
		updates["skills"] = req.Skills
	}
	if req.TechStack != nil {
		updates["tech_stack"] = req.TechStack
	}
	if req.GithubURL != nil {
		updates["github_url"] = *req.GithubURL
	}
	if req.PortfolioURL != nil {
		updates["portfolio_url"] = *req.PortfolioURL
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}

	if len(updates) > 0 {
		if _, err := s.userRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, id)
}
