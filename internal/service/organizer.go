package service

import (
	"context"
	"sync"
	"time"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/logger"
	"hackconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// OrganizerService handles dashboard analytics and announcements
type OrganizerService struct {
	userRepo         repository.UserRepositoryInterface
	teamRepo         repository.TeamRepositoryInterface
	submissionRepo   repository.SubmissionRepositoryInterface
	announcementRepo repository.AnnouncementRepositoryInterface
	validator        *validator.Validate
}

// NewOrganizerService creates a new organizer service
func NewOrganizerService(
	userRepo repository.UserRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	submissionRepo repository.SubmissionRepositoryInterface,
	announcementRepo repository.AnnouncementRepositoryInterface,
	validator *validator.Validate,
) *OrganizerService {
	return &OrganizerService{
		userRepo:         userRepo,
		teamRepo:         teamRepo,
		submissionRepo:   submissionRepo,
		announcementRepo: announcementRepo,
		validator:        validator,
	}
}

// StatsResponse represents the dashboard counters for one hackathon. A metric
// listed in Degraded failed upstream and its zero is "unknown", not "none".
type StatsResponse struct {
	TotalRegistrants    int64    `json:"total_registrants"`
	TeamsFormed         int64    `json:"teams_formed"`
	SubmissionsReceived int64    `json:"submissions_received"`
	LookingForTeam      int64    `json:"looking_for_team"`
	Degraded            []string `json:"degraded,omitempty"`
}

// AnnouncementRequest represents an organizer broadcast
type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=info warning success"`
}

type statResult struct {
	name  string
	count int64
	err   error
}

// GetStats runs the four dashboard counting queries concurrently. Each query
// failure degrades that metric to zero instead of failing the whole call.
func (s *OrganizerService) GetStats(ctx context.Context, hackathonID string) (*StatsResponse, error) {
	results := make([]statResult, 4)

	var wg sync.WaitGroup
	run := func(i int, name string, count func() (int64, error)) {
		defer wg.Done()
		c, err := count()
		results[i] = statResult{name: name, count: c, err: err}
	}

	wg.Add(4)
	go run(0, "total_registrants", func() (int64, error) { return s.userRepo.Count(ctx) })
	go run(1, "teams_formed", func() (int64, error) { return s.teamRepo.CountByHackathonID(ctx, hackathonID) })
	go run(2, "submissions_received", func() (int64, error) { return s.submissionRepo.CountByHackathonID(ctx, hackathonID) })
	go run(3, "looking_for_team", func() (int64, error) { return s.userRepo.CountLookingForTeam(ctx) })
	wg.Wait()

	resp := &StatsResponse{}
	counts := []*int64{&resp.TotalRegistrants, &resp.TeamsFormed, &resp.SubmissionsReceived, &resp.LookingForTeam}
	for i, res := range results {
		if res.err != nil {
			logger.WithContext(ctx).WithError(res.err).Warnf("stats query %s failed, reporting zero", res.name)
			resp.Degraded = append(resp.Degraded, res.name)
			continue
		}
		*counts[i] = res.count
	}
	return resp, nil
}

// Announce persists an organizer broadcast for one hackathon
func (s *OrganizerService) Announce(ctx context.Context, hackathonID string, req *AnnouncementRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return &apperrors.ValidationError{Message: err.Error()}
	}

	announcementType := req.Type
	if announcementType == "" {
		announcementType = "info"
	}

	_, err := s.announcementRepo.Create(ctx, map[string]interface{}{
		"hackathon_id": hackathonID,
		"title":        req.Title,
		"message":      req.Message,
		"type":         announcementType,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
	return err
}
