package service

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for the team membership service
type TeamServiceInterface interface {
	Create(ctx context.Context, req *CreateTeamRequest) (*TeamResponse, error)
	Join(ctx context.Context, req *TeamActionRequest) error
	Approve(ctx context.Context, req *TeamRequestActionRequest) error
	Reject(ctx context.Context, req *TeamRequestActionRequest) error
	Leave(ctx context.Context, req *TeamActionRequest) (bool, error)
	Delete(ctx context.Context, req *TeamActionRequest) error
	ListEnriched(ctx context.Context) ([]TeamResponse, error)
	ListByHackathon(ctx context.Context, hackathonID string) ([]TeamResponse, int64, error)
}

// HackathonServiceInterface defines the interface for the hackathon service
type HackathonServiceInterface interface {
	Create(ctx context.Context, req *CreateHackathonRequest) (*HackathonResponse, error)
	GetAll(ctx context.Context) ([]HackathonResponse, error)
	GetByID(ctx context.Context, id string) (*HackathonResponse, error)
	Recommend(ctx context.Context, userTags []string) ([]HackathonResponse, error)
}

// SubmissionServiceInterface defines the interface for the submission service
type SubmissionServiceInterface interface {
	Create(ctx context.Context, req *CreateSubmissionRequest) (*SubmissionResponse, error)
	ListByHackathon(ctx context.Context, hackathonID string) ([]SubmissionResponse, error)
}

// JudgingServiceInterface defines the interface for the judging service
type JudgingServiceInterface interface {
	SubmitScore(ctx context.Context, req *SubmitScoreRequest) (*ScoreResponse, error)
}

// OrganizerServiceInterface defines the interface for the organizer service
type OrganizerServiceInterface interface {
	GetStats(ctx context.Context, hackathonID string) (*StatsResponse, error)
	Announce(ctx context.Context, hackathonID string, req *AnnouncementRequest) error
}

// UserServiceInterface defines the interface for the user profile service
type UserServiceInterface interface {
	GetProfile(ctx context.Context, id string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*ProfileResponse, error)
}
