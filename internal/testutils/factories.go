package testutils

import (
	"time"

	"hackconnect-backend/internal/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team documents
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values. The leader is always the
// first member and the join request list starts empty.
func (f *TeamFactory) Create() *models.Team {
	now := time.Now().UTC().Format(time.RFC3339)
	leaderID := uuid.New().String()

	return &models.Team{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         "Test Team",
		Description:  "A team created for testing",
		HackathonID:  uuid.New().String(),
		LeaderID:     leaderID,
		Members:      []string{leaderID},
		JoinRequests: []string{},
		TechStack:    []string{"go", "react"},
		Status:       "open",
	}
}

// WithLeader sets the leader and puts them at the head of the member list
func (f *TeamFactory) WithLeader(leaderID string) *models.Team {
	team := f.Create()
	team.LeaderID = leaderID
	team.Members = []string{leaderID}
	return team
}

// WithMembers sets the leader plus additional members
func (f *TeamFactory) WithMembers(leaderID string, others ...string) *models.Team {
	team := f.WithLeader(leaderID)
	team.Members = append(team.Members, others...)
	return team
}

// WithJoinRequests sets the pending join request list
func (f *TeamFactory) WithJoinRequests(team *models.Team, userIDs ...string) *models.Team {
	team.JoinRequests = userIDs
	return team
}

// HackathonFactory provides methods to create test Hackathon documents
type HackathonFactory struct{}

// NewHackathonFactory creates a new HackathonFactory
func NewHackathonFactory() *HackathonFactory {
	return &HackathonFactory{}
}

// Create creates a test Hackathon with default values
func (f *HackathonFactory) Create() *models.Hackathon {
	now := time.Now().UTC()

	return &models.Hackathon{
		ID:          uuid.New().String(),
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
		Title:       "Test Hackathon",
		Description: "A hackathon created for testing",
		Tags:        []string{"ai", "web"},
		StartDate:   now.AddDate(0, 0, 7).Format(time.RFC3339),
		EndDate:     now.AddDate(0, 0, 9).Format(time.RFC3339),
		Location:    "Online",
		Mode:        "online",
		MaxTeamSize: 4,
		Status:      "upcoming",
	}
}

// WithTags sets custom tags on the hackathon
func (f *HackathonFactory) WithTags(tags ...string) *models.Hackathon {
	h := f.Create()
	h.Tags = tags
	return h
}

// SubmissionFactory provides methods to create test Submission documents
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test Submission with default values
func (f *SubmissionFactory) Create() *models.Submission {
	now := time.Now().UTC().Format(time.RFC3339)

	return &models.Submission{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		HackathonID:  uuid.New().String(),
		TeamID:       uuid.New().String(),
		ProjectTitle: "Test Project",
		Description:  "A submission created for testing",
		RepoLinks:    []string{"https://github.com/example/test-project"},
	}
}

// WithTeam sets the submitting team
func (f *SubmissionFactory) WithTeam(teamID string) *models.Submission {
	s := f.Create()
	s.TeamID = teamID
	return s
}

// UserProfileFactory provides methods to create test UserProfile documents
type UserProfileFactory struct{}

// NewUserProfileFactory creates a new UserProfileFactory
func NewUserProfileFactory() *UserProfileFactory {
	return &UserProfileFactory{}
}

// Create creates a test UserProfile with default values
func (f *UserProfileFactory) Create() *models.UserProfile {
	now := time.Now().UTC().Format(time.RFC3339)
	id := uuid.New().String()

	return &models.UserProfile{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
		Username:  "testuser",
		AccountID: id,
		Bio:       "A profile created for testing",
		GithubURL: "https://github.com/testuser",
		Skills:    []string{"go", "typescript"},
		XP:        100,
	}
}
