package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/mocks"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/service"
	"hackconnect-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockTeamRepositoryInterface
	mockDirectory *mocks.MockDirectoryInterface
	teamService   *service.TeamService
	teamFactory   *testutils.TeamFactory
}

// SetupTest sets up the test suite
func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockDirectory = mocks.NewMockDirectoryInterface(suite.ctrl)
	suite.teamService = service.NewTeamService(suite.mockRepo, suite.mockDirectory, validator.New())
	suite.teamFactory = testutils.NewTeamFactory()
}

// TearDownTest cleans up after each test
func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateInsertsLeaderIntoMembers verifies the leader always ends up in the
// member list even when the caller omits it
func (suite *TeamServiceTestSuite) TestCreateInsertsLeaderIntoMembers() {
	req := &service.CreateTeamRequest{
		Name:        "Night Owls",
		HackathonID: "hack-1",
		LeaderID:    "leader-1",
		Members:     []string{"member-2"},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string]interface{}) (*models.Team, error) {
			members, ok := data["members"].([]string)
			suite.True(ok)
			suite.Equal([]string{"member-2", "leader-1"}, members)
			suite.Equal([]string{}, data["join_requests"])
			return &models.Team{
				ID:           "team-1",
				Name:         "Night Owls",
				HackathonID:  "hack-1",
				LeaderID:     "leader-1",
				Members:      members,
				JoinRequests: []string{},
			}, nil
		})

	resp, err := suite.teamService.Create(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("team-1", resp.ID)
	suite.Contains(resp.Members, "leader-1")
}

// TestCreateDoesNotDuplicateLeader verifies the leader is not inserted twice
// when the caller already listed them
func (suite *TeamServiceTestSuite) TestCreateDoesNotDuplicateLeader() {
	req := &service.CreateTeamRequest{
		Name:        "Night Owls",
		HackathonID: "hack-1",
		LeaderID:    "leader-1",
		Members:     []string{"leader-1", "member-2"},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string]interface{}) (*models.Team, error) {
			members := data["members"].([]string)
			suite.Equal([]string{"leader-1", "member-2"}, members)
			return &models.Team{ID: "team-1", LeaderID: "leader-1", Members: members}, nil
		})

	_, err := suite.teamService.Create(context.Background(), req)
	suite.NoError(err)
}

// TestCreateDeduplicatesMembers verifies repeated member ids collapse to one
// entry, keeping first-seen order
func (suite *TeamServiceTestSuite) TestCreateDeduplicatesMembers() {
	req := &service.CreateTeamRequest{
		Name:        "Night Owls",
		HackathonID: "hack-1",
		LeaderID:    "leader-1",
		Members:     []string{"member-2", "member-2", "member-3"},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string]interface{}) (*models.Team, error) {
			members := data["members"].([]string)
			suite.Equal([]string{"member-2", "member-3", "leader-1"}, members)
			return &models.Team{ID: "team-1", LeaderID: "leader-1", Members: members}, nil
		})

	_, err := suite.teamService.Create(context.Background(), req)
	suite.NoError(err)
}

// TestCreateValidation verifies required fields are enforced before any write
func (suite *TeamServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request *service.CreateTeamRequest
	}{
		{
			name:    "Missing name",
			request: &service.CreateTeamRequest{HackathonID: "hack-1", LeaderID: "leader-1"},
		},
		{
			name:    "Missing hackathon",
			request: &service.CreateTeamRequest{Name: "Night Owls", LeaderID: "leader-1"},
		},
		{
			name:    "Missing leader",
			request: &service.CreateTeamRequest{Name: "Night Owls", HackathonID: "hack-1"},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.teamService.Create(context.Background(), tc.request)
			suite.Error(err)
			suite.True(apperrors.IsValidation(err))
		})
	}
}

// TestJoinAppendsRequest verifies a join request lands in the pending list
func (suite *TeamServiceTestSuite) TestJoinAppendsRequest() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-2"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().
		UpdateMembership(gomock.Any(), team.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates map[string]interface{}) (*models.Team, error) {
			suite.Equal([]string{"user-2", "user-3"}, updates["join_requests"])
			suite.NotContains(updates, "members")
			return team, nil
		})

	err := suite.teamService.Join(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "user-3",
	})
	suite.NoError(err)
}

// TestJoinAlreadyMember verifies a member cannot request to join again
func (suite *TeamServiceTestSuite) TestJoinAlreadyMember() {
	team := suite.teamFactory.WithMembers("leader-1", "user-2")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Join(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "user-2",
	})
	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
}

// TestJoinAlreadyPending verifies a pending request is never duplicated
func (suite *TeamServiceTestSuite) TestJoinAlreadyPending() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-3"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Join(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "user-3",
	})
	suite.ErrorIs(err, apperrors.ErrRequestPending)
}

// TestJoinTeamNotFound verifies the not-found error passes through untouched
func (suite *TeamServiceTestSuite) TestJoinTeamNotFound() {
	suite.mockRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.ErrTeamNotFound)

	err := suite.teamService.Join(context.Background(), &service.TeamActionRequest{
		TeamID: "missing",
		UserID: "user-3",
	})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
}

// TestApproveMovesUserInSingleWrite verifies approval moves the user from the
// pending list to the member list and persists both lists in one update
func (suite *TeamServiceTestSuite) TestApproveMovesUserInSingleWrite() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-3", "user-4"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().
		UpdateMembership(gomock.Any(), team.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates map[string]interface{}) (*models.Team, error) {
			suite.Equal([]string{"user-4"}, updates["join_requests"])
			suite.Equal([]string{"leader-1", "user-3"}, updates["members"])
			return team, nil
		}).
		Times(1)

	err := suite.teamService.Approve(context.Background(), &service.TeamRequestActionRequest{
		TeamID:       team.ID,
		LeaderID:     "leader-1",
		TargetUserID: "user-3",
	})
	suite.NoError(err)
}

// TestApproveNonLeader verifies only the stored leader may approve and that
// nothing is written on the forbidden path
func (suite *TeamServiceTestSuite) TestApproveNonLeader() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-3"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Approve(context.Background(), &service.TeamRequestActionRequest{
		TeamID:       team.ID,
		LeaderID:     "impostor",
		TargetUserID: "user-3",
	})
	suite.ErrorIs(err, apperrors.ErrNotLeaderApprove)
	suite.True(apperrors.IsForbidden(err))
}

// TestApproveRequestNotFound verifies approving a user who never asked fails
func (suite *TeamServiceTestSuite) TestApproveRequestNotFound() {
	team := suite.teamFactory.WithLeader("leader-1")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Approve(context.Background(), &service.TeamRequestActionRequest{
		TeamID:       team.ID,
		LeaderID:     "leader-1",
		TargetUserID: "user-3",
	})
	suite.ErrorIs(err, apperrors.ErrRequestNotFound)
}

// TestRejectDropsRequest verifies rejection removes the pending entry without
// touching the member list
func (suite *TeamServiceTestSuite) TestRejectDropsRequest() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-3", "user-4"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().
		UpdateMembership(gomock.Any(), team.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates map[string]interface{}) (*models.Team, error) {
			suite.Equal([]string{"user-4"}, updates["join_requests"])
			suite.NotContains(updates, "members")
			return team, nil
		})

	err := suite.teamService.Reject(context.Background(), &service.TeamRequestActionRequest{
		TeamID:       team.ID,
		LeaderID:     "leader-1",
		TargetUserID: "user-3",
	})
	suite.NoError(err)
}

// TestRejectNonLeader verifies only the stored leader may reject
func (suite *TeamServiceTestSuite) TestRejectNonLeader() {
	team := suite.teamFactory.WithLeader("leader-1")
	team.JoinRequests = []string{"user-3"}

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Reject(context.Background(), &service.TeamRequestActionRequest{
		TeamID:       team.ID,
		LeaderID:     "impostor",
		TargetUserID: "user-3",
	})
	suite.ErrorIs(err, apperrors.ErrNotLeaderReject)
}

// TestLeaveMember verifies an ordinary member leaving shrinks the member list
func (suite *TeamServiceTestSuite) TestLeaveMember() {
	team := suite.teamFactory.WithMembers("leader-1", "user-2", "user-3")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().
		UpdateMembership(gomock.Any(), team.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates map[string]interface{}) (*models.Team, error) {
			suite.Equal([]string{"leader-1", "user-3"}, updates["members"])
			return team, nil
		})

	disbanded, err := suite.teamService.Leave(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "user-2",
	})
	suite.NoError(err)
	suite.False(disbanded)
}

// TestLeaveLeaderDisbands verifies the leader leaving deletes the whole team
func (suite *TeamServiceTestSuite) TestLeaveLeaderDisbands() {
	team := suite.teamFactory.WithMembers("leader-1", "user-2")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), team.ID).Return(nil)

	disbanded, err := suite.teamService.Leave(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "leader-1",
	})
	suite.NoError(err)
	suite.True(disbanded)
}

// TestLeaveNonMember verifies leaving a team you never joined fails
func (suite *TeamServiceTestSuite) TestLeaveNonMember() {
	team := suite.teamFactory.WithLeader("leader-1")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	_, err := suite.teamService.Leave(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "stranger",
	})
	suite.ErrorIs(err, apperrors.ErrNotMember)
}

// TestDeleteNonLeader verifies only the stored leader may delete the team
func (suite *TeamServiceTestSuite) TestDeleteNonLeader() {
	team := suite.teamFactory.WithMembers("leader-1", "user-2")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)

	err := suite.teamService.Delete(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "user-2",
	})
	suite.ErrorIs(err, apperrors.ErrNotLeaderDelete)
}

// TestDeleteByLeader verifies the leader can delete the team
func (suite *TeamServiceTestSuite) TestDeleteByLeader() {
	team := suite.teamFactory.WithLeader("leader-1")

	suite.mockRepo.EXPECT().GetByID(gomock.Any(), team.ID).Return(team, nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any(), team.ID).Return(nil)

	err := suite.teamService.Delete(context.Background(), &service.TeamActionRequest{
		TeamID: team.ID,
		UserID: "leader-1",
	})
	suite.NoError(err)
}

// TestListEnrichedResolvesNames verifies member ids resolve against the
// directory snapshot and unresolved ids fall back to the placeholder
func (suite *TeamServiceTestSuite) TestListEnrichedResolvesNames() {
	team := suite.teamFactory.WithMembers("u1", "u2")
	team.JoinRequests = []string{"u3"}

	suite.mockRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*team}, int64(1), nil)
	suite.mockDirectory.EXPECT().List(gomock.Any(), gomock.Any()).Return([]appwrite.User{
		{ID: "u1", Name: "Alice"},
		{ID: "u3", Name: "Carol"},
	}, nil)

	responses, err := suite.teamService.ListEnriched(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.Equal([]service.MemberInfo{
		{UserID: "u1", Name: "Alice"},
		{UserID: "u2", Name: "Unknown User"},
	}, responses[0].MembersEnriched)
	suite.Equal([]service.MemberInfo{
		{UserID: "u3", Name: "Carol"},
	}, responses[0].JoinRequestsEnriched)
}

// TestListEnrichedEmptyRequestsKeepArrays verifies a team with nothing
// pending still serializes empty enriched arrays and the avatar placeholder
func (suite *TeamServiceTestSuite) TestListEnrichedEmptyRequestsKeepArrays() {
	team := suite.teamFactory.WithMembers("u1")
	team.JoinRequests = nil

	suite.mockRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*team}, int64(1), nil)
	suite.mockDirectory.EXPECT().List(gomock.Any(), gomock.Any()).Return([]appwrite.User{
		{ID: "u1", Name: "Alice"},
	}, nil)

	responses, err := suite.teamService.ListEnriched(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	suite.NotNil(responses[0].JoinRequestsEnriched)

	payload, err := json.Marshal(responses[0])
	suite.Require().NoError(err)
	suite.Contains(string(payload), `"join_requests_enriched":[]`)
	suite.Contains(string(payload), `"avatar":""`)
}

// TestListEnrichedDirectoryFailure verifies a directory outage degrades names
// instead of failing the listing
func (suite *TeamServiceTestSuite) TestListEnrichedDirectoryFailure() {
	team := suite.teamFactory.WithMembers("u1", "u2")

	suite.mockRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Team{*team}, int64(1), nil)
	suite.mockDirectory.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("upstream down"))

	responses, err := suite.teamService.ListEnriched(context.Background())

	suite.Require().NoError(err)
	suite.Require().Len(responses, 1)
	for _, m := range responses[0].MembersEnriched {
		suite.Equal("Unknown User", m.Name)
	}
}

// TestListEnrichedTeamsFailure verifies a teams fetch failure is fatal
func (suite *TeamServiceTestSuite) TestListEnrichedTeamsFailure() {
	suite.mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, int64(0), errors.New("store down"))
	suite.mockDirectory.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := suite.teamService.ListEnriched(context.Background())
	suite.Error(err)
}

// TestTeamServiceTestSuite runs the test suite
func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}

// memoryTeamRepo is a minimal in-memory repository used to exercise the
// per-team serialization under real concurrency.
type memoryTeamRepo struct {
	mu   sync.Mutex
	team models.Team
}

func (r *memoryTeamRepo) Create(_ context.Context, _ map[string]interface{}) (*models.Team, error) {
	return nil, errors.New("not implemented")
}

func (r *memoryTeamRepo) GetByID(_ context.Context, _ string) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.team
	snapshot.JoinRequests = append([]string{}, r.team.JoinRequests...)
	snapshot.Members = append([]string{}, r.team.Members...)
	return &snapshot, nil
}

func (r *memoryTeamRepo) GetAll(_ context.Context) ([]models.Team, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *memoryTeamRepo) GetByHackathonID(_ context.Context, _ string) ([]models.Team, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *memoryTeamRepo) UpdateMembership(_ context.Context, _ string, updates map[string]interface{}) (*models.Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := updates["join_requests"].([]string); ok {
		r.team.JoinRequests = v
	}
	if v, ok := updates["members"].([]string); ok {
		r.team.Members = v
	}
	return &r.team, nil
}

func (r *memoryTeamRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func (r *memoryTeamRepo) GetNamesByIDs(_ context.Context, _ []string) (map[string]string, error) {
	return nil, errors.New("not implemented")
}

func (r *memoryTeamRepo) CountByHackathonID(_ context.Context, _ string) (int64, error) {
	return 0, errors.New("not implemented")
}

// TestConcurrentJoinsLoseNoRequests hammers Join from many goroutines and
// checks every distinct request survives the read-modify-write cycle
func TestConcurrentJoinsLoseNoRequests(t *testing.T) {
	repo := &memoryTeamRepo{
		team: models.Team{
			ID:           "team-1",
			LeaderID:     "leader-1",
			Members:      []string{"leader-1"},
			JoinRequests: []string{},
		},
	}
	directory := mocks.NewMockDirectoryInterface(gomock.NewController(t))
	svc := service.NewTeamService(repo, directory, validator.New())

	const joiners = 32
	var wg sync.WaitGroup
	wg.Add(joiners)
	for i := 0; i < joiners; i++ {
		go func(n int) {
			defer wg.Done()
			err := svc.Join(context.Background(), &service.TeamActionRequest{
				TeamID: "team-1",
				UserID: "user-" + string(rune('a'+n%26)) + string(rune('a'+n/26)),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.team.JoinRequests, joiners)
}
