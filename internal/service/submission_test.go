package service_test

import (
	"context"
	"errors"
	"testing"

	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/mocks"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubmissionServiceTestSuite defines the test suite for SubmissionService
type SubmissionServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockSubmissionRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	submissionService *service.SubmissionService
}

// SetupTest sets up the test suite
func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSubmissionRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.submissionService = service.NewSubmissionService(suite.mockRepo, suite.mockTeamRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *SubmissionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSubmission verifies a valid submission reaches the store with the
// right payload
func (suite *SubmissionServiceTestSuite) TestCreateSubmission() {
	req := &service.CreateSubmissionRequest{
		HackathonID:  "hack-1",
		TeamID:       "team-1",
		ProjectTitle: "Crop Doctor",
		RepoLinks:    []string{"https://github.com/example/crop-doctor"},
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data map[string]interface{}) (*models.Submission, error) {
			suite.Equal("hack-1", data["hackathon_id"])
			suite.Equal("team-1", data["team_id"])
			suite.Equal("Crop Doctor", data["project_title"])
			suite.NotContains(data, "demo_video_url")
			return &models.Submission{ID: "sub-1", HackathonID: "hack-1", TeamID: "team-1", ProjectTitle: "Crop Doctor"}, nil
		})

	resp, err := suite.submissionService.Create(context.Background(), req)

	suite.Require().NoError(err)
	suite.Equal("sub-1", resp.ID)
}

// TestCreateValidation rejects bad payloads before any write
func (suite *SubmissionServiceTestSuite) TestCreateValidation() {
	testCases := []struct {
		name    string
		request *service.CreateSubmissionRequest
	}{
		{
			name:    "Missing team",
			request: &service.CreateSubmissionRequest{HackathonID: "hack-1", ProjectTitle: "Crop Doctor"},
		},
		{
			name: "Bad repo link",
			request: &service.CreateSubmissionRequest{
				HackathonID:  "hack-1",
				TeamID:       "team-1",
				ProjectTitle: "Crop Doctor",
				RepoLinks:    []string{"notaurl"},
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.submissionService.Create(context.Background(), tc.request)
			suite.Error(err)
			suite.True(apperrors.IsValidation(err))
		})
	}
}

// TestListByHackathonSingleBatchedLookup verifies team names resolve through
// exactly one batched lookup over the distinct team ids
func (suite *SubmissionServiceTestSuite) TestListByHackathonSingleBatchedLookup() {
	submissions := []models.Submission{
		{ID: "s1", TeamID: "team-a", ProjectTitle: "One"},
		{ID: "s2", TeamID: "team-b", ProjectTitle: "Two"},
		{ID: "s3", TeamID: "team-a", ProjectTitle: "Three"},
		{ID: "s4", TeamID: "team-c", ProjectTitle: "Four"},
	}

	suite.mockRepo.EXPECT().GetByHackathonID(gomock.Any(), "hack-1").Return(submissions, nil)
	suite.mockTeamRepo.EXPECT().
		GetNamesByIDs(gomock.Any(), []string{"team-a", "team-b", "team-c"}).
		Return(map[string]string{
			"team-a": "Night Owls",
			"team-b": "Bit Shifters",
		}, nil).
		Times(1)

	responses, err := suite.submissionService.ListByHackathon(context.Background(), "hack-1")

	suite.Require().NoError(err)
	suite.Require().Len(responses, 4)
	suite.Equal("Night Owls", responses[0].TeamName)
	suite.Equal("Bit Shifters", responses[1].TeamName)
	suite.Equal("Night Owls", responses[2].TeamName)
	suite.Equal("Unknown Team", responses[3].TeamName)
}

// TestListByHackathonEmpty short-circuits without a team lookup
func (suite *SubmissionServiceTestSuite) TestListByHackathonEmpty() {
	suite.mockRepo.EXPECT().GetByHackathonID(gomock.Any(), "hack-1").Return([]models.Submission{}, nil)

	responses, err := suite.submissionService.ListByHackathon(context.Background(), "hack-1")

	suite.Require().NoError(err)
	suite.Empty(responses)
	suite.NotNil(responses)
}

// TestListByHackathonLookupFailure propagates a name-lookup failure
func (suite *SubmissionServiceTestSuite) TestListByHackathonLookupFailure() {
	suite.mockRepo.EXPECT().GetByHackathonID(gomock.Any(), "hack-1").Return([]models.Submission{
		{ID: "s1", TeamID: "team-a"},
	}, nil)
	suite.mockTeamRepo.EXPECT().GetNamesByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("store down"))

	_, err := suite.submissionService.ListByHackathon(context.Background(), "hack-1")
	suite.Error(err)
}

// TestSubmissionServiceTestSuite runs the test suite
func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
