package handlers_test

import (
	"net/http"
	"testing"

	"hackconnect-backend/internal/api/handlers"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/mocks"
	"hackconnect-backend/internal/service"
	"hackconnect-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SubmissionHandlerTestSuite defines the test suite for SubmissionHandler
type SubmissionHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSubmissionServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *SubmissionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSubmissionServiceInterface(suite.ctrl)
	handler := handlers.NewSubmissionHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	submissions := suite.httpSuite.Router.Group("/api/submissions")
	{
		submissions.POST("", handler.CreateSubmission)
		submissions.GET("/:hackathonId", handler.ListSubmissions)
	}
}

// TearDownTest cleans up after each test
func (suite *SubmissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSubmissionSuccess verifies the created envelope
func (suite *SubmissionHandlerTestSuite) TestCreateSubmissionSuccess() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&service.SubmissionResponse{ID: "sub-1", ProjectTitle: "Crop Doctor"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/submissions", map[string]interface{}{
		"hackathon_id":  "hack-1",
		"team_id":       "team-1",
		"project_title": "Crop Doctor",
	})

	var resp struct {
		Success bool                       `json:"success"`
		Message string                     `json:"message"`
		Data    service.SubmissionResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.True(resp.Success)
	suite.Equal("Project submitted successfully", resp.Message)
	suite.Equal("sub-1", resp.Data.ID)
}

// TestCreateSubmissionValidationError verifies validation failures are 400
func (suite *SubmissionHandlerTestSuite) TestCreateSubmissionValidationError() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, &apperrors.ValidationError{Message: "TeamID is required"})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/submissions", map[string]interface{}{
		"hackathon_id":  "hack-1",
		"project_title": "Crop Doctor",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "TeamID")
}

// TestListSubmissionsEnvelope verifies the submissions envelope carries team
// names through
func (suite *SubmissionHandlerTestSuite) TestListSubmissionsEnvelope() {
	suite.mockService.EXPECT().
		ListByHackathon(gomock.Any(), "hack-1").
		Return([]service.SubmissionResponse{
			{ID: "s1", TeamID: "team-a", TeamName: "Night Owls"},
			{ID: "s2", TeamID: "team-b", TeamName: "Unknown Team"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/submissions/hack-1", nil)

	var resp struct {
		Success     bool                         `json:"success"`
		Submissions []service.SubmissionResponse `json:"submissions"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.True(resp.Success)
	suite.Require().Len(resp.Submissions, 2)
	suite.Equal("Night Owls", resp.Submissions[0].TeamName)
	suite.Equal("Unknown Team", resp.Submissions[1].TeamName)
}

// TestListSubmissionsUpstreamFailure verifies upstream failures map to 500
func (suite *SubmissionHandlerTestSuite) TestListSubmissionsUpstreamFailure() {
	suite.mockService.EXPECT().
		ListByHackathon(gomock.Any(), "hack-1").
		Return(nil, &apperrors.UpstreamError{Service: "databases", StatusCode: 500, Message: "boom"})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/submissions/hack-1", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "boom")
}

// TestSubmissionHandlerTestSuite runs the test suite
func TestSubmissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionHandlerTestSuite))
}
