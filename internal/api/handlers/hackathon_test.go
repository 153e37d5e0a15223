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

// HackathonHandlerTestSuite defines the test suite for HackathonHandler
type HackathonHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockService     *mocks.MockHackathonServiceInterface
	mockTeamService *mocks.MockTeamServiceInterface
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *HackathonHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHackathonServiceInterface(suite.ctrl)
	suite.mockTeamService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	handler := handlers.NewHackathonHandler(suite.mockService, suite.mockTeamService)

	suite.httpSuite = testutils.SetupHTTPTest()
	hackathons := suite.httpSuite.Router.Group("/api/hackathons")
	{
		hackathons.POST("", handler.CreateHackathon)
		hackathons.GET("", handler.ListHackathons)
		hackathons.POST("/recommendations", handler.Recommend)
		hackathons.GET("/:id", handler.GetHackathon)
		hackathons.GET("/:id/teams", handler.ListHackathonTeams)
	}
}

// TearDownTest cleans up after each test
func (suite *HackathonHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListHackathonsEnvelope verifies the documents envelope
func (suite *HackathonHandlerTestSuite) TestListHackathonsEnvelope() {
	suite.mockService.EXPECT().
		GetAll(gomock.Any()).
		Return([]service.HackathonResponse{{ID: "h1", Title: "AI Sprint"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/hackathons", nil)

	var resp struct {
		Success   bool                        `json:"success"`
		Documents []service.HackathonResponse `json:"documents"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.True(resp.Success)
	suite.Require().Len(resp.Documents, 1)
	suite.Equal("AI Sprint", resp.Documents[0].Title)
}

// TestGetHackathonNotFound verifies a missing hackathon is a 404
func (suite *HackathonHandlerTestSuite) TestGetHackathonNotFound() {
	suite.mockService.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.ErrHackathonNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/hackathons/missing", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "hackathon not found")
}

// TestRecommendEnvelope verifies the count+documents envelope and that the
// raw tag array binds straight into the service call
func (suite *HackathonHandlerTestSuite) TestRecommendEnvelope() {
	suite.mockService.EXPECT().
		Recommend(gomock.Any(), []string{"ai"}).
		Return([]service.HackathonResponse{
			{ID: "h1", Title: "AI Sprint"},
			{ID: "h3", Title: "ML Jam"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/hackathons/recommendations", []string{"ai"})

	var resp struct {
		Success   bool                        `json:"success"`
		Count     int                         `json:"count"`
		Documents []service.HackathonResponse `json:"documents"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.True(resp.Success)
	suite.Equal(2, resp.Count)
	suite.Len(resp.Documents, 2)
}

// TestListHackathonTeamsEnvelope verifies the teams+total envelope
func (suite *HackathonHandlerTestSuite) TestListHackathonTeamsEnvelope() {
	suite.mockTeamService.EXPECT().
		ListByHackathon(gomock.Any(), "hack-1").
		Return([]service.TeamResponse{{ID: "team-1", Name: "Night Owls"}}, int64(1), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/hackathons/hack-1/teams", nil)

	var resp struct {
		Success bool                   `json:"success"`
		Teams   []service.TeamResponse `json:"teams"`
		Total   int64                  `json:"total"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	suite.True(resp.Success)
	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Teams, 1)
}

// TestCreateHackathonSuccess verifies the created envelope
func (suite *HackathonHandlerTestSuite) TestCreateHackathonSuccess() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&service.HackathonResponse{ID: "h1", Title: "AI Sprint"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/hackathons", map[string]interface{}{
		"title": "AI Sprint",
	})

	var resp struct {
		Success bool                      `json:"success"`
		Data    service.HackathonResponse `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	suite.True(resp.Success)
	suite.Equal("h1", resp.Data.ID)
}

// TestHackathonHandlerTestSuite runs the test suite
func TestHackathonHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HackathonHandlerTestSuite))
}
