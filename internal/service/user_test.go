package service_test

import (
	"context"
	"errors"
	"testing"

	"hackconnect-backend/internal/appwrite"
	apperrors "hackconnect-backend/internal/errors"
	"hackconnect-backend/internal/mocks"
	"hackconnect-backend/internal/models"
	"hackconnect-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockUserRepo  *mocks.MockUserRepositoryInterface
	mockDirectory *mocks.MockDirectoryInterface
	userService   *service.UserService
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockDirectory = mocks.NewMockDirectoryInterface(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockDirectory, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetProfileMergesDirectoryFields verifies email and name come from the
// directory while everything else comes from the profile document
func (suite *UserServiceTestSuite) TestGetProfileMergesDirectoryFields() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&models.UserProfile{
		ID:       "u1",
		Username: "alice-dev",
		Bio:      "builds things",
		Skills:   []string{"go"},
		XP:       420,
	}, nil)
	suite.mockDirectory.EXPECT().Get(gomock.Any(), "u1").Return(&appwrite.User{
		ID:    "u1",
		Email: "alice@example.com",
		Name:  "Alice",
	}, nil)

	profile, err := suite.userService.GetProfile(context.Background(), "u1")

	suite.Require().NoError(err)
	suite.Equal("alice-dev", profile.Username)
	suite.Equal("alice@example.com", profile.Email)
	suite.Equal("Alice", profile.Name)
	suite.Equal("builds things", profile.Bio)
	suite.Equal(420, profile.XP)
}

// TestGetProfileNotFound passes the not-found error through
func (suite *UserServiceTestSuite) TestGetProfileNotFound() {
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.ErrUserNotFound)

	_, err := suite.userService.GetProfile(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUpdateProfileSplitsNameAndDocument verifies the display name goes to
// the directory and the rest to the profile document
func (suite *UserServiceTestSuite) TestUpdateProfileSplitsNameAndDocument() {
	name := "Alice B"
	bio := "now builds bigger things"

	suite.mockDirectory.EXPECT().UpdateName(gomock.Any(), "u1", "Alice B").Return(nil)
	suite.mockUserRepo.EXPECT().
		Update(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, updates map[string]interface{}) (*models.UserProfile, error) {
			suite.Equal("now builds bigger things", updates["bio"])
			suite.NotContains(updates, "name")
			return &models.UserProfile{ID: "u1"}, nil
		})
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&models.UserProfile{ID: "u1", Bio: bio}, nil)
	suite.mockDirectory.EXPECT().Get(gomock.Any(), "u1").Return(&appwrite.User{ID: "u1", Name: "Alice B"}, nil)

	profile, err := suite.userService.UpdateProfile(context.Background(), "u1", &service.UpdateProfileRequest{
		Name: &name,
		Bio:  &bio,
	})

	suite.Require().NoError(err)
	suite.Equal("Alice B", profile.Name)
}

// TestUpdateProfileNameOnlySkipsDocumentWrite verifies a name-only update
// never touches the profile document
func (suite *UserServiceTestSuite) TestUpdateProfileNameOnlySkipsDocumentWrite() {
	name := "Alice B"

	suite.mockDirectory.EXPECT().UpdateName(gomock.Any(), "u1", "Alice B").Return(nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&models.UserProfile{ID: "u1"}, nil)
	suite.mockDirectory.EXPECT().Get(gomock.Any(), "u1").Return(&appwrite.User{ID: "u1", Name: "Alice B"}, nil)

	_, err := suite.userService.UpdateProfile(context.Background(), "u1", &service.UpdateProfileRequest{
		Name: &name,
	})
	suite.NoError(err)
}

// TestUpdateProfileDirectoryFailureIsNonFatal verifies a failed name update
// does not abort the document update
func (suite *UserServiceTestSuite) TestUpdateProfileDirectoryFailureIsNonFatal() {
	name := "Alice B"
	bio := "still here"

	suite.mockDirectory.EXPECT().UpdateName(gomock.Any(), "u1", "Alice B").Return(errors.New("directory down"))
	suite.mockUserRepo.EXPECT().Update(gomock.Any(), "u1", gomock.Any()).Return(&models.UserProfile{ID: "u1"}, nil)
	suite.mockUserRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(&models.UserProfile{ID: "u1", Bio: bio}, nil)
	suite.mockDirectory.EXPECT().Get(gomock.Any(), "u1").Return(&appwrite.User{ID: "u1"}, nil)

	_, err := suite.userService.UpdateProfile(context.Background(), "u1", &service.UpdateProfileRequest{
		Name: &name,
		Bio:  &bio,
	})
	suite.NoError(err)
}

// TestUpdateProfileValidation rejects malformed URLs
func (suite *UserServiceTestSuite) TestUpdateProfileValidation() {
	bad := "notaurl"

	_, err := suite.userService.UpdateProfile(context.Background(), "u1", &service.UpdateProfileRequest{
		GithubURL: &bad,
	})
	suite.Error(err)
	suite.True(apperrors.IsValidation(err))
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
