package service_test

import (
	"testing"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/mocks"
	"campus-collab-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecurityCode = "setup-code-42"

// AdminServiceTestSuite defines the test suite for AdminService
type AdminServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAdminRepo *mocks.MockAdminRepositoryInterface
	adminService  *service.AdminService
}

// SetupTest sets up the test suite
func (suite *AdminServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAdminRepo = mocks.NewMockAdminRepositoryInterface(suite.ctrl)

	suite.adminService = service.NewAdminService(
		suite.mockAdminRepo,
		auth.NewService("test-secret", 24, false),
		validator.New(),
		testSecurityCode,
	)
}

// TearDownTest cleans up after each test
func (suite *AdminServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSetup tests the one-time admin bootstrap
func (suite *AdminServiceTestSuite) TestSetup() {
	req := &service.AdminSetupRequest{
		Name:      "Platform Admin",
		Email:     "admin@campus.test",
		Password:  "longenough",
		SetupCode: testSecurityCode,
	}

	suite.mockAdminRepo.EXPECT().
		Count().
		Return(int64(0), nil).
		Times(1)
	suite.mockAdminRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(admin *models.Admin) error {
			assert.Equal(suite.T(), "admin", admin.Role)
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)))
			return nil
		}).
		Times(1)

	err := suite.adminService.Setup(req)

	assert.NoError(suite.T(), err)
}

// TestSetupWrongCode tests setup with a bad security code
func (suite *AdminServiceTestSuite) TestSetupWrongCode() {
	err := suite.adminService.Setup(&service.AdminSetupRequest{
		Name:      "Platform Admin",
		Email:     "admin@campus.test",
		Password:  "longenough",
		SetupCode: "wrong",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSetupCode)
}

// TestSetupAdminExists tests that setup is one-time only
func (suite *AdminServiceTestSuite) TestSetupAdminExists() {
	suite.mockAdminRepo.EXPECT().
		Count().
		Return(int64(1), nil).
		Times(1)

	err := suite.adminService.Setup(&service.AdminSetupRequest{
		Name:      "Second Admin",
		Email:     "admin2@campus.test",
		Password:  "longenough",
		SetupCode: testSecurityCode,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAdminExists)
}

// TestLogin tests admin login with the security code
func (suite *AdminServiceTestSuite) TestLogin() {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.MinCost)
	admin := &models.Admin{Email: "admin@campus.test", Password: string(hashed), Role: "admin"}

	suite.mockAdminRepo.EXPECT().
		GetByEmail(admin.Email).
		Return(admin, nil).
		Times(1)

	result, err := suite.adminService.Login(&service.AdminLoginRequest{
		Email:    admin.Email,
		Password: "longenough",
		Code:     testSecurityCode,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Admin", result.UserType)
	assert.NotEmpty(suite.T(), result.Token)
}

// TestLoginWrongCode tests login without the right security code
func (suite *AdminServiceTestSuite) TestLoginWrongCode() {
	result, err := suite.adminService.Login(&service.AdminLoginRequest{
		Email:    "admin@campus.test",
		Password: "longenough",
		Code:     "wrong",
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidSetupCode)
}

// TestLoginUnknownEmail tests login with an unknown account
func (suite *AdminServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockAdminRepo.EXPECT().
		GetByEmail("ghost@campus.test").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.adminService.Login(&service.AdminLoginRequest{
		Email:    "ghost@campus.test",
		Password: "longenough",
		Code:     testSecurityCode,
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestAdminServiceTestSuite runs the test suite
func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
