package service_test

import (
	"testing"
	"time"

	"campus-collab-backend/internal/auth"
	"campus-collab-backend/internal/database/models"
	apperrors "campus-collab-backend/internal/errors"
	"campus-collab-backend/internal/logger"
	"campus-collab-backend/internal/mailer"
	"campus-collab-backend/internal/mocks"
	"campus-collab-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MentorServiceTestSuite defines the test suite for MentorService
type MentorServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockMentorRepo *mocks.MockMentorRepositoryInterface
	mentorService  *service.MentorService
}

// SetupTest sets up the test suite
func (suite *MentorServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMentorRepo = mocks.NewMockMentorRepositoryInterface(suite.ctrl)
	log := logger.New()

	suite.mentorService = service.NewMentorService(
		suite.mockMentorRepo,
		auth.NewService("test-secret", 24, false),
		mailer.New("", 587, "", "", "", log),
		validator.New(),
		log,
	)
}

// TearDownTest cleans up after each test
func (suite *MentorServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSignUp tests mentor registration
func (suite *MentorServiceTestSuite) TestSignUp() {
	req := &service.MentorSignUpRequest{
		FirstName:       "Mira",
		LastName:        "Kapoor",
		Email:           "mira@campus.test",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Expertise:       []string{"web development"},
		Experience:      6,
		Bio:             "Backend engineer",
		AgreedToTerms:   true,
	}

	suite.mockMentorRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockMentorRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(mentor *models.Mentor) error {
			assert.Len(suite.T(), mentor.OTP, 6)
			assert.False(suite.T(), mentor.IsVerified)
			assert.Contains(suite.T(), mentor.ProfilePic, "Mira+Kapoor")
			return nil
		}).
		Times(1)

	resp, err := suite.mentorService.SignUp(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.Email, resp.Email)
}

// TestSignUpMissingExpertise tests that expertise is mandatory
func (suite *MentorServiceTestSuite) TestSignUpMissingExpertise() {
	resp, err := suite.mentorService.SignUp(&service.MentorSignUpRequest{
		FirstName:       "Mira",
		LastName:        "Kapoor",
		Email:           "mira@campus.test",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Bio:             "Backend engineer",
		AgreedToTerms:   true,
	})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestLoginOTPPending tests that a mentor with an outstanding OTP cannot log in
func (suite *MentorServiceTestSuite) TestLoginOTPPending() {
	suite.mockMentorRepo.EXPECT().
		GetByEmail("mira@campus.test").
		Return(&models.Mentor{Email: "mira@campus.test", IsVerified: true, OTP: "123456"}, nil).
		Times(1)

	result, err := suite.mentorService.Login(&service.LoginRequest{Email: "mira@campus.test", Password: "secret123"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOTPPending)
}

// TestLogin tests a fully verified mentor logging in
func (suite *MentorServiceTestSuite) TestLogin() {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mentor := &models.Mentor{Email: "mira@campus.test", Password: string(hashed), IsVerified: true}

	suite.mockMentorRepo.EXPECT().
		GetByEmail(mentor.Email).
		Return(mentor, nil).
		Times(1)

	result, err := suite.mentorService.Login(&service.LoginRequest{Email: mentor.Email, Password: "secret123"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Mentor", result.UserType)
	assert.NotEmpty(suite.T(), result.Token)
}

// TestVerifyEmail tests OTP verification logging the mentor in
func (suite *MentorServiceTestSuite) TestVerifyEmail() {
	expiry := time.Now().Add(10 * time.Minute)
	mentor := &models.Mentor{Email: "mira@campus.test", OTP: "123456", OTPExpiry: &expiry}

	suite.mockMentorRepo.EXPECT().
		GetByEmail(mentor.Email).
		Return(mentor, nil).
		Times(1)
	suite.mockMentorRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Mentor) error {
			assert.True(suite.T(), updated.IsVerified)
			assert.Empty(suite.T(), updated.OTP)
			return nil
		}).
		Times(1)

	result, err := suite.mentorService.VerifyEmail(&service.VerifyEmailRequest{Email: mentor.Email, OTP: "123456"})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Token)
}

// TestGetVerified tests listing mentors for assignment
func (suite *MentorServiceTestSuite) TestGetVerified() {
	suite.mockMentorRepo.EXPECT().
		GetVerified().
		Return([]models.Mentor{{FirstName: "Mira"}}, nil).
		Times(1)

	mentors, err := suite.mentorService.GetVerified()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), mentors, 1)
}

// TestMentorServiceTestSuite runs the test suite
func TestMentorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MentorServiceTestSuite))
}
