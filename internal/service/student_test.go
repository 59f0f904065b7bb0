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

// StudentServiceTestSuite defines the test suite for StudentService
type StudentServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockStudentRepo *mocks.MockStudentRepositoryInterface
	studentService  *service.StudentService
	authService     *auth.Service
}

// SetupTest sets up the test suite
func (suite *StudentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStudentRepo = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService("test-secret", 24, false)
	log := logger.New()

	// SMTP host left empty, so no mail leaves the test process
	suite.studentService = service.NewStudentService(
		suite.mockStudentRepo,
		suite.authService,
		mailer.New("", 587, "", "", "", log),
		validator.New(),
		log,
	)
}

// TearDownTest cleans up after each test
func (suite *StudentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func signUpRequest() *service.StudentSignUpRequest {
	return &service.StudentSignUpRequest{
		FirstName:       "Asha",
		LastName:        "Iyer",
		Email:           "asha@campus.test",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Semester:        "5",
		AgreedToTerms:   true,
		Gender:          "female",
	}
}

// TestSignUp tests student registration
func (suite *StudentServiceTestSuite) TestSignUp() {
	req := signUpRequest()

	suite.mockStudentRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockStudentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(student *models.Student) error {
			assert.Len(suite.T(), student.OTP, 6)
			assert.NotNil(suite.T(), student.OTPExpiry)
			assert.False(suite.T(), student.IsVerified)
			assert.Contains(suite.T(), student.ProfilePic, "girl")
			assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)))
			return nil
		}).
		Times(1)

	resp, err := suite.studentService.SignUp(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.Email, resp.Email)
}

// TestSignUpPasswordMismatch tests mismatched password confirmation
func (suite *StudentServiceTestSuite) TestSignUpPasswordMismatch() {
	req := signUpRequest()
	req.ConfirmPassword = "different1"

	resp, err := suite.studentService.SignUp(req)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestSignUpDuplicateEmail tests registration with an email already on record
func (suite *StudentServiceTestSuite) TestSignUpDuplicateEmail() {
	req := signUpRequest()

	suite.mockStudentRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.Student{Email: req.Email}, nil).
		Times(1)

	resp, err := suite.studentService.SignUp(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentExists)
}

// TestSignUpTermsNotAgreed tests that the terms checkbox is mandatory
func (suite *StudentServiceTestSuite) TestSignUpTermsNotAgreed() {
	req := signUpRequest()
	req.AgreedToTerms = false

	resp, err := suite.studentService.SignUp(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestLogin tests a verified student logging in
func (suite *StudentServiceTestSuite) TestLogin() {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(suite.T(), err)

	student := &models.Student{
		Email:      "asha@campus.test",
		Password:   string(hashed),
		IsVerified: true,
	}

	suite.mockStudentRepo.EXPECT().
		GetByEmail(student.Email).
		Return(student, nil).
		Times(1)

	result, err := suite.studentService.Login(&service.LoginRequest{Email: student.Email, Password: "secret123"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Student", result.UserType)
	assert.NotEmpty(suite.T(), result.Token)

	claims, err := suite.authService.ValidateToken(result.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), auth.RoleStudent, claims.Role)
}

// TestLoginUnverified tests that unverified accounts cannot log in
func (suite *StudentServiceTestSuite) TestLoginUnverified() {
	suite.mockStudentRepo.EXPECT().
		GetByEmail("asha@campus.test").
		Return(&models.Student{Email: "asha@campus.test", IsVerified: false}, nil).
		Times(1)

	result, err := suite.studentService.Login(&service.LoginRequest{Email: "asha@campus.test", Password: "secret123"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotVerified)
}

// TestLoginWrongPassword tests a bad password
func (suite *StudentServiceTestSuite) TestLoginWrongPassword() {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)

	suite.mockStudentRepo.EXPECT().
		GetByEmail("asha@campus.test").
		Return(&models.Student{Email: "asha@campus.test", Password: string(hashed), IsVerified: true}, nil).
		Times(1)

	result, err := suite.studentService.Login(&service.LoginRequest{Email: "asha@campus.test", Password: "wrong-pass"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestVerifyEmail tests OTP verification
func (suite *StudentServiceTestSuite) TestVerifyEmail() {
	expiry := time.Now().Add(10 * time.Minute)
	student := &models.Student{
		Email:     "asha@campus.test",
		OTP:       "123456",
		OTPExpiry: &expiry,
	}

	suite.mockStudentRepo.EXPECT().
		GetByEmail(student.Email).
		Return(student, nil).
		Times(1)
	suite.mockStudentRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(updated *models.Student) error {
			assert.True(suite.T(), updated.IsVerified)
			assert.Empty(suite.T(), updated.OTP)
			assert.Nil(suite.T(), updated.OTPExpiry)
			return nil
		}).
		Times(1)

	result, err := suite.studentService.VerifyEmail(&service.VerifyEmailRequest{Email: student.Email, OTP: "123456"})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Token)
}

// TestVerifyEmailWrongOTP tests a mismatched code
func (suite *StudentServiceTestSuite) TestVerifyEmailWrongOTP() {
	expiry := time.Now().Add(10 * time.Minute)

	suite.mockStudentRepo.EXPECT().
		GetByEmail("asha@campus.test").
		Return(&models.Student{Email: "asha@campus.test", OTP: "123456", OTPExpiry: &expiry}, nil).
		Times(1)

	result, err := suite.studentService.VerifyEmail(&service.VerifyEmailRequest{Email: "asha@campus.test", OTP: "654321"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOTP)
}

// TestVerifyEmailExpiredOTP tests an expired code
func (suite *StudentServiceTestSuite) TestVerifyEmailExpiredOTP() {
	expiry := time.Now().Add(-time.Minute)

	suite.mockStudentRepo.EXPECT().
		GetByEmail("asha@campus.test").
		Return(&models.Student{Email: "asha@campus.test", OTP: "123456", OTPExpiry: &expiry}, nil).
		Times(1)

	result, err := suite.studentService.VerifyEmail(&service.VerifyEmailRequest{Email: "asha@campus.test", OTP: "123456"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidOTP)
}

// TestVerifyEmailAlreadyVerified tests re-verifying a verified account
func (suite *StudentServiceTestSuite) TestVerifyEmailAlreadyVerified() {
	suite.mockStudentRepo.EXPECT().
		GetByEmail("asha@campus.test").
		Return(&models.Student{Email: "asha@campus.test", IsVerified: true}, nil).
		Times(1)

	result, err := suite.studentService.VerifyEmail(&service.VerifyEmailRequest{Email: "asha@campus.test", OTP: "123456"})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyVerified)
}

// TestStudentServiceTestSuite runs the test suite
func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
