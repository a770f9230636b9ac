package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/resale_hub/internal/apperrors"
	"github.com/SscSPs/resale_hub/internal/core/domain"
	portssvc "github.com/SscSPs/resale_hub/internal/core/ports/services"
	"github.com/SscSPs/resale_hub/internal/core/services"
	"github.com/SscSPs/resale_hub/internal/dto"
	"github.com/SscSPs/resale_hub/internal/platform/config"
	"github.com/SscSPs/resale_hub/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	cfg      *config.Config
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.cfg = &config.Config{JWTSecret: "test-secret", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	suite.service = services.NewAuthService(suite.cfg, suite.mockRepo)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	suite.mockRepo.On("SaveUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Username == "seller" && u.PasswordHash != "hunter2hunter2" &&
			utils.CheckPasswordHash("hunter2hunter2", u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.Register(context.Background(), dto.RegisterRequest{
		Username: " seller ",
		Password: "hunter2hunter2",
		Name:     "Sam Seller",
	})

	suite.Require().NoError(err)
	suite.Equal("seller", user.Username)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_Duplicate() {
	suite.mockRepo.On("SaveUser", mock.Anything, mock.Anything).
		Return(apperrors.NewAppError(409, "username seller already exists", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.Register(context.Background(), dto.RegisterRequest{Username: "seller", Password: "hunter2hunter2", Name: "Sam"})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestRegister_ShortPassword() {
	_, err := suite.service.Register(context.Background(), dto.RegisterRequest{Username: "seller", Password: "short", Name: "Sam"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *AuthServiceTestSuite) TestLogin() {
	hash, err := utils.HashPassword("hunter2hunter2")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "user-1", Username: "seller", PasswordHash: hash, Name: "Sam"}
	suite.mockRepo.On("FindUserByUsername", mock.Anything, "seller").Return(user, nil)
	suite.mockRepo.On("FindUserByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrNotFound)

	suite.Run("success", func() {
		res, err := suite.service.Login(context.Background(), dto.LoginRequest{Username: "seller", Password: "hunter2hunter2"})
		suite.Require().NoError(err)
		suite.Equal("user-1", res.User.UserID)
		suite.True(res.ExpiresAt.After(time.Now()))

		claims, err := utils.ParseAndValidateJWT(res.AccessToken, suite.cfg.JWTSecret)
		suite.Require().NoError(err)
		suite.Equal("user-1", claims.Subject)
		suite.Equal("test", claims.Issuer)
	})

	suite.Run("wrong password", func() {
		_, err := suite.service.Login(context.Background(), dto.LoginRequest{Username: "seller", Password: "nope-nope"})
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	suite.Run("unknown user", func() {
		_, err := suite.service.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever1"})
		suite.ErrorIs(err, apperrors.ErrUnauthorized)
	})
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
