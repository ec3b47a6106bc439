package services_test

import (
	"fmt"
	"testing"
	"time"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	// Successful registration: password is stored hashed, never verbatim.
	mockRepo.On("GetByEmail", "test@example.com").
		Return(nil, fmt.Errorf("user with email test@example.com: %w", repositories.ErrNotFound)).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 1
		}).Return(nil).Once()

	user, err := authService.Register("test@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "test@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	mockRepo.AssertExpectations(t)

	// Email already registered.
	mockRepo.On("GetByEmail", "test@example.com").
		Return(&models.User{ID: 1, Email: "test@example.com"}, nil).Once()
	_, err = authService.Register("test@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// A store failure during the pre-check is not a conflict.
	mockRepo.On("GetByEmail", "broken@example.com").
		Return(nil, fmt.Errorf("database error")).Once()
	_, err = authService.Register("broken@example.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       42,
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Successful login issues a token carrying the user ID.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(42), claims["id"])
	assert.Contains(t, claims, "exp")
	mockRepo.AssertExpectations(t)

	// Wrong password.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, err = authService.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)

	// Unknown email returns the same error as a wrong password.
	mockRepo.On("GetByEmail", "nobody@example.com").
		Return(nil, fmt.Errorf("user with email nobody@example.com: %w", repositories.ErrNotFound)).Once()
	_, err = authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	makeToken := func(secret string, expiresIn time.Duration) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"id":  7,
			"exp": time.Now().Add(expiresIn).Unix(),
			"iat": time.Now().Unix(),
		})
		signed, err := token.SignedString([]byte(secret))
		assert.NoError(t, err)
		return signed
	}

	// Valid token resolves to the embedded user ID.
	id, err := authService.ValidateToken(makeToken(testJWTSecret, time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, uint(7), id)

	// Garbage is rejected.
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Wrong signing secret is rejected.
	_, err = authService.ValidateToken(makeToken("some_other_secret", time.Hour))
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired token is rejected.
	_, err = authService.ValidateToken(makeToken(testJWTSecret, -time.Hour))
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
