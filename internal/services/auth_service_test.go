package services_test

import (
	"fmt"
	"testing"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"
	"medwear/internal/services"

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

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) List(offset, limit int) ([]models.User, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) CreateResetToken(token *models.PasswordResetToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockUserRepository) GetResetTokenByHash(hash string) (*models.PasswordResetToken, error) {
	args := m.Called(hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PasswordResetToken), args.Error(1)
}

func (m *MockUserRepository) RedeemResetToken(tokenID, userID, newPasswordHash string, usedAt time.Time) error {
	args := m.Called(tokenID, userID, newPasswordHash, usedAt)
	return args.Error(0)
}

func (m *MockUserRepository) ListAddresses(userID string) ([]models.Address, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Address), args.Error(1)
}

func (m *MockUserRepository) GetAddress(id string) (*models.Address, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockUserRepository) CreateAddress(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAddress(address *models.Address) error {
	args := m.Called(address)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteAddress(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) SetDefaultAddress(userID, addressID string) error {
	args := m.Called(userID, addressID)
	return args.Error(0)
}

// MockWishlistRepository is a mock implementation of repositories.WishlistRepository
type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) Create(wishlist *models.Wishlist) error {
	args := m.Called(wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) GetByID(id string) (*models.Wishlist, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) ListByUser(userID string) ([]models.Wishlist, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Wishlist), args.Error(1)
}

func (m *MockWishlistRepository) Update(wishlist *models.Wishlist) error {
	args := m.Called(wishlist)
	return args.Error(0)
}

func (m *MockWishlistRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWishlistRepository) AddItem(item *models.WishlistItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockWishlistRepository) RemoveItem(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockWishlists := new(MockWishlistRepository)
	authService := services.NewAuthService(mockRepo, mockWishlists, "test_jwt_secret")

	// Test successful registration: the role is forced to customer, the
	// password is stored hashed, and the default wishlist is seeded.
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.User).ID = "user-123"
	}).Return(nil).Once()
	mockWishlists.On("Create", mock.AnythingOfType("*models.Wishlist")).Return(nil).Once()

	user, err := authService.RegisterUser("Dana Reyes", "dana@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	mockRepo.AssertExpectations(t)
	mockWishlists.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(fmt.Errorf("create user: %w", repositories.ErrDuplicate)).Once()
	_, err = authService.RegisterUser("Dana Reyes", "dana@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:           "user-123",
		FullName:     "Dana Reyes",
		Email:        "dana@example.com",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleCustomer,
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, loggedIn, err := authService.LoginUser("dana@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	// Validate the token structure
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, user.ID, claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (wrong password)
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, _, err = authService.LoginUser("dana@example.com", "wrongpassword")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)

	// Test invalid credentials (unknown email). The error message must not
	// reveal whether the account exists.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.LoginUser("nobody@example.com", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, nil, testJWTSecret)

	// Test valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"email":   "dana@example.com",
		"role":    models.RoleCustomer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	claims, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims["user_id"])
	assert.Equal(t, models.RoleCustomer, claims["role"])

	// Test garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestAuthService_RequestPasswordReset(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, "test_jwt_secret")

	user := &models.User{ID: "user-123", Email: "dana@example.com"}
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()

	var stored *models.PasswordResetToken
	mockRepo.On("CreateResetToken", mock.AnythingOfType("*models.PasswordResetToken")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.PasswordResetToken)
		}).Return(nil).Once()

	rawToken, err := authService.RequestPasswordReset(user.Email)
	assert.NoError(t, err)
	assert.Len(t, rawToken, 64) // 32 random bytes, hex encoded
	assert.NotNil(t, stored)
	// Only the hash of the token ever reaches storage.
	assert.NotEqual(t, rawToken, stored.TokenHash)
	assert.True(t, stored.ExpiresAt.After(time.Now()))
	assert.True(t, stored.Redeemable(time.Now()))
	mockRepo.AssertExpectations(t)

	// Unknown email propagates not-found; the handler hides it from clients.
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, err = authService.RequestPasswordReset("nobody@example.com")
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, "test_jwt_secret")

	user := &models.User{ID: "user-123", Email: "dana@example.com"}

	// Capture the stored hash by running a real request first.
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	var stored *models.PasswordResetToken
	mockRepo.On("CreateResetToken", mock.AnythingOfType("*models.PasswordResetToken")).
		Run(func(args mock.Arguments) {
			stored = args.Get(0).(*models.PasswordResetToken)
			stored.ID = "token-1"
		}).Return(nil).Once()
	rawToken, err := authService.RequestPasswordReset(user.Email)
	assert.NoError(t, err)

	// Test successful redemption
	mockRepo.On("GetResetTokenByHash", stored.TokenHash).Return(stored, nil).Once()
	mockRepo.On("RedeemResetToken", "token-1", "user-123", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	err = authService.ResetPassword(rawToken, "newpassword456")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Test second redemption of the same token
	usedAt := time.Now()
	used := *stored
	used.UsedAt = &usedAt
	mockRepo.On("GetResetTokenByHash", stored.TokenHash).Return(&used, nil).Once()
	err = authService.ResetPassword(rawToken, "anotherpassword")
	assert.ErrorIs(t, err, services.ErrTokenAlreadyUsed)
	mockRepo.AssertExpectations(t)

	// Test expired token
	expired := *stored
	expired.UsedAt = nil
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	mockRepo.On("GetResetTokenByHash", stored.TokenHash).Return(&expired, nil).Once()
	err = authService.ResetPassword(rawToken, "anotherpassword")
	assert.ErrorIs(t, err, services.ErrTokenExpired)
	mockRepo.AssertExpectations(t)

	// Test unknown token
	mockRepo.On("GetResetTokenByHash", mock.AnythingOfType("string")).Return(nil, repositories.ErrNotFound).Once()
	err = authService.ResetPassword("deadbeef", "anotherpassword")
	assert.ErrorIs(t, err, services.ErrTokenInvalid)
	mockRepo.AssertExpectations(t)

	// Test losing the redemption race: the conditional update finds the token
	// already used and the service reports it as such.
	fresh := *stored
	fresh.UsedAt = nil
	fresh.ExpiresAt = time.Now().Add(time.Hour)
	mockRepo.On("GetResetTokenByHash", stored.TokenHash).Return(&fresh, nil).Once()
	mockRepo.On("RedeemResetToken", "token-1", "user-123", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(repositories.ErrNotFound).Once()
	err = authService.ResetPassword(rawToken, "anotherpassword")
	assert.ErrorIs(t, err, services.ErrTokenAlreadyUsed)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_SetRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, nil, "test_jwt_secret")

	// Test invalid role rejected before any repository call
	err := authService.SetRole("user-123", "overlord")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid role")

	// Test successful role change
	user := &models.User{ID: "user-123", Role: models.RoleCustomer}
	mockRepo.On("GetByID", "user-123").Return(user, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err = authService.SetRole("user-123", models.RoleManager)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
	mockRepo.AssertExpectations(t)
}
