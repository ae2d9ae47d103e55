package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"medwear/internal/models"
	"medwear/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// AuthService handles registration, login, JWT issuance and the
// password-reset lifecycle.
type AuthService struct {
	userRepo     repositories.UserRepository
	wishlistRepo repositories.WishlistRepository
	jwtSecret    []byte
	tokenDurat   time.Duration
}

// NewAuthService creates a new AuthService. wishlistRepo may be nil; when set,
// registration seeds the default wishlist.
func NewAuthService(userRepo repositories.UserRepository, wishlistRepo repositories.WishlistRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenDurat:   24 * time.Hour,
	}
}

// RegisterUser creates a customer account. The role is always forced to
// customer here; clients cannot register themselves as staff, and the raw
// password never reaches the repository.
func (s *AuthService) RegisterUser(fullName, email, password string) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("email '%s' already registered: %w", email, repositories.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	if s.wishlistRepo != nil {
		wl := &models.Wishlist{UserID: user.ID, Name: "My Wishlist"}
		if err := s.wishlistRepo.Create(wl); err != nil {
			// Not fatal: the account exists, the list can be created later.
			log.Printf("Warning: failed to seed default wishlist for user %s: %v", user.ID, err)
		}
	}
	return user, nil
}

// LoginUser authenticates by email and returns a signed JWT.
func (s *AuthService) LoginUser(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		// Do not reveal whether the email exists.
		return "", nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenDurat).Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, user, nil
}

// ValidateToken parses and validates a JWT, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// GetUser returns a user by id.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ListCustomers returns a page of accounts for the admin console.
func (s *AuthService) ListCustomers(offset, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.userRepo.List(offset, limit)
}

// UpdateProfile changes the user's name and email.
func (s *AuthService) UpdateProfile(userID, fullName, email string) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.FullName = fullName
	user.Email = email
	user.UpdatedAt = time.Now()
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetRole changes an account's role. Only admin callers reach this.
func (s *AuthService) SetRole(userID, role string) error {
	switch role {
	case models.RoleCustomer, models.RoleAdmin, models.RoleSuperAdmin, models.RoleManager:
	default:
		return fmt.Errorf("invalid role: %s", role)
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(user)
}

// RequestPasswordReset generates a reset token for the account, stores only
// its SHA-256 hash, and returns the raw token for out-of-band delivery.
func (s *AuthService) RequestPasswordReset(email string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.userRepo.CreateResetToken(token); err != nil {
		return "", err
	}
	return rawToken, nil
}

// ResetPassword redeems a reset token. Exactly one redemption is permitted:
// the token is marked used and the password replaced in one transaction.
func (s *AuthService) ResetPassword(rawToken, newPassword string) error {
	token, err := s.userRepo.GetResetTokenByHash(hashToken(rawToken))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTokenInvalid
		}
		return err
	}
	if token.UsedAt != nil {
		return ErrTokenAlreadyUsed
	}
	if time.Now().After(token.ExpiresAt) {
		return ErrTokenExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.RedeemResetToken(token.ID, token.UserID, string(hashed), time.Now()); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// Lost the race with a concurrent redemption.
			return ErrTokenAlreadyUsed
		}
		return err
	}
	return nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
