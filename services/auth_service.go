package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService registers users and issues the tokens that identify them
type AuthService struct {
	users     *repositories.UserRepository
	secretKey string
	ttl       time.Duration
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *repositories.UserRepository, secretKey string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{users: users, secretKey: secretKey, ttl: ttl}
}

// Register creates a new user account
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, error) {
	// Check if email already exists
	exists, err := s.users.ExistsByEmail(dto.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, utils.NewValidationError("email", "email already registered")
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := req.ToUser(string(hashedPassword))

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUser retrieves a user by ID
func (s *AuthService) GetUser(id string) (*models.User, error) {
	if err := utils.CheckID("user", id); err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, utils.TranslateNotFound(err, "user", id)
	}
	return &user, nil
}

// ErrInvalidCredentials is returned for an unknown email or wrong password
var ErrInvalidCredentials = errors.New("invalid email or password")

// Login authenticates a user and returns a token
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(dto.NormalizeEmail(req.Email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken signs an HS256 token for user
func (s *AuthService) GenerateToken(user models.User) (string, time.Time, error) {
	if s.secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	claims := dto.NewTokenClaims(user, time.Now(), s.ttl)
	expiresAt := claims.ExpiresAt.Time

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func (s *AuthService) ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	if s.secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
