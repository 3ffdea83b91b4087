package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance_tracker/internal/models"
	"finance_tracker/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = time.Hour // 1 hour

// Domain errors for auth flows.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// RegisterParams is the input for creating a new account.
type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	ProfilePicture *string // stored filename, already persisted by the caller
}

// LoginResult carries the minted token together with the matched user.
type LoginResult struct {
	Token string
	User  *models.User
}

// AuthService handles registration, login and token handling.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// Register hashes the password and creates a new user.
// Emails are unique: a second registration with a known email fails with ErrEmailTaken.
func (s *AuthService) Register(p RegisterParams) (int64, error) {
	existing, err := s.users.GetByEmail(p.Email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := hashPassword(p.Password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.users.Create(p.Name, p.Email, hash, p.ProfilePicture)
}

// Login validates credentials and returns a signed token with the user row.
// ErrUserNotFound and ErrInvalidPassword are distinct for logging; callers
// surface both as a single generic invalid-credentials response.
func (s *AuthService) Login(email, password string) (LoginResult, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		return LoginResult{}, err
	}
	if u == nil {
		return LoginResult{}, ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidPassword
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, User: u}, nil
}

// Profile fetches a user by id. Returns ErrUserNotFound for unknown ids.
func (s *AuthService) Profile(id int64) (*models.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// ParseToken parses JWT and returns the owning userID
func (s *AuthService) ParseToken(accessToken string) (int64, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
