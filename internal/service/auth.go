package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recipedex/backend/internal/models"
	"github.com/recipedex/backend/internal/session"
	"github.com/recipedex/backend/internal/validation"
)

// ErrInvalidCredentials is returned when no user matches a login attempt
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles registration and login
type AuthService struct {
	db       *gorm.DB
	sessions *session.Store
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, sessions *session.Store) *AuthService {
	return &AuthService{db: db, sessions: sessions}
}

// Register validates the payload and creates the account. Registration does
// not auto-login: the token column stays unset until the first login.
// A non-empty Errors return means validation failed and no user was created.
func (s *AuthService) Register(ctx context.Context, in validation.RegisterInput) (validation.Errors, error) {
	db := s.db.WithContext(ctx)

	if errs := validation.ValidateRegistration(db, in); !errs.Empty() {
		return errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		PasswordHash: string(hash),
		Email:        in.Email,
		IsActive:     true,
	}
	if in.Username != "" {
		user.Username = &in.Username
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}

	return nil, nil
}

// LoginResult carries the freshly issued token and the usernames of every
// matched account
type LoginResult struct {
	Token     string
	Usernames []string
}

// Login matches credentials and rotates the token on every matched row.
// Username carries a unique index so the matched set normally has one
// element, but the bulk shape of the legacy contract is kept: all matches
// share the new token and all their usernames come back in the response.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).Find(&users).Error; err != nil {
		return nil, err
	}

	var (
		matchedIDs []uint
		usernames  []string
	)
	for i := range users {
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) == nil {
			matchedIDs = append(matchedIDs, users[i].ID)
			usernames = append(usernames, users[i].UsernameOrEmpty())
		}
	}

	if len(matchedIDs) == 0 {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, matchedIDs)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Usernames: usernames}, nil
}
