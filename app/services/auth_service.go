package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"gorm.io/gorm"
)

// AuthService implements registration, login, and user-profile operations.
type AuthService struct {
	db       *gorm.DB
	users    *repositories.UserRepository
	sessions *repositories.SessionRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:       db,
		users:    repositories.NewUserRepository(db),
		sessions: repositories.NewSessionRepository(db),
	}
}

// Register creates a new user with a bcrypt-hashed password and returns a
// token for the auto-login. Returns ErrEmailTaken on duplicate email.
func (s *AuthService) Register(email, password string) (string, error) {
	_, err := s.users.FindByEmail(email)
	switch {
	case err == nil:
		return "", ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return "", fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: hash,
	}
	if err := s.users.Create(&user); err != nil {
		return "", fmt.Errorf("auth: create user: %w", err)
	}

	return auth.GenerateToken(email, false)
}

// Login verifies credentials and returns a token plus the user's most
// recently dated tracking session (empty when they have none).
// Returns ErrInvalidCredentials on any mismatch.
func (s *AuthService) Login(email, password string, remember bool) (token, currentSessionID string, err error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", "", ErrInvalidCredentials
	}

	if latest, err := s.sessions.LatestForUser(email); err == nil {
		currentSessionID = latest.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", fmt.Errorf("auth: latest session: %w", err)
	}

	token, err = auth.GenerateToken(email, remember)
	return token, currentSessionID, err
}

// SetMetrics persists the user's body metrics blob.
func (s *AuthService) SetMetrics(email string, m models.BodyMetrics) error {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	if err := user.SetBodyMetrics(m); err != nil {
		return fmt.Errorf("auth: encode metrics: %w", err)
	}
	if err := s.users.Update(&user); err != nil {
		return fmt.Errorf("auth: save metrics: %w", err)
	}
	return nil
}

// Status describes the logged-in user for the status endpoint.
type Status struct {
	Username         string
	MetricsSet       bool
	CurrentSessionID string
}

// Status resolves the caller's display state. currentSessionID is the
// pointer already held in the auth session; when it is empty the most
// recently dated tracking session is resolved lazily from the store.
func (s *AuthService) Status(email, currentSessionID string) (Status, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Status{}, ErrNotFound
		}
		return Status{}, fmt.Errorf("auth: lookup %s: %w", email, err)
	}

	if currentSessionID == "" {
		if latest, err := s.sessions.LatestForUser(email); err == nil {
			currentSessionID = latest.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Status{}, fmt.Errorf("auth: latest session: %w", err)
		}
	}

	return Status{
		Username:         strings.SplitN(email, "@", 2)[0],
		MetricsSet:       user.MetricsSet(),
		CurrentSessionID: currentSessionID,
	}, nil
}
