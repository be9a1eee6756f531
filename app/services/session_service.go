package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"gorm.io/gorm"
)

// timestampLayout is the stored ISO-8601 UTC format, seconds precision.
// Lexicographic order equals chronological order, so "ORDER BY date" works
// on the raw strings.
const timestampLayout = "2006-01-02T15:04:05Z"

// SessionService implements tracking-session CRUD and listing.
type SessionService struct {
	db        *gorm.DB
	sessions  *repositories.SessionRepository
	exercises *repositories.ExerciseRepository
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{
		db:        db,
		sessions:  repositories.NewSessionRepository(db),
		exercises: repositories.NewExerciseRepository(db),
	}
}

// Summary is one row of the session list: the cached consumed total plus
// the net after subtracting live-summed exercise burn.
type Summary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	TotalCalories int    `json:"total_calories"`
	NetCalories   int    `json:"net_calories"`
}

// List returns the user's sessions newest-first plus the net-calorie grand
// total across all of them.
func (s *SessionService) List(userEmail string) ([]Summary, int, error) {
	sessions, err := s.sessions.ListForUser(userEmail)
	if err != nil {
		return nil, 0, fmt.Errorf("sessions: list: %w", err)
	}

	summaries := make([]Summary, 0, len(sessions))
	grandNet := 0

	for _, sess := range sessions {
		burned, err := s.exercises.SumBurned(sess.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("sessions: sum burned for %s: %w", sess.ID, err)
		}

		net := sess.TotalCalories - burned
		grandNet += net

		summaries = append(summaries, Summary{
			ID:            sess.ID,
			Name:          sess.Name,
			Date:          sess.Date,
			TotalCalories: sess.TotalCalories,
			NetCalories:   net,
		})
	}

	return summaries, grandNet, nil
}

// Create makes a new tracking session. An empty name defaults to
// "Session - <UTC timestamp>".
func (s *SessionService) Create(userEmail, name string) (models.Session, error) {
	now := time.Now().UTC()
	if name == "" {
		name = "Session - " + now.Format("2006-01-02 15:04")
	}

	sess := models.Session{
		ID:        uuid.New().String(),
		UserEmail: userEmail,
		Name:      name,
		Date:      now.Format(timestampLayout),
	}
	if err := s.sessions.Create(&sess); err != nil {
		return models.Session{}, fmt.Errorf("sessions: create: %w", err)
	}
	return sess, nil
}

// Delete removes a session and everything in it. The cascade to drinks and
// exercises is enforced here, in one transaction — the schema has no
// ON DELETE CASCADE.
func (s *SessionService) Delete(userEmail, sessionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repositories.NewSessionRepository(tx).FindOwned(sessionID, userEmail); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("sessions: ownership check: %w", err)
		}

		if err := repositories.NewDrinkRepository(tx).DeleteForSession(sessionID); err != nil {
			return fmt.Errorf("sessions: delete drinks: %w", err)
		}
		if err := repositories.NewExerciseRepository(tx).DeleteForSession(sessionID); err != nil {
			return fmt.Errorf("sessions: delete exercises: %w", err)
		}
		if err := repositories.NewSessionRepository(tx).Delete(sessionID); err != nil {
			return fmt.Errorf("sessions: delete: %w", err)
		}
		return nil
	})
}
