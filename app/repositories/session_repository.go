package repositories

import (
	"github.com/shashiranjanraj/nightcap/app/models"
	"gorm.io/gorm"
)

// SessionRepository handles database operations for tracking sessions.
type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// FindOwned returns the session only when it belongs to the given user.
func (r *SessionRepository) FindOwned(id, userEmail string) (models.Session, error) {
	var s models.Session
	err := r.db.Where("id = ? AND user_email = ?", id, userEmail).First(&s).Error
	return s, err
}

// ListForUser returns all of a user's sessions, newest first.
func (r *SessionRepository) ListForUser(userEmail string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("user_email = ?", userEmail).Order("date DESC").Find(&sessions).Error
	return sessions, err
}

// LatestForUser returns the most recently dated session for a user.
// Returns gorm.ErrRecordNotFound when the user has none.
func (r *SessionRepository) LatestForUser(userEmail string) (models.Session, error) {
	var s models.Session
	err := r.db.Where("user_email = ?", userEmail).Order("date DESC").First(&s).Error
	return s, err
}

// Create persists a new session.
func (r *SessionRepository) Create(s *models.Session) error {
	return r.db.Create(s).Error
}

// Delete removes the session row. Cascading to drinks and exercises is the
// session service's job, not the store's.
func (r *SessionRepository) Delete(id string) error {
	return r.db.Delete(&models.Session{}, "id = ?", id).Error
}

// SetTotal writes the recomputed consumed-calorie aggregate.
func (r *SessionRepository) SetTotal(id string, total int) error {
	return r.db.Model(&models.Session{}).Where("id = ?", id).
		Update("total_calories", total).Error
}
