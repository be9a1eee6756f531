package repositories

import (
	"github.com/shashiranjanraj/nightcap/app/models"
	"gorm.io/gorm"
)

// ExerciseRepository handles database operations for exercises.
type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// ForSession returns all exercises in a session, ordered by type.
func (r *ExerciseRepository) ForSession(sessionID string) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("session_id = ?", sessionID).Order("type").Find(&exercises).Error
	return exercises, err
}

// FindOwned returns the exercise only when it sits in the given session and
// the session belongs to the given user.
func (r *ExerciseRepository) FindOwned(exerciseID, sessionID, userEmail string) (models.Exercise, error) {
	var e models.Exercise
	err := r.db.
		Joins("JOIN sessions ON sessions.id = exercises.session_id").
		Where("exercises.id = ? AND sessions.id = ? AND sessions.user_email = ?",
			exerciseID, sessionID, userEmail).
		First(&e).Error
	return e, err
}

// Create persists a new exercise.
func (r *ExerciseRepository) Create(e *models.Exercise) error {
	return r.db.Create(e).Error
}

// SetDuration updates minutes and the derived calories burned together.
func (r *ExerciseRepository) SetDuration(exerciseID string, minutes float64, caloriesBurned int) error {
	return r.db.Model(&models.Exercise{}).Where("id = ?", exerciseID).
		Updates(map[string]interface{}{
			"minutes":         minutes,
			"calories_burned": caloriesBurned,
		}).Error
}

// Delete removes an exercise row.
func (r *ExerciseRepository) Delete(exerciseID string) error {
	return r.db.Delete(&models.Exercise{}, "id = ?", exerciseID).Error
}

// DeleteForSession removes every exercise in a session.
func (r *ExerciseRepository) DeleteForSession(sessionID string) error {
	return r.db.Delete(&models.Exercise{}, "session_id = ?", sessionID).Error
}

// SumBurned returns the live total of calories burned in a session.
// Never cached: exercise rows are few and dashboard reads are infrequent.
func (r *ExerciseRepository) SumBurned(sessionID string) (int, error) {
	var total int
	err := r.db.Model(&models.Exercise{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(calories_burned), 0)").
		Scan(&total).Error
	return total, err
}
