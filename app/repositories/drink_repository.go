package repositories

import (
	"github.com/shashiranjanraj/nightcap/app/models"
	"gorm.io/gorm"
)

// DrinkRepository handles database operations for drinks.
type DrinkRepository struct {
	db *gorm.DB
}

func NewDrinkRepository(db *gorm.DB) *DrinkRepository {
	return &DrinkRepository{db: db}
}

// ForSession returns all drinks in a session, ordered by id.
func (r *DrinkRepository) ForSession(sessionID string) ([]models.Drink, error) {
	var drinks []models.Drink
	err := r.db.Where("session_id = ?", sessionID).Order("id").Find(&drinks).Error
	return drinks, err
}

// FindOwned returns the drink only when it sits in the given session and the
// session belongs to the given user.
func (r *DrinkRepository) FindOwned(drinkID, sessionID, userEmail string) (models.Drink, error) {
	var d models.Drink
	err := r.db.
		Joins("JOIN sessions ON sessions.id = drinks.session_id").
		Where("drinks.id = ? AND sessions.id = ? AND sessions.user_email = ?",
			drinkID, sessionID, userEmail).
		First(&d).Error
	return d, err
}

// Create persists a new drink.
func (r *DrinkRepository) Create(d *models.Drink) error {
	return r.db.Create(d).Error
}

// SetCount updates the serving count of a drink.
func (r *DrinkRepository) SetCount(drinkID string, count int) error {
	return r.db.Model(&models.Drink{}).Where("id = ?", drinkID).
		Update("count", count).Error
}

// Delete removes a drink row.
func (r *DrinkRepository) Delete(drinkID string) error {
	return r.db.Delete(&models.Drink{}, "id = ?", drinkID).Error
}

// DeleteForSession removes every drink in a session.
func (r *DrinkRepository) DeleteForSession(sessionID string) error {
	return r.db.Delete(&models.Drink{}, "session_id = ?", sessionID).Error
}

// SumCalories returns Σ(calories × count) over a session's drinks.
func (r *DrinkRepository) SumCalories(sessionID string) (int, error) {
	var total int
	err := r.db.Model(&models.Drink{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(calories * count), 0)").
		Scan(&total).Error
	return total, err
}
