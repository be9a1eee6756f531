package seeders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo creates a demo account with one tracking session holding a couple
// of drinks and an exercise, for local development. Idempotent: skips when
// the demo user already exists.
func SeedDemo(db *gorm.DB) error {
	const email = "demo@nightcap.local"

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	user := models.User{ID: uuid.New().String(), Email: email, Password: hash}
	if err := user.SetBodyMetrics(models.BodyMetrics{Age: 30, HeightCm: 178, WeightKg: 75, Sex: "m"}); err != nil {
		return err
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	sess := models.Session{
		ID:        uuid.New().String(),
		UserEmail: email,
		Name:      "Friday Night",
		Date:      time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
	if err := db.Create(&sess).Error; err != nil {
		return err
	}

	drinks := []models.Drink{
		{ID: uuid.New().String(), SessionID: sess.ID, Name: "Standard Beer (12.0oz, 5.0%)", Calories: 118, ABV: 5.0, VolumeOz: 12.0, Count: 2},
		{ID: uuid.New().String(), SessionID: sess.ID, Name: "Gin & Tonic (1 shots, 40.0% ABV Base)", Calories: 150, ABV: 40.0, VolumeOz: 1.5, Count: 1},
	}
	total := 0
	for _, d := range drinks {
		if err := db.Create(&d).Error; err != nil {
			return err
		}
		total += d.Calories * d.Count
	}

	exercise := models.Exercise{
		ID:             uuid.New().String(),
		SessionID:      sess.ID,
		Type:           "walking",
		Minutes:        30,
		CaloriesBurned: 131,
	}
	if err := db.Create(&exercise).Error; err != nil {
		return err
	}

	return db.Model(&models.Session{}).Where("id = ?", sess.ID).
		Update("total_calories", total).Error
}
