package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedUser inserts a user directly; the stored password is a junk hash
// because only the auth tests exercise credentials.
func seedUser(t *testing.T, db *gorm.DB, email string, withMetrics bool) models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New().String(),
		Email:    email,
		Password: "$2a$10$not.a.real.hash",
	}
	if withMetrics {
		require.NoError(t, user.SetBodyMetrics(models.BodyMetrics{
			Age: 30, HeightCm: 180, WeightKg: 70, Sex: "m",
		}))
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedSession(t *testing.T, db *gorm.DB, email, name string) models.Session {
	t.Helper()

	sess := models.Session{
		ID:        uuid.New().String(),
		UserEmail: email,
		Name:      name,
		Date:      time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	}
	require.NoError(t, db.Create(&sess).Error)
	return sess
}

func sessionTotal(t *testing.T, db *gorm.DB, sessionID string) int {
	t.Helper()

	var sess models.Session
	require.NoError(t, db.First(&sess, "id = ?", sessionID).Error)
	return sess.TotalCalories
}
