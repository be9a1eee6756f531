package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSnapshot(t *testing.T) {
	db := testdb.New(t)
	seedUser(t, db, "user@example.com", true) // 70 kg
	sess := seedSession(t, db, "user@example.com", "Saturday")
	svc := services.NewDashboardService(db, catalog.Default())

	require.NoError(t, db.Create(&models.Drink{
		ID: uuid.New().String(), SessionID: sess.ID,
		Name: "Standard Beer (12.0oz, 5.0%)", Calories: 118, ABV: 5, VolumeOz: 12, Count: 2,
	}).Error)
	require.NoError(t, db.Model(&models.Session{}).Where("id = ?", sess.ID).
		Update("total_calories", 236).Error)

	require.NoError(t, db.Create(&models.Exercise{
		ID: uuid.New().String(), SessionID: sess.ID,
		Type: "walking", Minutes: 20, CaloriesBurned: 82,
	}).Error)

	snap, err := svc.Snapshot("user@example.com", sess.ID)
	require.NoError(t, err)

	assert.Equal(t, "Saturday", snap.SessionName)
	assert.Equal(t, 236, snap.TotalCaloriesConsumed)
	assert.Equal(t, 82, snap.TotalCaloriesBurned)
	assert.Equal(t, 154, snap.NetCalories)
	require.Len(t, snap.Drinks, 1)
	require.Len(t, snap.LoggedExercises, 1)

	// One equivalence entry per catalog exercise, computed over the net.
	require.Len(t, snap.ExerciseTimes, 5)
	assert.Equal(t, 16, snap.ExerciseTimes["running"]) // 154×60/(8×70) = 16.5, rounds half-to-even
	assert.Equal(t, 38, snap.ExerciseTimes["walking"]) // 154×60/(3.5×70) = 37.7…
}

func TestDashboardEquivalenceZeroWhenOverBurned(t *testing.T) {
	db := testdb.New(t)
	seedUser(t, db, "user@example.com", true)
	sess := seedSession(t, db, "user@example.com", "Gym day")
	svc := services.NewDashboardService(db, catalog.Default())

	require.NoError(t, db.Create(&models.Exercise{
		ID: uuid.New().String(), SessionID: sess.ID,
		Type: "running", Minutes: 60, CaloriesBurned: 560,
	}).Error)

	snap, err := svc.Snapshot("user@example.com", sess.ID)
	require.NoError(t, err)

	assert.Equal(t, -560, snap.NetCalories)
	for exerciseType, minutes := range snap.ExerciseTimes {
		assert.Zero(t, minutes, "expected zero minutes for %s", exerciseType)
	}
}

func TestDashboardRequiresMetrics(t *testing.T) {
	db := testdb.New(t)
	seedUser(t, db, "user@example.com", false)
	sess := seedSession(t, db, "user@example.com", "No metrics")
	svc := services.NewDashboardService(db, catalog.Default())

	_, err := svc.Snapshot("user@example.com", sess.ID)
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
	assert.EqualError(t, err, "Metrics not set")
}

func TestDashboardOwnership(t *testing.T) {
	db := testdb.New(t)
	seedUser(t, db, "owner@example.com", true)
	seedUser(t, db, "other@example.com", true)
	sess := seedSession(t, db, "owner@example.com", "Private")
	svc := services.NewDashboardService(db, catalog.Default())

	_, err := svc.Snapshot("other@example.com", sess.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
