package services_test

import (
	"testing"

	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/services"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"github.com/shashiranjanraj/nightcap/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExerciseService(t *testing.T, withMetrics bool) (*services.ExerciseService, *gorm.DB, models.Session) {
	t.Helper()
	db := testdb.New(t)
	seedUser(t, db, "runner@example.com", withMetrics)
	sess := seedSession(t, db, "runner@example.com", "Leg day")
	return services.NewExerciseService(db, catalog.Default()), db, sess
}

func TestAddExercise(t *testing.T) {
	svc, _, sess := newExerciseService(t, true)

	// 8 MET × 70 kg × 0.5 h
	exercise, err := svc.Add("runner@example.com", sess.ID, "running", "30")
	require.NoError(t, err)
	assert.Equal(t, "running", exercise.Type)
	assert.Equal(t, 30.0, exercise.Minutes)
	assert.Equal(t, 280, exercise.CaloriesBurned)
}

func TestAddExerciseRequiresMetrics(t *testing.T) {
	svc, _, sess := newExerciseService(t, false)

	_, err := svc.Add("runner@example.com", sess.ID, "running", "30")
	require.Error(t, err)
	assert.True(t, services.IsValidation(err))
	assert.EqualError(t, err, "Metrics not set. Please set metrics before logging exercise.")
}

func TestAddExerciseValidation(t *testing.T) {
	tests := []struct {
		name         string
		exerciseType string
		minutes      string
		wantMsg      string
	}{
		{"unknown type", "parkour", "30", "Invalid exercise type or minutes"},
		{"empty minutes", "running", "", "Invalid exercise type or minutes"},
		{"junk minutes", "running", "thirty", "Invalid format for minutes"},
		{"zero minutes", "running", "0", "Minutes must be a positive number"},
		{"negative minutes", "running", "-10", "Minutes must be a positive number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, sess := newExerciseService(t, true)

			_, err := svc.Add("runner@example.com", sess.ID, tt.exerciseType, tt.minutes)
			require.Error(t, err)
			assert.True(t, services.IsValidation(err))
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}

func TestAddExerciseOwnership(t *testing.T) {
	svc, db, sess := newExerciseService(t, true)
	seedUser(t, db, "other@example.com", true)

	_, err := svc.Add("other@example.com", sess.ID, "running", "30")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpdateExerciseDuration(t *testing.T) {
	svc, _, sess := newExerciseService(t, true)

	exercise, err := svc.Add("runner@example.com", sess.ID, "running", "15")
	require.NoError(t, err)

	up, err := svc.Update("runner@example.com", sess.ID, exercise.ID, "increment")
	require.NoError(t, err)
	assert.Equal(t, 25.0, up.Minutes)
	assert.Equal(t, 233, up.CaloriesBurned) // 8 × 70 × 25/60 = 233.33…
	assert.False(t, up.Removed)

	up, err = svc.Update("runner@example.com", sess.ID, exercise.ID, "decrement")
	require.NoError(t, err)
	assert.Equal(t, 15.0, up.Minutes)

	// 15 − 10 = 5 stays, 5 − 10 goes below zero and removes the row.
	up, err = svc.Update("runner@example.com", sess.ID, exercise.ID, "decrement")
	require.NoError(t, err)
	assert.Equal(t, 5.0, up.Minutes)

	up, err = svc.Update("runner@example.com", sess.ID, exercise.ID, "decrement")
	require.NoError(t, err)
	assert.True(t, up.Removed)
	assert.Equal(t, exercise.ID, up.ID)
}

func TestUpdateExerciseErrors(t *testing.T) {
	svc, _, sess := newExerciseService(t, true)

	exercise, err := svc.Add("runner@example.com", sess.ID, "walking", "30")
	require.NoError(t, err)

	_, err = svc.Update("runner@example.com", sess.ID, exercise.ID, "double")
	assert.True(t, services.IsValidation(err))
	assert.EqualError(t, err, "Invalid action specified")

	_, err = svc.Update("runner@example.com", sess.ID, "no-such-exercise", "increment")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
