package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"github.com/shashiranjanraj/nightcap/internal/calorie"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"gorm.io/gorm"
)

// minutesStep is how much one increment/decrement changes an exercise's
// duration.
const minutesStep = 10

// ExerciseService logs exercise entries and adjusts their duration. Every
// calorie figure is derived from the user's current body weight at the time
// of the write, never stored formulas.
type ExerciseService struct {
	db        *gorm.DB
	cat       *catalog.Catalog
	users     *repositories.UserRepository
	sessions  *repositories.SessionRepository
	exercises *repositories.ExerciseRepository
}

func NewExerciseService(db *gorm.DB, cat *catalog.Catalog) *ExerciseService {
	return &ExerciseService{
		db:        db,
		cat:       cat,
		users:     repositories.NewUserRepository(db),
		sessions:  repositories.NewSessionRepository(db),
		exercises: repositories.NewExerciseRepository(db),
	}
}

// weightFor loads the caller's body weight, failing with a validation error
// when metrics were never set.
func (s *ExerciseService) weightFor(userEmail string) (float64, error) {
	user, err := s.users.FindByEmail(userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("exercises: lookup user: %w", err)
	}

	m, err := user.BodyMetrics()
	if err != nil {
		if errors.Is(err, models.ErrMetricsUnset) {
			return 0, Validationf("Metrics not set. Please set metrics before logging exercise.")
		}
		return 0, fmt.Errorf("exercises: decode metrics: %w", err)
	}
	return m.WeightKg, nil
}

// Add logs an exercise entry. The exercise type must be a known MET key and
// minutes must parse to a positive number; the burned-calorie figure comes
// from the MET formula against the user's current weight.
func (s *ExerciseService) Add(userEmail, sessionID, exerciseType, rawMinutes string) (models.Exercise, error) {
	if _, err := s.sessions.FindOwned(sessionID, userEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Exercise{}, ErrNotFound
		}
		return models.Exercise{}, fmt.Errorf("exercises: ownership check: %w", err)
	}

	weightKg, err := s.weightFor(userEmail)
	if err != nil {
		return models.Exercise{}, err
	}

	met, ok := s.cat.MET(exerciseType)
	rawMinutes = strings.TrimSpace(rawMinutes)
	if !ok || rawMinutes == "" {
		return models.Exercise{}, Validationf("Invalid exercise type or minutes")
	}

	minutes, err := strconv.ParseFloat(rawMinutes, 64)
	if err != nil {
		return models.Exercise{}, Validationf("Invalid format for minutes")
	}
	if minutes <= 0 {
		return models.Exercise{}, Validationf("Minutes must be a positive number")
	}

	exercise := models.Exercise{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		Type:           exerciseType,
		Minutes:        minutes,
		CaloriesBurned: calorie.Burned(met, weightKg, minutes),
	}
	if err := s.exercises.Create(&exercise); err != nil {
		return models.Exercise{}, fmt.Errorf("exercises: create: %w", err)
	}
	return exercise, nil
}

// ExerciseUpdate reports the outcome of a duration adjustment.
type ExerciseUpdate struct {
	ID             string
	Minutes        float64
	CaloriesBurned int
	Removed        bool
}

// Update shifts the exercise's duration by one step in either direction and
// re-derives the burn from the user's current weight. Dropping to zero or
// below deletes the entry.
func (s *ExerciseService) Update(userEmail, sessionID, exerciseID, action string) (ExerciseUpdate, error) {
	exercise, err := s.exercises.FindOwned(exerciseID, sessionID, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ExerciseUpdate{}, ErrNotFound
		}
		return ExerciseUpdate{}, fmt.Errorf("exercises: lookup: %w", err)
	}

	var minutes float64
	switch action {
	case "increment":
		minutes = exercise.Minutes + minutesStep
	case "decrement":
		minutes = exercise.Minutes - minutesStep
	default:
		return ExerciseUpdate{}, Validationf("Invalid action specified")
	}

	result := ExerciseUpdate{ID: exerciseID}

	if minutes <= 0 {
		if err := s.exercises.Delete(exerciseID); err != nil {
			return ExerciseUpdate{}, fmt.Errorf("exercises: delete: %w", err)
		}
		result.Removed = true
		return result, nil
	}

	weightKg, err := s.weightFor(userEmail)
	if err != nil {
		return ExerciseUpdate{}, err
	}
	met, ok := s.cat.MET(exercise.Type)
	if !ok {
		return ExerciseUpdate{}, Validationf("Invalid exercise type or minutes")
	}

	result.Minutes = minutes
	result.CaloriesBurned = calorie.Burned(met, weightKg, minutes)

	if err := s.exercises.SetDuration(exerciseID, minutes, result.CaloriesBurned); err != nil {
		return ExerciseUpdate{}, fmt.Errorf("exercises: set duration: %w", err)
	}
	return result, nil
}
