package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"github.com/shashiranjanraj/nightcap/internal/calorie"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"gorm.io/gorm"
)

// DashboardService assembles the per-session snapshot.
type DashboardService struct {
	db        *gorm.DB
	cat       *catalog.Catalog
	users     *repositories.UserRepository
	sessions  *repositories.SessionRepository
	drinks    *repositories.DrinkRepository
	exercises *repositories.ExerciseRepository
}

func NewDashboardService(db *gorm.DB, cat *catalog.Catalog) *DashboardService {
	return &DashboardService{
		db:        db,
		cat:       cat,
		users:     repositories.NewUserRepository(db),
		sessions:  repositories.NewSessionRepository(db),
		drinks:    repositories.NewDrinkRepository(db),
		exercises: repositories.NewExerciseRepository(db),
	}
}

// Snapshot is the full dashboard state for one session: consumed vs burned
// totals, the row lists, and the exercise-equivalence table telling the user
// how many minutes of each activity would cancel the remaining net calories.
type Snapshot struct {
	SessionName           string            `json:"session_name"`
	TotalCaloriesConsumed int               `json:"total_calories_consumed"`
	TotalCaloriesBurned   int               `json:"total_calories_burned"`
	NetCalories           int               `json:"net_calories"`
	Drinks                []models.Drink    `json:"drinks"`
	LoggedExercises       []models.Exercise `json:"logged_exercises"`
	ExerciseTimes         map[string]int    `json:"exercise_times"`
}

// Snapshot builds the dashboard for the given session. The burned total is
// always summed live from the exercise rows; only the consumed total is a
// cache. The equivalence table is computed over max(net, 0) — once the user
// has burned past their intake, every activity reads zero.
func (s *DashboardService) Snapshot(userEmail, sessionID string) (Snapshot, error) {
	sess, err := s.sessions.FindOwned(sessionID, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("dashboard: ownership check: %w", err)
	}

	user, err := s.users.FindByEmail(userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Snapshot{}, ErrNotFound
		}
		return Snapshot{}, fmt.Errorf("dashboard: lookup user: %w", err)
	}
	metrics, err := user.BodyMetrics()
	if err != nil {
		if errors.Is(err, models.ErrMetricsUnset) {
			return Snapshot{}, Validationf("Metrics not set")
		}
		return Snapshot{}, fmt.Errorf("dashboard: decode metrics: %w", err)
	}

	drinks, err := s.drinks.ForSession(sessionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dashboard: list drinks: %w", err)
	}
	exercises, err := s.exercises.ForSession(sessionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dashboard: list exercises: %w", err)
	}
	burned, err := s.exercises.SumBurned(sessionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("dashboard: sum burned: %w", err)
	}

	net := sess.TotalCalories - burned
	remaining := net
	if remaining < 0 {
		remaining = 0
	}

	times := make(map[string]int, len(s.cat.METs))
	for exerciseType, met := range s.cat.METs {
		times[exerciseType] = calorie.EquivalentMinutes(remaining, met, metrics.WeightKg)
	}

	return Snapshot{
		SessionName:           sess.Name,
		TotalCaloriesConsumed: sess.TotalCalories,
		TotalCaloriesBurned:   burned,
		NetCalories:           net,
		Drinks:                drinks,
		LoggedExercises:       exercises,
		ExerciseTimes:         times,
	}, nil
}
