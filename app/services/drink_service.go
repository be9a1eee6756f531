package services

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"github.com/shashiranjanraj/nightcap/internal/calorie"
	"github.com/shashiranjanraj/nightcap/internal/catalog"
	"gorm.io/gorm"
)

// Per-serving calorie policy. Beer, wine, and IPA use the alcohol formula on
// the effective ABV/volume; the shot and mixed-drink families use a flat
// baseline instead. On top of that, each type carries a fixed empirical
// offset for mixers and residual sugars.
const flatServingCalories = 100

var calorieOffsets = map[string]int{
	catalog.DrinkMixed: 50,
	catalog.DrinkBeer:  20,
	catalog.DrinkWine:  30,
	catalog.DrinkIPA:   75,
}

// trailingParen strips a trailing "(...)" marker from a preset display name.
var trailingParen = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// DrinkService implements the add-drink construction policy and the drink
// count state machine.
type DrinkService struct {
	db       *gorm.DB
	cat      *catalog.Catalog
	sessions *repositories.SessionRepository
	drinks   *repositories.DrinkRepository
}

func NewDrinkService(db *gorm.DB, cat *catalog.Catalog) *DrinkService {
	return &DrinkService{
		db:       db,
		cat:      cat,
		sessions: repositories.NewSessionRepository(db),
		drinks:   repositories.NewDrinkRepository(db),
	}
}

// AddDrinkInput carries the raw form fields of the add-drink request.
type AddDrinkInput struct {
	DrinkType    string
	CustomName   string
	CustomABV    string
	LiquidOunces string
}

// Add resolves the effective ABV, volume, serving count, and per-serving
// calories for the requested drink type, inserts the drink, and recomputes
// the session's cached total in the same transaction.
func (s *DrinkService) Add(userEmail, sessionID string, in AddDrinkInput) (models.Drink, error) {
	if _, err := s.sessions.FindOwned(sessionID, userEmail); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Drink{}, ErrNotFound
		}
		return models.Drink{}, fmt.Errorf("drinks: ownership check: %w", err)
	}

	preset, ok := s.cat.Preset(in.DrinkType)
	if !ok {
		return models.Drink{}, Validationf("Invalid drink type")
	}

	abv := preset.ABV
	volumeOz := preset.VolumeOz
	count := 1
	isMixed := in.DrinkType == catalog.DrinkMixed || in.DrinkType == catalog.DrinkMixedDiet

	var baseName, nameDetails string

	if isMixed {
		// Mixed drinks are pinned to the base-spirit preset; the caller
		// supplies a shot count instead of a volume. Empty or sub-1 input
		// silently falls back to one serving — a documented policy.
		n, err := parseShotCount(in.LiquidOunces)
		if err != nil {
			return models.Drink{}, err
		}
		count = n

		baseName = strings.TrimSpace(trailingParen.ReplaceAllString(preset.Name, ""))
		nameDetails = fmt.Sprintf("(%d shots, %.1f%% ABV Base)", count, abv)
	} else {
		if in.DrinkType != catalog.DrinkShotSpirit {
			// Beer, wine, and IPA take the actual ABV/volume from the form.
			var err error
			abv, err = strconv.ParseFloat(strings.TrimSpace(in.CustomABV), 64)
			if err == nil {
				volumeOz, err = strconv.ParseFloat(strings.TrimSpace(in.LiquidOunces), 64)
			}
			if err != nil {
				return models.Drink{}, Validationf("Missing or Invalid number for ABV or Volume")
			}
		}

		baseName = preset.Name
		nameDetails = fmt.Sprintf("(%.1foz, %.1f%%)", volumeOz, abv)
	}

	caloriesPerServing := calorie.Alcohol(abv, volumeOz)
	if in.DrinkType == catalog.DrinkShotSpirit || isMixed {
		caloriesPerServing = flatServingCalories
	}
	caloriesPerServing += calorieOffsets[in.DrinkType]

	if in.CustomName != "" {
		baseName = in.CustomName
	}

	drink := models.Drink{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Name:      strings.TrimSpace(baseName) + " " + nameDetails,
		Calories:  caloriesPerServing,
		ABV:       abv,
		VolumeOz:  volumeOz,
		Count:     count,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewDrinkRepository(tx).Create(&drink); err != nil {
			return fmt.Errorf("drinks: create: %w", err)
		}
		_, err := RecomputeSessionTotal(tx, sessionID)
		return err
	})
	if err != nil {
		return models.Drink{}, err
	}
	return drink, nil
}

// DrinkUpdate reports the outcome of an increment/decrement.
type DrinkUpdate struct {
	ID       string
	Calories int
	Count    int
	Removed  bool
}

// Update applies the two-state count machine: increment always adds one
// serving; decrement subtracts one and deletes the row when the count would
// drop to zero. The session total is recomputed either way.
func (s *DrinkService) Update(userEmail, sessionID, drinkID, action string) (DrinkUpdate, error) {
	drink, err := s.drinks.FindOwned(drinkID, sessionID, userEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DrinkUpdate{}, ErrNotFound
		}
		return DrinkUpdate{}, fmt.Errorf("drinks: lookup: %w", err)
	}

	result := DrinkUpdate{ID: drinkID, Calories: drink.Calories}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		drinkRepo := repositories.NewDrinkRepository(tx)

		switch action {
		case "increment":
			result.Count = drink.Count + 1
			if err := drinkRepo.SetCount(drinkID, result.Count); err != nil {
				return fmt.Errorf("drinks: set count: %w", err)
			}

		case "decrement":
			newCount := drink.Count - 1
			if newCount <= 0 {
				if err := drinkRepo.Delete(drinkID); err != nil {
					return fmt.Errorf("drinks: delete: %w", err)
				}
				result.Removed = true
			} else {
				result.Count = newCount
				if err := drinkRepo.SetCount(drinkID, newCount); err != nil {
					return fmt.Errorf("drinks: set count: %w", err)
				}
			}

		default:
			return Validationf("Invalid action specified")
		}

		_, err := RecomputeSessionTotal(tx, sessionID)
		return err
	})
	if err != nil {
		return DrinkUpdate{}, err
	}
	return result, nil
}

// parseShotCount resolves the serving count for mixed drinks. Mirrors the
// documented policy: empty input or a value below one defaults to 1;
// non-numeric or non-integer input is a validation error.
func parseShotCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, Validationf("Invalid number for shots count")
	}
	if f < 1 {
		return 1, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, Validationf("Invalid number for shots count")
	}
	return n, nil
}
