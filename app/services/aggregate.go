package services

import (
	"github.com/shashiranjanraj/nightcap/app/repositories"
	"gorm.io/gorm"
)

// RecomputeSessionTotal re-reads the session's drink rows, sums
// calories × count, writes the sum into the session's cached total, and
// returns it.
//
// It runs synchronously after every drink insert, update, and delete — in
// the same transaction as the mutation. There is no incremental delta
// update: the total is always rebuilt from the rows, which makes the cache
// self-healing if two writers ever race on the same session.
func RecomputeSessionTotal(tx *gorm.DB, sessionID string) (int, error) {
	total, err := repositories.NewDrinkRepository(tx).SumCalories(sessionID)
	if err != nil {
		return 0, err
	}

	if err := repositories.NewSessionRepository(tx).SetTotal(sessionID, total); err != nil {
		return 0, err
	}
	return total, nil
}
