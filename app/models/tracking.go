package models

import "errors"

// ErrMetricsUnset is returned when calorie-burn math is requested for a user
// who has not saved body metrics yet.
var ErrMetricsUnset = errors.New("metrics not set")

// Session is a user-created grouping of drinks and exercises for one outing
// or day — distinct from the authentication session.
//
// TotalCalories is a denormalized aggregate over the session's drinks. It is
// recomputed from the drink rows after every drink mutation and must never
// be patched incrementally.
type Session struct {
	ID            string `gorm:"primaryKey;size:36" json:"id"`
	UserEmail     string `gorm:"index;size:255;not null" json:"-"`
	Name          string `gorm:"size:255;not null" json:"name"`
	Date          string `gorm:"size:25;not null" json:"date"` // ISO-8601 UTC, seconds precision
	TotalCalories int    `gorm:"not null;default:0" json:"total_calories"`
}

// Drink is one drink entry in a tracking session. Count stays >= 1 while the
// row exists; decrementing to zero deletes the row instead.
type Drink struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	SessionID string  `gorm:"index;size:36;not null" json:"-"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	Calories  int     `gorm:"not null" json:"calories"` // per serving
	ABV       float64 `gorm:"not null" json:"abv"`
	VolumeOz  float64 `gorm:"not null" json:"volume_oz"`
	Count     int     `gorm:"not null" json:"count"`
}

// Exercise is one logged exercise in a tracking session. Minutes stays > 0
// while the row exists; decrementing below the floor deletes the row.
type Exercise struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`
	SessionID      string  `gorm:"index;size:36;not null" json:"-"`
	Type           string  `gorm:"size:50;not null" json:"type"`
	Minutes        float64 `gorm:"not null" json:"minutes"`
	CaloriesBurned int     `gorm:"not null" json:"calories_burned"`
}
