package models

import (
	"encoding/json"
	"time"
)

// User holds credentials and optional body metrics. The email is the unique
// key; the password column stores a bcrypt hash, never plaintext.
type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"-"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Metrics   *string   `gorm:"type:text" json:"-"` // JSON-encoded BodyMetrics, nil until set
	CreatedAt time.Time `json:"-"`
}

// BodyMetrics is the opaque metrics blob stored on a user. Weight is the
// only field the calorie math reads; the rest is kept for the client.
type BodyMetrics struct {
	Age      int     `json:"age" validate:"required,gt=0"`
	HeightCm float64 `json:"height_cm" validate:"required,gt=0"`
	WeightKg float64 `json:"weight_kg" validate:"required,gt=0"`
	Sex      string  `json:"sex" validate:"required"`
}

// MetricsSet reports whether the user has saved body metrics.
func (u *User) MetricsSet() bool {
	return u.Metrics != nil && *u.Metrics != ""
}

// BodyMetrics decodes the stored metrics blob.
func (u *User) BodyMetrics() (BodyMetrics, error) {
	var m BodyMetrics
	if !u.MetricsSet() {
		return m, ErrMetricsUnset
	}
	if err := json.Unmarshal([]byte(*u.Metrics), &m); err != nil {
		return m, err
	}
	return m, nil
}

// SetBodyMetrics encodes and stores the metrics blob.
func (u *User) SetBodyMetrics(m BodyMetrics) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	s := string(raw)
	u.Metrics = &s
	return nil
}
