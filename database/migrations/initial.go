package migrations

import (
	"github.com/shashiranjanraj/nightcap/app/models"
	"github.com/shashiranjanraj/nightcap/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260101000001_create_sessions_table", &CreateSessionsTable{})
	migration.Register("20260101000002_create_drinks_table", &CreateDrinksTable{})
	migration.Register("20260101000003_create_exercises_table", &CreateExercisesTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: sessions --------

type CreateSessionsTable struct{}

func (m *CreateSessionsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Session{})
}

func (m *CreateSessionsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("sessions")
}

// -------- 0003: drinks --------

type CreateDrinksTable struct{}

func (m *CreateDrinksTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Drink{})
}

func (m *CreateDrinksTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("drinks")
}

// -------- 0004: exercises --------

type CreateExercisesTable struct{}

func (m *CreateExercisesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Exercise{})
}

func (m *CreateExercisesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("exercises")
}
