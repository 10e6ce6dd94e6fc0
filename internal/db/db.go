package db

import (
	"fmt"

	"plantdiary/internal/auth"
	"plantdiary/internal/plant"
	"plantdiary/internal/profile"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.Account{},
		&plant.Plant{},
		&profile.Profile{},
	); err != nil {
		return err
	}

	// Listing a user's plants in insertion order is the hot read.
	stmts := []string{
		`create index if not exists idx_plants_owner_added on plants(owner_email, date_added);`,
		`create index if not exists idx_plants_reminder on plants(reminder_last_care) where reminder_last_care is not null;`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
