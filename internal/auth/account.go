package auth

import "time"

// Account is one row per email. Email is the natural key everywhere else
// in the app (plants and profiles hang off it), so it is the primary key here.
type Account struct {
	Email        string     `gorm:"primaryKey"`
	PasswordHash string     `gorm:"not null"`
	CreatedAt    time.Time  `gorm:"not null;default:now()"`
	ChangedAt    *time.Time `gorm:"type:timestamptz"`
}
