package profile

import "time"

// Profile is created lazily on first save; accounts without one get a
// default view derived from the email's local part.
type Profile struct {
	Email       string    `gorm:"primaryKey"`
	DisplayName string    `gorm:"not null"`
	Image       string    `gorm:"type:text;not null;default:''"`
	UpdatedAt   time.Time `gorm:"not null;default:now()"`
}
