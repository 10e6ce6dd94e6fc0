package plant

import (
	"time"

	"github.com/lib/pq"
)

// MaxPlants caps how many plants one account may keep.
const MaxPlants = 5

// Plant is one row per plant, owned by an account email. ID and DateAdded
// are assigned at creation and never change. The reminder fields mirror the
// optional reminder sub-object; all three must be present for the reminder
// to be evaluated.
type Plant struct {
	ID         string `gorm:"primaryKey"`
	OwnerEmail string `gorm:"index;not null"`

	Name        string `gorm:"not null"`
	Description string `gorm:"type:text;not null;default:''"`
	Image       string `gorm:"type:text;not null;default:''"`

	ReminderType          string     `gorm:"not null;default:''"`
	ReminderFrequencyDays *int       `gorm:""`
	ReminderLastCare      *time.Time `gorm:"type:timestamptz"`

	// NotifiedKeys holds dedupe keys of reminder notifications already sent
	// for this plant ("lastCareDate|daysUntilNext"). Persisted so a restart
	// does not re-send.
	NotifiedKeys pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	DateAdded time.Time  `gorm:"index;not null;default:now()"`
	UpdatedAt *time.Time `gorm:"type:timestamptz;autoUpdateTime:false"`
}
