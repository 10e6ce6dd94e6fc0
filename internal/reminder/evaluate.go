// Package reminder computes care due-state from a frequency and a last-care date.
package reminder

import "time"

// Care types a reminder can track.
const (
	TypeWatering    = "watering"
	TypeFertilizing = "fertilizing"
	TypeRepotting   = "repotting"
	TypePruning     = "pruning"
	TypeOther       = "other"
)

func ValidType(t string) bool {
	switch t {
	case TypeWatering, TypeFertilizing, TypeRepotting, TypePruning, TypeOther:
		return true
	}
	return false
}

// Spec is the optional reminder attached to a plant. A nil Spec, or one with
// FrequencyDays/LastCareDate missing, means no tracking.
type Spec struct {
	Type          string
	FrequencyDays *int
	LastCareDate  *time.Time
}

type Status struct {
	DaysUntilNext int
	Due           bool
	Upcoming      bool
}

// Evaluate returns nil when the spec is incomplete. Day arithmetic is
// calendar-day based: both timestamps are truncated to their civil date
// before subtracting, so the result does not shift with time-of-day.
func Evaluate(spec *Spec, now time.Time) *Status {
	if spec == nil || spec.FrequencyDays == nil || spec.LastCareDate == nil {
		return nil
	}
	freq := *spec.FrequencyDays
	if freq <= 0 {
		return nil
	}

	daysSince := civilDays(now) - civilDays(*spec.LastCareDate)
	daysUntil := freq - daysSince

	return &Status{
		DaysUntilNext: daysUntil,
		Due:           daysUntil <= 0,
		Upcoming:      daysUntil > 0 && daysUntil <= 2,
	}
}

// civilDays counts whole days since the Unix epoch in t's location.
func civilDays(t time.Time) int {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}
