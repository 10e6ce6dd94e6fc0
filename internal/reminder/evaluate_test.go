package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func daysAgo(now time.Time, days int) *time.Time {
	t := now.AddDate(0, 0, -days)
	return &t
}

func TestEvaluate_IncompleteSpec(t *testing.T) {
	t.Parallel()

	now := time.Now()

	assert.Nil(t, Evaluate(nil, now))
	assert.Nil(t, Evaluate(&Spec{Type: TypeWatering}, now))
	assert.Nil(t, Evaluate(&Spec{Type: TypeWatering, FrequencyDays: intp(7)}, now))
	assert.Nil(t, Evaluate(&Spec{Type: TypeWatering, LastCareDate: daysAgo(now, 3)}, now))
	assert.Nil(t, Evaluate(&Spec{Type: TypeWatering, FrequencyDays: intp(0), LastCareDate: daysAgo(now, 3)}, now))
	assert.Nil(t, Evaluate(&Spec{Type: TypeWatering, FrequencyDays: intp(-2), LastCareDate: daysAgo(now, 3)}, now))
}

func TestEvaluate_WeeklyFrequency(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name         string
		daysAgo      int
		wantDays     int
		wantDue      bool
		wantUpcoming bool
	}{
		{"cared today", 0, 7, false, false},
		{"five days ago", 5, 2, false, true},
		{"six days ago", 6, 1, false, true},
		{"seven days ago", 7, 0, true, false},
		{"overdue", 10, -3, true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spec := &Spec{Type: TypeWatering, FrequencyDays: intp(7), LastCareDate: daysAgo(now, tc.daysAgo)}
			st := Evaluate(spec, now)
			require.NotNil(t, st)
			assert.Equal(t, tc.wantDays, st.DaysUntilNext)
			assert.Equal(t, tc.wantDue, st.Due)
			assert.Equal(t, tc.wantUpcoming, st.Upcoming)
		})
	}
}

// The result must not shift with time-of-day: a plant cared for at 23:00
// three days ago is exactly as due at 01:00 as at 23:59.
func TestEvaluate_CalendarDayTruncation(t *testing.T) {
	t.Parallel()

	lastCare := time.Date(2026, 3, 7, 23, 0, 0, 0, time.Local)
	spec := &Spec{Type: TypeWatering, FrequencyDays: intp(3), LastCareDate: &lastCare}

	early := time.Date(2026, 3, 10, 1, 0, 0, 0, time.Local)
	late := time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local)

	stEarly := Evaluate(spec, early)
	stLate := Evaluate(spec, late)
	require.NotNil(t, stEarly)
	require.NotNil(t, stLate)

	assert.Equal(t, stEarly.DaysUntilNext, stLate.DaysUntilNext)
	assert.True(t, stEarly.Due)
	assert.True(t, stLate.Due)
}

func TestValidType(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{TypeWatering, TypeFertilizing, TypeRepotting, TypePruning, TypeOther} {
		assert.True(t, ValidType(typ), typ)
	}
	assert.False(t, ValidType(""))
	assert.False(t, ValidType("misting"))
}
