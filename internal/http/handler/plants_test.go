package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantdiary/internal/plant"
	"plantdiary/internal/reminder"
)

func intp(v int) *int { return &v }

func TestToInput_ReminderDateFormats(t *testing.T) {
	t.Parallel()

	in, err := toInput(&plantReq{
		Name: "Fern",
		Reminder: &reminderDTO{
			Type:          "watering",
			FrequencyDays: intp(3),
			LastCareDate:  "2026-03-07",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, in.Reminder)
	require.NotNil(t, in.Reminder.LastCareDate)

	y, m, d := in.Reminder.LastCareDate.Date()
	assert.Equal(t, 2026, y)
	assert.Equal(t, time.March, m)
	assert.Equal(t, 7, d)

	in, err = toInput(&plantReq{
		Name: "Fern",
		Reminder: &reminderDTO{
			Type:          "watering",
			FrequencyDays: intp(3),
			LastCareDate:  "2026-03-07T10:30:00Z",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, in.Reminder.LastCareDate)

	_, err = toInput(&plantReq{
		Name: "Fern",
		Reminder: &reminderDTO{
			Type:          "watering",
			FrequencyDays: intp(3),
			LastCareDate:  "next tuesday",
		},
	})
	assert.ErrorIs(t, err, errBadLastCareDate)
}

func TestToInput_EmptyReminderTypeMeansNoReminder(t *testing.T) {
	t.Parallel()

	in, err := toInput(&plantReq{Name: "Fern", Reminder: &reminderDTO{Type: ""}})
	require.NoError(t, err)
	assert.Nil(t, in.Reminder)
}

func TestToDTO(t *testing.T) {
	t.Parallel()

	lastCare := time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	updated := time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local)
	p := plant.Plant{
		ID:                    "plant_abc",
		OwnerEmail:            "gardener@example.com",
		Name:                  "Fern",
		Description:           "bathroom shelf",
		ReminderType:          reminder.TypeWatering,
		ReminderFrequencyDays: intp(3),
		ReminderLastCare:      &lastCare,
		DateAdded:             time.Date(2026, 2, 1, 8, 0, 0, 0, time.Local),
		UpdatedAt:             &updated,
	}

	dto := toDTO(&p)
	assert.Equal(t, "plant_abc", dto.ID)
	assert.Equal(t, "Fern", dto.Name)
	require.NotNil(t, dto.Reminder)
	assert.Equal(t, "watering", dto.Reminder.Type)
	assert.Equal(t, "2026-03-07", dto.Reminder.LastCareDate)
	require.NotNil(t, dto.UpdatedAt)

	p.ReminderType = ""
	dto = toDTO(&p)
	assert.Nil(t, dto.Reminder)
}
