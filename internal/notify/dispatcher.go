package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"plantdiary/internal/plant"
	"plantdiary/internal/reminder"
)

// PlantSource is what the dispatcher needs from storage: every plant that
// could have a due reminder, and a way to persist a sent dedupe key.
type PlantSource interface {
	DueCandidates(ctx context.Context) ([]plant.Plant, error)
	MarkNotified(ctx context.Context, plantID, key string) error
}

// Dispatcher re-derives each plant's reminder state on every tick and sends
// at most one notification per (plant, lastCareDate, daysUntilNext). No
// state machine is stored; the persisted keys only suppress repeats.
type Dispatcher struct {
	Plants   PlantSource
	Mailer   Mailer
	Interval time.Duration
	Log      *zap.Logger

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	d.Tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Tick(ctx)
		}
	}
}

// Tick evaluates every candidate plant once. A notification fires only when
// the reminder is due, or exactly one day out. The two-day upcoming window
// shows in the UI but does not trigger mail.
func (d *Dispatcher) Tick(ctx context.Context) {
	now := time.Now()
	if d.Now != nil {
		now = d.Now()
	}

	plants, err := d.Plants.DueCandidates(ctx)
	if err != nil {
		d.Log.Error("load reminder candidates", zap.Error(err))
		return
	}

	for _, p := range plants {
		status := reminder.Evaluate(p.Reminder(), now)
		if status == nil {
			continue
		}
		if !status.Due && status.DaysUntilNext != 1 {
			continue
		}

		key := DedupeKey(p.ReminderLastCare, status.DaysUntilNext)
		if containsKey(p.NotifiedKeys, key) {
			continue
		}

		subject, body := composeReminder(&p, status)

		sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err := d.Mailer.Send(sendCtx, p.OwnerEmail, subject, body)
		cancel()
		if err != nil {
			// No retries; the key is still recorded so the next tick
			// does not hammer the transport for the same transition.
			d.Log.Error("send reminder",
				zap.String("plant", p.ID),
				zap.String("owner", p.OwnerEmail),
				zap.Error(err))
		} else {
			d.Log.Info("reminder sent",
				zap.String("plant", p.ID),
				zap.String("owner", p.OwnerEmail),
				zap.Int("days_until_next", status.DaysUntilNext))
		}

		if err := d.Plants.MarkNotified(ctx, p.ID, key); err != nil {
			d.Log.Error("persist dedupe key", zap.String("plant", p.ID), zap.Error(err))
		}
	}
}

// DedupeKey identifies one (lastCareDate, daysUntilNext) transition. Owner
// and plant are implied by the row the key is stored on.
func DedupeKey(lastCare *time.Time, daysUntilNext int) string {
	return fmt.Sprintf("%s|%d", lastCare.Format("2006-01-02"), daysUntilNext)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func composeReminder(p *plant.Plant, status *reminder.Status) (subject, body string) {
	careType := strings.ToLower(p.ReminderType)

	var statusText string
	if status.Due {
		statusText = "is due now"
	} else {
		statusText = "is approaching (in 1 day)"
	}

	subject = fmt.Sprintf("Plant reminder: %s", p.Name)
	body = fmt.Sprintf(
		"Hi there,\n\nThis is a reminder that your plant %q needs %s - %s!\n\nPlease take care of your plant.\n\nBest regards,\nPlant Diary",
		p.Name, careType, statusText)
	return subject, body
}
