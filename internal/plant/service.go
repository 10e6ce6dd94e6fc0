package plant

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"plantdiary/internal/reminder"
)

var (
	ErrNotFound      = errors.New("plant not found")
	ErrInvalidInput  = errors.New("plant data required")
	ErrLimitExceeded = errors.New("plant limit reached")
)

type Service struct {
	DB *gorm.DB
}

// Input carries the caller-editable fields of a plant.
type Input struct {
	Name        string
	Description string
	Image       string
	Reminder    *reminder.Spec
}

func (in *Input) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return ErrInvalidInput
	}
	if in.Reminder != nil && !reminder.ValidType(in.Reminder.Type) {
		return ErrInvalidInput
	}
	if in.Reminder != nil && in.Reminder.FrequencyDays != nil && *in.Reminder.FrequencyDays <= 0 {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) List(ctx context.Context, email string) ([]Plant, error) {
	var rows []Plant
	err := s.DB.WithContext(ctx).
		Where("owner_email = ?", email).
		Order("date_added asc").
		Find(&rows).Error
	return rows, err
}

func (s *Service) Add(ctx context.Context, email string, in Input) (*Plant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := Plant{
		ID:          "plant_" + uuid.NewString(),
		OwnerEmail:  email,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		DateAdded:   time.Now(),
	}
	applyReminder(&p, in.Reminder)

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Plant{}).Where("owner_email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxPlants {
			return ErrLimitExceeded
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces the mutable fields of the plant with the given id,
// keeping ID and DateAdded. Changing the reminder resets the sent
// notification keys: a new last-care date starts a new dedupe scope.
func (s *Service) Update(ctx context.Context, email, id string, in Input) (*Plant, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var p Plant
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner_email = ?", id, email).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		reminderChanged := !sameReminder(&p, in.Reminder)

		p.Name = in.Name
		p.Description = in.Description
		p.Image = in.Image
		applyReminder(&p, in.Reminder)
		if reminderChanged {
			p.NotifiedKeys = pq.StringArray{}
		}
		now := time.Now()
		p.UpdatedAt = &now

		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Service) Remove(ctx context.Context, email, id string) error {
	res := s.DB.WithContext(ctx).Where("id = ? AND owner_email = ?", id, email).Delete(&Plant{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DueCandidates returns every plant whose reminder spec is complete enough
// to evaluate, across all owners. Feeds the notification dispatcher.
func (s *Service) DueCandidates(ctx context.Context) ([]Plant, error) {
	var rows []Plant
	err := s.DB.WithContext(ctx).
		Where("reminder_type <> '' AND reminder_frequency_days IS NOT NULL AND reminder_last_care IS NOT NULL").
		Order("owner_email asc, date_added asc").
		Find(&rows).Error
	return rows, err
}

// MarkNotified appends a sent dedupe key in place, without a read-modify-write.
func (s *Service) MarkNotified(ctx context.Context, plantID, key string) error {
	return s.DB.WithContext(ctx).Exec(
		`update plants set notified_keys = array_append(notified_keys, ?) where id = ?`,
		key, plantID).Error
}

// Reminder rebuilds the reminder spec from the row's columns, nil when unset.
func (p *Plant) Reminder() *reminder.Spec {
	if p.ReminderType == "" {
		return nil
	}
	return &reminder.Spec{
		Type:          p.ReminderType,
		FrequencyDays: p.ReminderFrequencyDays,
		LastCareDate:  p.ReminderLastCare,
	}
}

func applyReminder(p *Plant, spec *reminder.Spec) {
	if spec == nil {
		p.ReminderType = ""
		p.ReminderFrequencyDays = nil
		p.ReminderLastCare = nil
		return
	}
	p.ReminderType = spec.Type
	p.ReminderFrequencyDays = spec.FrequencyDays
	p.ReminderLastCare = spec.LastCareDate
}

func sameReminder(p *Plant, spec *reminder.Spec) bool {
	cur := p.Reminder()
	if cur == nil || spec == nil {
		return cur == nil && spec == nil
	}
	if cur.Type != spec.Type {
		return false
	}
	if !sameIntPtr(cur.FrequencyDays, spec.FrequencyDays) {
		return false
	}
	switch {
	case cur.LastCareDate == nil && spec.LastCareDate == nil:
		return true
	case cur.LastCareDate == nil || spec.LastCareDate == nil:
		return false
	default:
		return cur.LastCareDate.Equal(*spec.LastCareDate)
	}
}

func sameIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
