package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidInput = errors.New("name required")

type Service struct {
	DB *gorm.DB
}

// View is what the API returns: either the stored profile or the default
// derived from the email when none was saved yet.
type View struct {
	Name      string
	Image     string
	UpdatedAt *time.Time
}

func (s *Service) Get(ctx context.Context, email string) (*View, error) {
	var p Profile
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		local, _, _ := strings.Cut(email, "@")
		return &View{Name: local}, nil
	}
	if err != nil {
		return nil, err
	}
	return &View{Name: p.DisplayName, Image: p.Image, UpdatedAt: &p.UpdatedAt}, nil
}

func (s *Service) Save(ctx context.Context, email, name, image string) (*View, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	p := Profile{Email: email, DisplayName: name, Image: image, UpdatedAt: time.Now()}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, UpdateAll: true}).
		Create(&p).Error
	if err != nil {
		return nil, err
	}
	return &View{Name: p.DisplayName, Image: p.Image, UpdatedAt: &p.UpdatedAt}, nil
}
