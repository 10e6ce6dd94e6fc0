package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"gorm.io/gorm"

	"plantdiary/internal/plant"
	"plantdiary/internal/profile"
)

var (
	ErrInvalidInput = errors.New("email/password required")
	ErrInvalidEmail = errors.New("invalid email")
	ErrConflict     = errors.New("account exists")
	ErrNotFound     = errors.New("account not found")
	ErrUnauthorized = errors.New("incorrect password")
)

// Service is the account ledger. One row per email; deleting an account
// cascades to that email's plants and profile.
type Service struct {
	DB  *gorm.DB
	JWT *JWT
}

func (s *Service) Signup(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Account
		if err := tx.Where("email = ?", email).First(&existing).Error; err == nil {
			return ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&Account{Email: email, PasswordHash: hash, CreatedAt: time.Now()}).Error
	})
	if err != nil {
		return "", err
	}
	return email, nil
}

func (s *Service) Signin(ctx context.Context, email, password string) (string, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", "", ErrInvalidInput
	}

	acc, err := s.find(ctx, email)
	if err != nil {
		return "", "", err
	}
	if !ComparePassword(acc.PasswordHash, password) {
		return "", "", ErrUnauthorized
	}

	token, err := s.JWT.Sign(email)
	if err != nil {
		return "", "", err
	}
	return email, token, nil
}

func (s *Service) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || oldPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}

	acc, err := s.find(ctx, email)
	if err != nil {
		return err
	}
	if !ComparePassword(acc.PasswordHash, oldPassword) {
		return ErrUnauthorized
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	return s.DB.WithContext(ctx).Model(&Account{}).
		Where("email = ?", email).
		Updates(map[string]any{"password_hash": hash, "changed_at": &now}).Error
}

// DeleteAccount verifies the password, then removes the account together
// with its plants and profile in one transaction.
func (s *Service) DeleteAccount(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	acc, err := s.find(ctx, email)
	if err != nil {
		return err
	}
	if !ComparePassword(acc.PasswordHash, password) {
		return ErrUnauthorized
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).Delete(&Account{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_email = ?", email).Delete(&plant.Plant{}).Error; err != nil {
			return err
		}
		return tx.Where("email = ?", email).Delete(&profile.Profile{}).Error
	})
}

func (s *Service) find(ctx context.Context, email string) (*Account, error) {
	var acc Account
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &acc, nil
}
