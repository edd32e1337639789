// Package auth owns employee credential verification. Handlers talk to the
// CredentialStore interface so the backing store can change without touching
// them.
package auth

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ebsaroptics/optical-center-api/internal/config"
	"github.com/ebsaroptics/optical-center-api/internal/models"
)

type CredentialStore interface {
	// Verify returns the employee record when username/password match,
	// nil otherwise. An error means the store itself failed.
	Verify(ctx context.Context, username, password string) (*models.Employee, error)
}

type GormCredentialStore struct {
	db *gorm.DB
}

func NewGormCredentialStore(db *gorm.DB) *GormCredentialStore {
	return &GormCredentialStore{db: db}
}

func (s *GormCredentialStore) Verify(ctx context.Context, username, password string) (*models.Employee, error) {
	var emp models.Employee
	if err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&emp).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	return &emp, nil
}

// SeedAdmin makes sure the configured console credential exists. Existing
// records are left alone so a rotated env password never silently clobbers
// one changed in the table.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.Employee{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	emp := models.Employee{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		DisplayName:  cfg.AdminUsername,
		Role:         "admin",
	}

	if err := db.Create(&emp).Error; err != nil {
		return err
	}

	log.Printf("seeded console employee %q", cfg.AdminUsername)
	return nil
}
