package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"equipment_portal/apperr"
	"equipment_portal/models"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// notFound translates the gorm sentinel into the caller-visible taxonomy.
func notFound(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NewNotFound(msg)
	}
	return err
}

// Users

// CreateUser registers a new account; duplicate usernames are a conflict.
func (r *Repo) CreateUser(ctx context.Context, username, password string, role models.Role) (*models.User, error) {
	u := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
		Role:     role,
	}
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).
			Where("username = ?", username).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return apperr.NewConflict("user exists")
		}
		return tx.Create(u).Error
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, notFound(err, "user not found")
	}
	return &u, nil
}
