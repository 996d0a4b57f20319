package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Desire4travels/Chatbot/internal/models/db_models"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (db_models.Admin, error)
	Create(ctx context.Context, admin db_models.Admin) error
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

var ErrAdminNotFound = errors.New("admin not found")

func (r *AdminRepositoryImpl) GetByUsername(ctx context.Context, username string) (db_models.Admin, error) {
	var admin db_models.Admin
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db_models.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return db_models.Admin{}, err
	}
	return admin, nil
}

func (r *AdminRepositoryImpl) Create(ctx context.Context, admin db_models.Admin) error {
	return r.db.WithContext(ctx).Create(&admin).Error
}
