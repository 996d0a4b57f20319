package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a backoffice account allowed to push vendor data.
type Admin struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Admin) TableName() string { return "admins" }
