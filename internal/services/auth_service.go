package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/Desire4travels/Chatbot/internal/models/db_models"
	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, username, password string) (string, error)

	// EnsureSeedAdmin creates the bootstrap admin account if it does not
	// exist yet. No-op when username or password is blank.
	EnsureSeedAdmin(ctx context.Context, username, password string) error
}

type AuthService struct {
	adminRepo repositories.AdminRepository
	tokens    *utils.TokenManager
}

func NewAuthService(adminRepo repositories.AdminRepository, tokens *utils.TokenManager) AuthServiceInterface {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if errors.Is(err, repositories.ErrAdminNotFound) {
		return "", utils.ErrInvalidCredentials
	}
	if err != nil {
		return "", utils.ErrDatabaseError
	}

	if err := utils.ComparePasswords(admin.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return s.tokens.CreateToken(admin.ID, admin.Role)
}

func (s *AuthService) EnsureSeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.adminRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repositories.ErrAdminNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	log.Printf("Seeding admin account %q", username)
	return s.adminRepo.Create(ctx, db_models.Admin{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Role:         "admin",
	})
}
