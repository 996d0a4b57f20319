package auth_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Desire4travels/Chatbot/internal/api/controllers"
	"github.com/Desire4travels/Chatbot/internal/repositories"
	"github.com/Desire4travels/Chatbot/internal/services"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		provideTokenManager,
		provideAdminRepo,
		provideAuthService,
		provideAuthController),
	fx.Invoke(seedAdmin),
)

func provideTokenManager() *utils.TokenManager {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	return utils.NewTokenManager(secret)
}

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAuthService(
	adminRepo repositories.AdminRepository,
	tokens *utils.TokenManager,
) services.AuthServiceInterface {
	return services.NewAuthService(adminRepo, tokens)
}

func provideAuthController(authService services.AuthServiceInterface) *controllers.AuthController {
	return controllers.NewAuthController(authService)
}

func seedAdmin(authService services.AuthServiceInterface) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if err := authService.EnsureSeedAdmin(context.Background(), username, password); err != nil {
		log.Printf("Failed to seed admin account: %v", err)
	}
}
