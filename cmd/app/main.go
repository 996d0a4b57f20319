package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/Desire4travels/Chatbot/cmd/fx/ai_fx"
	"github.com/Desire4travels/Chatbot/cmd/fx/auth_fx"
	"github.com/Desire4travels/Chatbot/cmd/fx/db_fx"
	"github.com/Desire4travels/Chatbot/cmd/fx/ingest_fx"
	"github.com/Desire4travels/Chatbot/cmd/fx/itinerary_fx"
	"github.com/Desire4travels/Chatbot/cmd/fx/vendors_fx"
	"github.com/Desire4travels/Chatbot/internal/api/controllers"
	"github.com/Desire4travels/Chatbot/pkg/middleware"
	"github.com/Desire4travels/Chatbot/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		vendors_fx.Module,
		itinerary_fx.Module,
		ingest_fx.Module,
		auth_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	vendorsController *controllers.VendorsController,
	authController *controllers.AuthController,
	tokens *utils.TokenManager,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, vendorsController, authController, tokens)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	vendorsController *controllers.VendorsController,
	authController *controllers.AuthController,
	tokens *utils.TokenManager,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/itinerary", itineraryController.CreateItineraryHandler)
	api.POST("/vendors/search", vendorsController.SearchVendorsHandler)
	api.POST("/auth/login", authController.LoginHandler)

	admin := api.Group("/")
	admin.Use(middleware.JWTAuthMiddleware(tokens), middleware.RoleMiddleware("admin"))
	admin.POST("/vendors", vendorsController.UpsertVendorHandler)
	admin.POST("/vendors/sync", vendorsController.SyncVendorsHandler)
}
