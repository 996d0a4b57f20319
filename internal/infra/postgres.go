package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Desire4travels/Chatbot/internal/models/db_models"
)

// InitPostgresql opens the connection pool for the given DSN. The DSN is
// passed in by the composition root so this package never reads env.
func InitPostgresql(dsn string) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}
	return connectionPool
}

// AutoMigrate creates the vendor index and admin tables. The pgvector
// extension must already exist on the target database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.VendorEmbedding{},
		&db_models.Admin{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
