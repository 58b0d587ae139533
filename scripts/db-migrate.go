package main

import (
	"log"
	"os"

	"github.com/workforce-hub/config"
	"github.com/workforce-hub/database"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
	log.Println("Starting database migration...")

	sourceDBURL := os.Getenv("SOURCE_DATABASE_URL")
	targetDBURL := os.Getenv("TARGET_DATABASE_URL")
	if sourceDBURL == "" || targetDBURL == "" {
		log.Fatal("SOURCE_DATABASE_URL and TARGET_DATABASE_URL must both be set")
	}

	// Connect to source database
	sourceDB, err := database.NewDBConnection("source", database.Options{
		Driver: config.GetEnv("SOURCE_DB_DRIVER", "postgres"),
		URL:    sourceDBURL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to source database: %v", err)
	}

	// Connect to target database
	targetDB, err := database.NewDBConnection("target", database.Options{
		Driver: config.GetEnv("TARGET_DB_DRIVER", "postgres"),
		URL:    targetDBURL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to target database: %v", err)
	}

	// Ensure target database schema is migrated
	if err := targetDB.Migrate(); err != nil {
		log.Fatalf("Failed to migrate target database schema: %v", err)
	}

	// Migrate data from source to target
	if err := database.MigrateDataBetweenDatabases(sourceDB, targetDB); err != nil {
		log.Fatalf("Data migration failed: %v", err)
	}

	log.Println("Database migration completed successfully!")
}
