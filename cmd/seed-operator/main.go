package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/robocue/backend/internal/config"
	"github.com/robocue/backend/internal/database"
	"github.com/robocue/backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	username := os.Getenv("OPERATOR_USERNAME")
	if username == "" {
		username = "operator"
		log.Printf("Using default operator username: %s", username)
	}

	password := os.Getenv("OPERATOR_PASSWORD")
	if password == "" {
		password = "change-me-in-production"
		log.Printf("WARNING: Using default operator password. Set OPERATOR_PASSWORD env var in production!")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := store.UpsertOperator(context.Background(), db, username, string(hash)); err != nil {
		log.Fatalf("Failed to create operator account: %v", err)
	}

	log.Printf("✓ Operator account created/updated successfully")
	log.Printf("  Username: %s", username)
	log.Println("\nYou can now login at /api/v1/auth/login")
}
