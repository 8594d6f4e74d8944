package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"minifeed/internal/router"
	"minifeed/internal/storage"
	"minifeed/internal/storage/inmemory"
	"minifeed/internal/storage/postgres"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	store, err := openStore()
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Demo dataset: two users, a hundred posts. No-op once seeded.
	if err := storage.Seed(context.Background(), store); err != nil {
		log.Fatalf("Failed to seed store: %v", err)
	}

	r := router.New(store)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("minifeed server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func openStore() (storage.Storage, error) {
	switch kind := os.Getenv("STORAGE"); kind {
	case "", "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			// Fallback for local dev if not set
			dsn = "host=localhost user=postgres password=postgres dbname=minifeed port=5432 sslmode=disable"
		}
		return postgres.New(dsn)
	case "memory":
		log.Println("Using in-memory store, data will not survive a restart")
		return inmemory.New(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE value %q", kind)
	}
}
