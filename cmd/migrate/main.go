// Command migrate applies the database schema.
package main

import (
	"flag"
	"log"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/seed"
)

func main() {
	withCatalog := flag.Bool("catalog", false, "Seed the built-in skill catalog after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect runs AutoMigrate against the registered models.
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Printf("Schema applied for %d models", len(database.PersistentModels()))

	if *withCatalog {
		if err := seed.Catalog(db); err != nil {
			log.Fatalf("Failed to seed skill catalog: %v", err)
		}
		log.Printf("Built-in skill catalog seeded (%d entries)", len(seed.BuiltInSkills))
	}
}
