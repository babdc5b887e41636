// Command main seeds the development database: baseline rows first, then an
// optional bulk layer of randomized users, posts and engagement.
package main

import (
	"flag"
	"log"

	"rare/internal/config"
	"rare/internal/database"
	"rare/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of bulk users to create")
	numPosts := flag.Int("posts", 200, "Number of bulk posts to create")
	bulk := flag.Bool("bulk", false, "Generate randomized bulk data on top of the baseline rows")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.EnsureDatabase(cfg); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	if err := seed.SeedIfEmpty(db); err != nil {
		log.Fatalf("Baseline seeding failed: %v", err)
	}

	if *bulk {
		log.Printf("Bulk seeding: %d users, %d posts\n", *numUsers, *numPosts)
		if err := seed.Bulk(db, *numUsers, *numPosts); err != nil {
			log.Fatalf("Bulk seeding failed: %v", err)
		}
		log.Println("All bulk users have the password: password123")
	}

	log.Println("Seeding complete.")
}
