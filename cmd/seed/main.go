// Command main runs the database seeder.
package main

import (
	"flag"
	"log"

	"microblog/internal/config"
	"microblog/internal/database"
	"microblog/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plain passwords (dev fast mode)")
	presetFile := flag.String("preset-file", "", "Path to a YAML preset file")
	preset := flag.String("preset", "", "Name of a preset from the preset file")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
		SkipBcrypt:  *skipBcrypt,
	}

	if *preset != "" {
		if *presetFile == "" {
			log.Fatal("-preset requires -preset-file")
		}
		presets, err := seed.LoadPresets(*presetFile)
		if err != nil {
			log.Fatalf("Failed to load presets: %v", err)
		}
		p, ok := presets[*preset]
		if !ok {
			log.Fatalf("Preset %q not found in %s", *preset, *presetFile)
		}
		log.Printf("Applying preset %q: %d users, %d posts", p.Name, p.Users, p.Posts)
		opts = p.Options(opts)
	} else {
		log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)
	}

	if err := seed.NewSeeder(db, opts).Run(); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Test users share the password: password123")
}
