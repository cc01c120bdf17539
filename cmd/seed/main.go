package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"crms/internal/auth"
	"crms/internal/config"
	"crms/internal/db"
	"crms/internal/model"
	"crms/internal/repository"
)

// seedUser pairs a user record with its plaintext password for local setups.
type seedUser struct {
	user     model.User
	password string
}

var seedUsers = []seedUser{
	{
		user: model.User{
			Name:       "Arjun Mehta",
			Email:      "arjun.mehta@example.com",
			Mobile:     "9876543210",
			Role:       model.RoleOfficer,
			Department: "Cyber Crime",
			Status:     model.StatusActive,
		},
		password: "officer@123",
	},
	{
		user: model.User{
			Name:       "Priya Nair",
			Email:      "priya.nair@example.com",
			Mobile:     "8765432109",
			Role:       model.RoleInvestigator,
			Department: "Homicide",
			Status:     model.StatusActive,
		},
		password: "invest@123",
	},
	{
		user: model.User{
			Name:       "Rahul Verma",
			Email:      "rahul.verma@example.com",
			Mobile:     "7654321098",
			Role:       model.RoleOfficer,
			Department: "General",
			Status:     model.StatusInactive,
		},
		password: "officer@456",
	},
}

// Seeds sample officer and investigator records. No admin row is ever seeded:
// the admin identity lives in ADMIN_EMAIL/ADMIN_PASSWORD_HASH configuration.
func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, skipped, err := seed(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", created)
	log.Printf("  - Existing users skipped: %d", skipped)
}

func seed(ctx context.Context, repo repository.UserRepository) (created int, skipped int, err error) {
	for _, s := range seedUsers {
		existing, err := repo.FindByEmail(ctx, s.user.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, skipped, fmt.Errorf("error checking user %s: %w", s.user.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		hash, err := auth.HashPassword(s.password)
		if err != nil {
			return created, skipped, fmt.Errorf("error hashing password for %s: %w", s.user.Email, err)
		}

		user := s.user
		user.PasswordHash = hash
		if err := repo.Create(ctx, &user); err != nil {
			return created, skipped, fmt.Errorf("error creating user %s: %w", s.user.Email, err)
		}
		created++
	}
	return created, skipped, nil
}
