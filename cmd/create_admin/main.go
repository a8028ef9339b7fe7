package main

import (
	"context"
	"log"
	"os"

	"pomodoro_tracker/internal/db"
	"pomodoro_tracker/internal/repository"
	"pomodoro_tracker/internal/service"
)

// Ensures the seed admin account exists and prints a signed token for it.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "12345"
	}

	service.InitJWT(secret)

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	ctx := context.Background()

	admin, err := service.EnsureInitialAdmin(ctx, users, password)
	if err != nil {
		log.Fatalf("ensure admin failed: %v", err)
	}
	log.Printf("admin id=%d login=%s role=%s\n", admin.ID, admin.Login, admin.Role)

	token, err := service.GenerateJWT(admin.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
