package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pomodoro_tracker/internal/db"
	"pomodoro_tracker/internal/migrations"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	apply := flag.Bool("apply", false, "apply migrations")
	flag.Parse()

	if !*apply {
		files, err := migrations.Files.ReadDir(".")
		if err != nil {
			log.Fatalf("read migrations: %v", err)
		}
		for _, f := range files {
			fmt.Println(f.Name())
		}
		return
	}

	if err := db.Migrate(dsn); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	fmt.Println("migrations applied")
}
