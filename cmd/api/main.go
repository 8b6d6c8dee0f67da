package main

import (
	"log"

	"github.com/certmint/certmint/internal/api/app"
	"github.com/joho/godotenv"
)

func main() {
	// Best effort: a missing .env is fine outside development.
	_ = godotenv.Load()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
