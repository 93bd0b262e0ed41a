package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/example/vocabquiz/internal/cli"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	if err := cli.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
