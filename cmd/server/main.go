package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"hrapi/internal/app/server"
	"hrapi/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app := server.New(cfg)
	if err := app.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
