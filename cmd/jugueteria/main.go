package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/drax210310/jugueteria-backend/internal/app"
	"github.com/drax210310/jugueteria-backend/internal/config"
	"github.com/drax210310/jugueteria-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
