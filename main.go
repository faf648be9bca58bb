package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fanation-admin/app"
	"fanation-admin/config"
	"fanation-admin/logger"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("SERVER_ENV") != "production" {
		// .env values override system environment variables; a missing
		// file is fine.
		_ = godotenv.Overload(".env")
	}

	cfg := config.Load()

	log := logger.NewWithDefaults()
	defer log.Sync()

	handler, cleanup, err := app.Initialize(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer cleanup()

	// Listen on 0.0.0.0 to accept connections from all interfaces
	addr := "0.0.0.0:" + cfg.Server.Port
	log.Info("server starting",
		zap.String("addr", addr),
		zap.String("api", cfg.API.BaseURL))

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("server failed to start", zap.Error(err))
	}
}
