package main

import (
	"context"
	"os"

	"github.com/AndrewMorgan2/Spritied-Towards/internal/api"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/constants"
	"github.com/AndrewMorgan2/Spritied-Towards/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil {
		logging.Debug("no .env file found; using environment variables", nil)
	}

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg := loadConfigOrExit(configPath)

	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	repo := createRepositoryOrExit(dbPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := api.NewHub()
	go hub.Run(ctx)

	startJanitor(ctx, repo, cfg.SessionTTL)

	handler := api.NewSessionHandler(repo, cfg, hub)

	router := gin.Default()
	api.RegisterRoutes(router, handler)

	addr := cfg.ServerAddress
	if env := os.Getenv(constants.EnvListenAddr); env != "" {
		addr = env
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
