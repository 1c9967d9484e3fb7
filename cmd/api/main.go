package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/recipedex/backend/config"
	"github.com/recipedex/backend/internal/api"
	"github.com/recipedex/backend/internal/database"
	"github.com/recipedex/backend/internal/router"
	"github.com/recipedex/backend/internal/server"
	"github.com/recipedex/backend/internal/service"
	"github.com/recipedex/backend/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db.DB, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis backs the session cache; the service degrades to plain DB
	// lookups without it
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Redis unavailable, session caching disabled: %v", err)
		redisClient = nil
	}

	sessions := session.NewStore(db.DB, redisClient, session.PolicyFor(cfg.TokenTTL))

	var imageService *service.ImageService
	if cfg.AWSRegion != "" {
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, image uploads disabled: %v", err)
		} else {
			imageService = service.NewImageService(db.DB, s3cfg)
		}
	} else {
		log.Printf("AWS_REGION not set, image uploads disabled")
	}

	authHandler := api.NewAuthHandler(service.NewAuthService(db.DB, sessions))
	recipeHandler := api.NewRecipeHandler(service.NewRecipeService(db.DB), imageService)

	engine := router.SetupRouter(authHandler, recipeHandler, sessions, db.DB)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Printf("Starting server on %s...", srv.Addr())
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
