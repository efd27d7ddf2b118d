package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"pda-backend/internal/api"
	"pda-backend/internal/config"
	"pda-backend/internal/db"
	"pda-backend/internal/services"
	"pda-backend/internal/storage"
)

func main() {
	log := logrus.New()
	settings := config.Load()

	database, err := db.Open(settings)
	if err != nil {
		// The server keeps listening with a dead store handle; every
		// query surfaces as a 500 until the database comes back.
		log.WithError(err).Error("database connection failed")
	}

	repos := db.NewRepositories(database)
	authService := services.NewAuthService(repos.Users, []byte(settings.JWTSecret))
	uploadStore := storage.NewUploadStore(settings.UploadDir)
	handler := api.NewHandler(repos, authService, uploadStore, log)

	app := fiber.New(fiber.Config{
		AppName:               "pda-server",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "https://pda-med-api.onrender.com, http://localhost:3000, http://localhost:8000",
		AllowMethods:     "GET,POST,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Static("/uploads", uploadStore.Dir())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.WithError(err).Error("server shutdown failed")
		}
	}()

	log.WithField("port", settings.Port).Info("pda-server listening")
	if err := app.Listen(":" + settings.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
