package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hunter-fitness-system/config"
	"hunter-fitness-system/handlers"
	"hunter-fitness-system/middleware"
	"hunter-fitness-system/models"
	"hunter-fitness-system/services"
	"hunter-fitness-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Quest{},
		&models.UserQuest{},
		&models.Workout{},
		&models.ShopItem{},
		&models.UserItem{},
		&models.Event{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	generator := services.NewGenerator(rng)

	userService := services.NewUserService(db, cfg.SessionTTL)
	progressionService := services.NewProgressionService(db)
	questService := services.NewQuestService(db, generator, progressionService)
	workoutService := services.NewWorkoutService(db, generator, rng)
	shopService := services.NewShopService(db)
	eventService := services.NewEventService(db)

	if err := services.Seed(db, userService, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to seed database")
	}

	sched, err := workers.StartMaintenance(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start maintenance scheduler")
	}

	app := fiber.New(fiber.Config{
		AppName: "hunter-fitness-system",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	app.Use(middleware.SessionContext(userService))

	handlers.SetupAuthRoutes(app, userService)
	handlers.SetupUserRoutes(app, userService)
	handlers.SetupQuestRoutes(app, questService, progressionService)
	handlers.SetupWorkoutRoutes(app, workoutService)
	handlers.SetupShopRoutes(app, shopService)
	handlers.SetupEventRoutes(app, eventService)
	handlers.SetupProgressionRoutes(app, progressionService, userService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("✅ Server running")
	log.Info().Msg("✅ Maintenance scheduler running (hourly sweeps)")

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	if err := sched.Shutdown(); err != nil {
		log.Error().Err(err).Msg("scheduler shutdown failed")
	}
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
