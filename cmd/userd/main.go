package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ad/go-quiz-backend/internal/config"
	"github.com/ad/go-quiz-backend/internal/db"
	"github.com/ad/go-quiz-backend/internal/handlers"
	"github.com/ad/go-quiz-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load(":5050")

	scheme, err := db.SchemeByName(cfg.CredentialScheme)
	if err != nil {
		log.Fatalf("Invalid CREDENTIAL_SCHEME: %v", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	if err := db.InitUserSchema(sqlDB); err != nil {
		log.Fatalf("Failed to initialize user schema: %v", err)
	}

	gateway := db.NewGateway(sqlDB)
	userRepo := db.NewUserRepository(gateway, scheme)
	userService := services.NewUserService(userRepo)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())

	handlers.NewUserHandler(userService).Register(app)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		log.Printf("user service listening on %s", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
