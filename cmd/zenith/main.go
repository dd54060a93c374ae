package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/zenithfest/zenith/internal/api"
	"github.com/zenithfest/zenith/internal/config"
	"github.com/zenithfest/zenith/internal/db"
	"github.com/zenithfest/zenith/internal/mail"
	"github.com/zenithfest/zenith/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure(), cfg.PhoneRegion, buildMailer(cfg))
	if err := handler.EventService().EnsureBuiltinEvents(); err != nil {
		log.Fatalf("seed events failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Zenith",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Zenith listening on %s (env: %s, db: %s)", cfg.Addr, cfg.AppEnv, cfg.DBPath)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func buildMailer(cfg config.Config) services.Mailer {
	if !cfg.SMTPConfigured() {
		log.Println("SMTP not configured, logging emails instead")
		return mail.NewLogMailer()
	}
	return mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		BaseURL:  cfg.BaseURL,
	})
}
