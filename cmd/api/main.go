package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"blind_negotiation/internal/adapter/http/routes"
	"blind_negotiation/internal/config"
	"blind_negotiation/internal/container"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Blind Negotiation API
// @version         1.0
// @description     Blind B2B negotiation with governance-fee identity unlock, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	logger, closeLog := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	slog.SetDefault(logger)

	err := run(cfg)
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to start the application", "err", err)
		return err
	}
	defer c.Close()

	if err := routes.Run(ctx, cfg.Port, c); err != nil {
		slog.Error("server stopped", "err", err)
		return err
	}
	return nil
}
