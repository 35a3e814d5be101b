// Package container wires the negotiation service from configuration.
package container

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"blind_negotiation/internal/adapter/http/handlers"
	"blind_negotiation/internal/adapter/persistence/marketplace"
	"blind_negotiation/internal/adapter/persistence/repository"
	"blind_negotiation/internal/adapter/realtime"
	"blind_negotiation/internal/config"
	"blind_negotiation/internal/infrastructure/database"
	"blind_negotiation/internal/infrastructure/payments"
	"blind_negotiation/internal/usecase"
	"blind_negotiation/internal/usecase/interfaces"
)

// Container holds the long-lived collaborators of the service.
type Container struct {
	Hub          *realtime.Hub
	Negotiations *usecase.NegotiationUseCase
	Payments     *usecase.GovernancePaymentUseCase

	NegotiationHandler       *handlers.NegotiationHandler
	GovernancePaymentHandler *handlers.GovernancePaymentHandler
	RealtimeHandler          *handlers.RealtimeHandler

	mysql *sql.DB
}

// New builds every collaborator. Only the negotiation store is mandatory:
// a missing payment gateway or marketplace database degrades the matching
// operations instead of failing startup.
func New(ctx context.Context, cfg config.Config) (*Container, error) {
	negotiationRepo, paymentRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		slog.Warn("[container] Mercado Pago gateway not configured", "err", err)
	} else {
		gateway = mpGateway
	}
	paymentUseCase := usecase.NewGovernancePaymentUseCase(paymentRepo, gateway)

	c := &Container{Hub: realtime.NewHub(), Payments: paymentUseCase}

	var (
		directory interfaces.IUserDirectory
		catalog   interfaces.ICatalog
	)
	if cfg.MySQLHost != "" {
		db, err := database.ConnectMySQL(ctx, database.MySQLConfig{
			User:     cfg.MySQLUser,
			Password: cfg.MySQLPassword,
			Host:     cfg.MySQLHost,
			Database: cfg.MySQLDatabase,
		})
		if db != nil {
			c.mysql = db
			directory = marketplace.NewUserDirectory(db)
			catalog = marketplace.NewCatalog(db)
		}
		if err != nil {
			slog.Warn("[container] marketplace database unavailable, lookups will degrade", "err", err)
		}
	}

	c.Negotiations = usecase.NewNegotiationUseCase(negotiationRepo, c.Hub, directory, catalog, paymentUseCase, usecase.NegotiationConfig{
		GovernanceFee:         cfg.GovernanceFee,
		GovernanceFeeCurrency: cfg.GovernanceFeeCurrency,
		CollaboratorTimeout:   cfg.CollaboratorTimeout,
		SaveMaxAttempts:       cfg.SaveMaxAttempts,
	})

	c.NegotiationHandler = handlers.NewNegotiationHandler(c.Negotiations)
	c.GovernancePaymentHandler = handlers.NewGovernancePaymentHandler(c.Payments, c.Negotiations)
	c.RealtimeHandler = handlers.NewRealtimeHandler(c.Hub, c.Negotiations)
	return c, nil
}

func newRepositories(ctx context.Context, cfg config.Config) (interfaces.INegotiationRepository, interfaces.IGovernancePaymentRepository, error) {
	switch cfg.NegotiationStore {
	case config.StoreMemory:
		slog.Info("[container] using in-memory negotiation store")
		return repository.NewNegotiationMemoryRepository(), repository.NewGovernancePaymentMemoryRepository(), nil
	case config.StoreDynamoDB, "":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repository.NewNegotiationDynamoRepository(ddb, cfg.NegotiationsTable),
			repository.NewGovernancePaymentDynamoRepository(ddb, cfg.GovernancePaymentsTable), nil
	default:
		return nil, nil, fmt.Errorf("unknown negotiation store %q", cfg.NegotiationStore)
	}
}

// Close releases pooled connections.
func (c *Container) Close() error {
	if c.mysql != nil {
		return c.mysql.Close()
	}
	return nil
}
