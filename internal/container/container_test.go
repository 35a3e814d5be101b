package container

import (
	"context"
	"testing"
	"time"

	"blind_negotiation/internal/config"
	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/usecase"

	"github.com/shopspring/decimal"
)

func memoryConfig() config.Config {
	return config.Config{
		NegotiationStore:      config.StoreMemory,
		GovernanceFee:         decimal.NewFromInt(25),
		GovernanceFeeCurrency: "INR",
		CollaboratorTimeout:   time.Second,
		SaveMaxAttempts:       3,
	}
}

func TestNew_MemoryStore(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	c, err := New(context.Background(), memoryConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer c.Close()

	if c.NegotiationHandler == nil || c.GovernancePaymentHandler == nil || c.RealtimeHandler == nil {
		t.Fatalf("handlers not wired: %+v", c)
	}

	offer := decimal.NewFromInt(1000)
	update, err := c.Negotiations.Start(context.Background(), usecase.StartInput{
		EntityID: "lead-1", EntityType: entities.EntityTypeLead, BuyerID: "buyer-0001", SellerID: "seller-0002", Offer: &offer,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	sub := c.Hub.Subscribe(update.NegotiationID, "buyer-0001")
	defer c.Hub.Unsubscribe(sub)
	if _, err := c.Negotiations.SendMessage(context.Background(), update.NegotiationID, "buyer-0001", "hello", ""); err != nil {
		t.Fatalf("send: %v", err)
	}
	select {
	case <-sub.C():
	case <-time.After(2 * time.Second):
		t.Fatal("expected the hub to receive the update")
	}
}

func TestNew_UnknownStore(t *testing.T) {
	cfg := memoryConfig()
	cfg.NegotiationStore = "postgres"
	if _, err := New(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown store")
	}
}
