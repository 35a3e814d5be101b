package marketplace

import (
	"context"
	"testing"

	"blind_negotiation/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestCatalog_GetEntitySnapshot(t *testing.T) {
	tables := fakeTables{
		"leads": {
			"lead-1": {"  50 Units IP Cameras ", []byte("50"), []byte("125000.00")},
			"lead-2": {"Cables", nil, nil},
		},
		"products": {
			"prod-1": {"Steel Rod", []byte("1000.50"), []byte("12")},
		},
	}

	tests := []struct {
		name       string
		entityID   string
		entityType entities.EntityType
		wantNil    bool
		title      string
		quantity   decimal.Decimal
		budget     decimal.Decimal
		gst        decimal.Decimal
	}{
		{name: "lead", entityID: "lead-1", entityType: entities.EntityTypeLead, title: "50 Units IP Cameras",
			quantity: decimal.NewFromInt(50), budget: decimal.NewFromInt(125000), gst: decimal.Zero},
		{name: "lead with null amounts", entityID: "lead-2", entityType: entities.EntityTypeLead, title: "Cables",
			quantity: decimal.Zero, budget: decimal.Zero, gst: decimal.Zero},
		{name: "product", entityID: "prod-1", entityType: entities.EntityTypeProduct, title: "Steel Rod",
			quantity: decimal.Zero, budget: decimal.RequireFromString("1000.50"), gst: decimal.NewFromInt(12)},
		{name: "service reads products", entityID: "prod-1", entityType: entities.EntityTypeService, title: "Steel Rod",
			quantity: decimal.Zero, budget: decimal.RequireFromString("1000.50"), gst: decimal.NewFromInt(12)},
		{name: "missing lead", entityID: "lead-9", entityType: entities.EntityTypeLead, wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCatalog(openFakeDB(t, tables))
			snap, err := c.GetEntitySnapshot(context.Background(), tt.entityID, tt.entityType)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if snap != nil {
					t.Fatalf("expected nil snapshot, got %+v", snap)
				}
				return
			}
			if snap == nil {
				t.Fatalf("expected snapshot")
			}
			if snap.Title != tt.title || !snap.Quantity.Equal(tt.quantity) || !snap.Budget.Equal(tt.budget) || !snap.GSTPercent.Equal(tt.gst) {
				t.Fatalf("unexpected snapshot %+v", snap)
			}
			if snap.Type != tt.entityType || snap.ID != tt.entityID {
				t.Fatalf("unexpected identity %+v", snap)
			}
		})
	}
}

func TestCatalog_Errors(t *testing.T) {
	t.Run("unknown type", func(t *testing.T) {
		c := NewCatalog(openFakeDB(t, fakeTables{}))
		if _, err := c.GetEntitySnapshot(context.Background(), "x", entities.EntityType("BOAT")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("database down", func(t *testing.T) {
		c := NewCatalog(openFakeDB(t, nil))
		if _, err := c.GetEntitySnapshot(context.Background(), "lead-1", entities.EntityTypeLead); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var c *Catalog
		if _, err := c.GetEntitySnapshot(context.Background(), "lead-1", entities.EntityTypeLead); err == nil {
			t.Fatalf("expected error")
		}
	})
}
