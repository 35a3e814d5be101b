package marketplace

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	selectLead    = `SELECT requirementName, quantity, budget FROM leads WHERE id = ?`
	selectProduct = `SELECT name, price, gstPercent FROM products WHERE id = ?`
)

// Catalog reads lead and product snapshots from the marketplace database.
// Leads are buyer requirements; products and services share the products
// table.
type Catalog struct {
	db *sql.DB
}

var _ interfaces.ICatalog = (*Catalog)(nil)

func NewCatalog(db *sql.DB) *Catalog {
	return &Catalog{db: db}
}

// GetEntitySnapshot returns nil, nil when the entity does not exist.
func (c *Catalog) GetEntitySnapshot(ctx context.Context, entityID string, entityType entities.EntityType) (*entities.EntitySnapshot, error) {
	if c == nil || c.db == nil {
		return nil, errors.New("catalog not configured")
	}

	snap := &entities.EntitySnapshot{ID: entityID, Type: entityType}
	var title, a, b sql.NullString
	var err error
	switch entityType {
	case entities.EntityTypeLead:
		err = c.db.QueryRowContext(ctx, selectLead, entityID).Scan(&title, &a, &b)
		snap.Quantity = parseAmount(a)
		snap.Budget = parseAmount(b)
	case entities.EntityTypeProduct, entities.EntityTypeService:
		err = c.db.QueryRowContext(ctx, selectProduct, entityID).Scan(&title, &a, &b)
		snap.Budget = parseAmount(a)
		snap.GSTPercent = parseAmount(b)
	default:
		return nil, fmt.Errorf("unknown entity type %q", entityType)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog lookup %s %s: %w", entityType, entityID, err)
	}
	snap.Title = strings.TrimSpace(title.String)
	return snap, nil
}

// parseAmount reads DECIMAL/INT columns, which the driver returns as text.
func parseAmount(v sql.NullString) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.String))
	if err != nil {
		return decimal.Zero
	}
	return d
}
