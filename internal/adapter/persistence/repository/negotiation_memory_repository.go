package repository

import (
	"context"
	"fmt"
	"sync"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/usecase/interfaces"
)

// NegotiationMemoryRepository keeps negotiations in process memory with the
// same version semantics as NegotiationDynamoRepository. Used for local runs
// and tests.
type NegotiationMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Negotiation
	order []string
}

var _ interfaces.INegotiationRepository = (*NegotiationMemoryRepository)(nil)

func NewNegotiationMemoryRepository() *NegotiationMemoryRepository {
	return &NegotiationMemoryRepository{items: make(map[string]entities.Negotiation)}
}

func (r *NegotiationMemoryRepository) Load(ctx context.Context, id string) (entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Negotiation{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return entities.Negotiation{}, nil
	}
	return n.Clone(), nil
}

func (r *NegotiationMemoryRepository) Save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Negotiation{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[n.ID]
	switch {
	case !ok && expectedVersion != 0:
		return entities.Negotiation{}, fmt.Errorf("%w: negotiation %s does not exist", negotiation.ErrConflict, n.ID)
	case ok && stored.Version != expectedVersion:
		return entities.Negotiation{}, fmt.Errorf("%w: negotiation %s is no longer at version %d", negotiation.ErrConflict, n.ID, expectedVersion)
	}

	n.Version = expectedVersion + 1
	if !ok {
		r.order = append(r.order, n.ID)
	}
	r.items[n.ID] = n.Clone()
	return n.Clone(), nil
}

// ListByParty returns userID's negotiations in insertion order.
func (r *NegotiationMemoryRepository) ListByParty(ctx context.Context, userID string) ([]entities.Negotiation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Negotiation
	for _, id := range r.order {
		n := r.items[id]
		if n.BuyerID == userID || n.SellerID == userID {
			out = append(out, n.Clone())
		}
	}
	return out, nil
}
