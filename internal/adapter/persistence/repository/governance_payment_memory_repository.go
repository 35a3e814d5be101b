package repository

import (
	"context"
	"fmt"
	"sync"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/usecase/interfaces"
)

type GovernancePaymentMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.GovernancePayment
	order []string
}

var _ interfaces.IGovernancePaymentRepository = (*GovernancePaymentMemoryRepository)(nil)

func NewGovernancePaymentMemoryRepository() *GovernancePaymentMemoryRepository {
	return &GovernancePaymentMemoryRepository{items: make(map[string]entities.GovernancePayment)}
}

func (r *GovernancePaymentMemoryRepository) Create(ctx context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error) {
	if err := ctx.Err(); err != nil {
		return entities.GovernancePayment{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.GovernancePayment{}, fmt.Errorf("governance payment %s already exists", p.ID)
	}
	r.items[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *GovernancePaymentMemoryRepository) GetByID(ctx context.Context, id string) (entities.GovernancePayment, error) {
	if err := ctx.Err(); err != nil {
		return entities.GovernancePayment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *GovernancePaymentMemoryRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.GovernancePayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.GovernancePayment, 0)
	for _, id := range r.order {
		if p := r.items[id]; p.NegotiationID == negotiationID {
			out = append(out, p)
		}
	}
	return out, nil
}
