package interfaces

import (
	"context"

	"blind_negotiation/internal/domain/entities"
)

// INegotiationRepository abstracts persistence of Negotiation records.
//
// The negotiation core must be able to:
//   - load a record by id (zero value, nil error when missing)
//   - save a record only if its stored version still equals expectedVersion
//     (expectedVersion 0 means "must not exist yet"); a mismatch returns an
//     error wrapping negotiation.ErrConflict
//   - list every record where a user is buyer or seller

type INegotiationRepository interface {
	Load(ctx context.Context, id string) (entities.Negotiation, error)
	Save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error)
	ListByParty(ctx context.Context, userID string) ([]entities.Negotiation, error)
}
