package negotiation

import "errors"

// Error kinds surfaced by the negotiation core. Detailed errors wrap one of
// these with %w so callers can branch with errors.Is.
var (
	ErrValidation              = errors.New("validation error")
	ErrInvalidState            = errors.New("invalid state")
	ErrNotAParticipant         = errors.New("not a participant")
	ErrConflict                = errors.New("version conflict")
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")
)
