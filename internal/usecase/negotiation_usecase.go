package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/domain/visibility"
	"blind_negotiation/internal/infrastructure/metrics"
	"blind_negotiation/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrNegotiationNotFound = errors.New("negotiation not found")

const (
	defaultSaveMaxAttempts     = 3
	defaultCollaboratorTimeout = 5 * time.Second
)

// INegotiationUseCase is the negotiation orchestrator.
//
// Every mutating operation is atomic per negotiation id: it either persists
// the whole transition and broadcasts the appended messages, or persists
// nothing and returns a typed error (see internal/domain/negotiation).
type INegotiationUseCase interface {
	Start(ctx context.Context, in StartInput) (entities.NegotiationUpdate, error)
	SendMessage(ctx context.Context, negotiationID, senderID, text, idempotencyKey string) (entities.NegotiationUpdate, error)
	SendQuote(ctx context.Context, negotiationID, senderID string, p negotiation.QuoteProposal, idempotencyKey string) (entities.NegotiationUpdate, error)
	Accept(ctx context.Context, negotiationID, actorID string) (entities.NegotiationUpdate, error)
	PayGovernanceFee(ctx context.Context, negotiationID, payerID string, payload json.RawMessage) (entities.NegotiationUpdate, error)
	Finalize(ctx context.Context, negotiationID, actorID string) (entities.NegotiationUpdate, error)
	Withdraw(ctx context.Context, negotiationID, actorID, reason string) (entities.NegotiationUpdate, error)
	Get(ctx context.Context, negotiationID, viewerID string) (visibility.NegotiationView, error)
	ListForUser(ctx context.Context, userID string) ([]visibility.NegotiationView, error)
	QuoteDraft(ctx context.Context, negotiationID, senderID string) (QuoteDraft, error)
}

// NegotiationConfig tunes the orchestrator.
type NegotiationConfig struct {
	GovernanceFee         decimal.Decimal
	GovernanceFeeCurrency string
	CollaboratorTimeout   time.Duration
	SaveMaxAttempts       int
}

// MessageInput is a message carried by a start request. A non-nil Quote
// makes it a quote message.
type MessageInput struct {
	SenderID       string
	Text           string
	IdempotencyKey string
	Quote          *negotiation.QuoteProposal
}

// StartInput is the single entry point payload: it creates the negotiation
// for (EntityID, BuyerID, SellerID) or merges Offer, Messages and Status into
// the existing one.
type StartInput struct {
	ActorID    string
	EntityID   string
	EntityType entities.EntityType
	BuyerID    string
	SellerID   string
	Offer      *decimal.Decimal
	Status     *entities.NegotiationStatus
	Messages   []MessageInput
}

// QuoteDraft is a pre-filled quote form. Source tells where the values came
// from: "catalog", "last_quote" or "defaults".
type QuoteDraft struct {
	ProductName        string
	Price              decimal.Decimal
	Quantity           decimal.Decimal
	Discount           decimal.Decimal
	VisitCharge        decimal.Decimal
	InstallationCharge decimal.Decimal
	OtherCharges       decimal.Decimal
	GSTPercent         decimal.Decimal
	DeliveryDays       int
	InstallationTime   string
	TermsAndConditions string
	Source             string
}

type NegotiationUseCase struct {
	repo      interfaces.INegotiationRepository
	publisher interfaces.IRealtimePublisher
	directory interfaces.IUserDirectory
	catalog   interfaces.ICatalog
	payments  interfaces.IPaymentConfirmation

	machine *negotiation.Machine
	locks   *keyedLock
	cfg     NegotiationConfig
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	repo interfaces.INegotiationRepository,
	publisher interfaces.IRealtimePublisher,
	directory interfaces.IUserDirectory,
	catalog interfaces.ICatalog,
	payments interfaces.IPaymentConfirmation,
	cfg NegotiationConfig,
) *NegotiationUseCase {
	if cfg.SaveMaxAttempts <= 0 {
		cfg.SaveMaxAttempts = defaultSaveMaxAttempts
	}
	if cfg.CollaboratorTimeout <= 0 {
		cfg.CollaboratorTimeout = defaultCollaboratorTimeout
	}
	return &NegotiationUseCase{
		repo:      repo,
		publisher: publisher,
		directory: directory,
		catalog:   catalog,
		payments:  payments,
		machine:   negotiation.NewMachine(),
		locks:     newKeyedLock(),
		cfg:       cfg,
	}
}

// mutation is what an apply step did to the cloned record.
type mutation struct {
	appended []entities.Message
	// changed is false when the record must not be saved.
	changed bool
	// duplicate marks an idempotent retry answered with stored messages.
	duplicate bool
}

type applyFunc func(n *entities.Negotiation) (mutation, error)

// Start creates the negotiation for the party triple, or applies the update
// to it when it already exists. Both branches end in one atomic save.
func (u *NegotiationUseCase) Start(ctx context.Context, in StartInput) (entities.NegotiationUpdate, error) {
	in.EntityID = strings.TrimSpace(in.EntityID)
	in.BuyerID = strings.TrimSpace(in.BuyerID)
	in.SellerID = strings.TrimSpace(in.SellerID)
	in.ActorID = strings.TrimSpace(in.ActorID)
	if in.ActorID == "" {
		in.ActorID = in.BuyerID
	}
	if in.EntityID == "" || in.BuyerID == "" || in.SellerID == "" {
		return entities.NegotiationUpdate{}, fmt.Errorf("%w: entity_id, buyer_id and seller_id are required", negotiation.ErrValidation)
	}
	if in.ActorID != in.BuyerID && in.ActorID != in.SellerID {
		return entities.NegotiationUpdate{}, fmt.Errorf("%w: %q", negotiation.ErrNotAParticipant, in.ActorID)
	}

	id := negotiation.DeriveID(in.EntityID, in.BuyerID, in.SellerID)
	unlock, err := u.locks.Lock(ctx, id)
	if err != nil {
		return entities.NegotiationUpdate{}, err
	}
	defer unlock()

	create := func() (entities.Negotiation, error) {
		return u.create(in)
	}
	apply := func(n *entities.Negotiation) (mutation, error) {
		return u.applyUpdate(n, in)
	}
	return u.mutateLocked(ctx, "start", id, create, apply)
}

// create builds the new record. Offer, if any, becomes the initial offer;
// messages and status are merged afterwards by applyUpdate.
func (u *NegotiationUseCase) create(in StartInput) (entities.Negotiation, error) {
	offer := decimal.Zero
	if in.Offer != nil {
		offer = *in.Offer
	}
	n, err := u.machine.Create(negotiation.CreateParams{
		EntityID:     in.EntityID,
		EntityType:   in.EntityType,
		BuyerID:      in.BuyerID,
		SellerID:     in.SellerID,
		InitialOffer: offer,
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	slog.Info("[negotiation][usecase] created", "negotiation_id", n.ID, "entity_id", n.EntityID, "actor_id", in.ActorID)
	return n, nil
}

// applyUpdate merges a start request into an existing record: offer first,
// then messages in order, then the requested status.
func (u *NegotiationUseCase) applyUpdate(n *entities.Negotiation, in StartInput) (mutation, error) {
	var res mutation
	duplicates := 0

	if in.Offer != nil {
		changed, err := u.machine.UpdateOffer(n, *in.Offer)
		if err != nil {
			return mutation{}, err
		}
		res.changed = res.changed || changed
	}

	for _, mi := range in.Messages {
		senderID := strings.TrimSpace(mi.SenderID)
		if senderID == "" {
			senderID = in.ActorID
		}
		if existing, ok := n.FindByIdempotencyKey(senderID, mi.IdempotencyKey); ok {
			res.appended = append(res.appended, existing)
			duplicates++
			continue
		}

		var (
			msg entities.Message
			err error
		)
		if mi.Quote != nil {
			msg, err = u.machine.SendQuote(n, senderID, *mi.Quote, mi.IdempotencyKey)
		} else {
			msg, err = u.machine.SendMessage(n, senderID, mi.Text, mi.IdempotencyKey)
		}
		if err != nil {
			return mutation{}, err
		}
		res.appended = append(res.appended, msg)
		res.changed = true
	}

	if in.Status != nil {
		msgs, err := u.machine.RequestStatus(n, in.ActorID, *in.Status)
		if err != nil {
			return mutation{}, err
		}
		if len(msgs) > 0 {
			res.appended = append(res.appended, msgs...)
			res.changed = true
		}
	}

	res.duplicate = duplicates > 0 && !res.changed
	return res, nil
}

func (u *NegotiationUseCase) SendMessage(ctx context.Context, negotiationID, senderID, text, idempotencyKey string) (entities.NegotiationUpdate, error) {
	return u.mutate(ctx, "send_message", negotiationID, func(n *entities.Negotiation) (mutation, error) {
		if existing, ok := n.FindByIdempotencyKey(senderID, idempotencyKey); ok {
			return mutation{appended: []entities.Message{existing}, duplicate: true}, nil
		}
		msg, err := u.machine.SendMessage(n, senderID, text, idempotencyKey)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: []entities.Message{msg}, changed: true}, nil
	})
}

func (u *NegotiationUseCase) SendQuote(ctx context.Context, negotiationID, senderID string, p negotiation.QuoteProposal, idempotencyKey string) (entities.NegotiationUpdate, error) {
	return u.mutate(ctx, "send_quote", negotiationID, func(n *entities.Negotiation) (mutation, error) {
		if existing, ok := n.FindByIdempotencyKey(senderID, idempotencyKey); ok {
			return mutation{appended: []entities.Message{existing}, duplicate: true}, nil
		}
		msg, err := u.machine.SendQuote(n, senderID, p, idempotencyKey)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: []entities.Message{msg}, changed: true}, nil
	})
}

func (u *NegotiationUseCase) Accept(ctx context.Context, negotiationID, actorID string) (entities.NegotiationUpdate, error) {
	return u.mutate(ctx, "accept", negotiationID, func(n *entities.Negotiation) (mutation, error) {
		msg, err := u.machine.Accept(n, actorID)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: []entities.Message{msg}, changed: true}, nil
	})
}

func (u *NegotiationUseCase) Finalize(ctx context.Context, negotiationID, actorID string) (entities.NegotiationUpdate, error) {
	return u.mutate(ctx, "finalize", negotiationID, func(n *entities.Negotiation) (mutation, error) {
		msg, err := u.machine.Finalize(n, actorID)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: []entities.Message{msg}, changed: true}, nil
	})
}

func (u *NegotiationUseCase) Withdraw(ctx context.Context, negotiationID, actorID, reason string) (entities.NegotiationUpdate, error) {
	return u.mutate(ctx, "withdraw", negotiationID, func(n *entities.Negotiation) (mutation, error) {
		msg, err := u.machine.Withdraw(n, actorID, reason)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: []entities.Message{msg}, changed: true}, nil
	})
}

// PayGovernanceFee charges payerID's fee through the payment collaborator and
// records the returned reference. The negotiation stays locked from the
// eligibility check until the reference is saved.
func (u *NegotiationUseCase) PayGovernanceFee(ctx context.Context, negotiationID, payerID string, payload json.RawMessage) (entities.NegotiationUpdate, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.NegotiationUpdate{}, fmt.Errorf("%w: negotiation id is required", negotiation.ErrValidation)
	}
	if u.payments == nil {
		return entities.NegotiationUpdate{}, errors.New("payment confirmation not configured")
	}

	unlock, err := u.locks.Lock(ctx, negotiationID)
	if err != nil {
		return entities.NegotiationUpdate{}, err
	}
	defer unlock()

	current, err := u.load(ctx, negotiationID)
	if err != nil {
		return entities.NegotiationUpdate{}, err
	}
	if current.ID == "" {
		return entities.NegotiationUpdate{}, ErrNegotiationNotFound
	}
	role, err := u.machine.CheckGovernanceFee(&current, payerID)
	if err != nil {
		metrics.Operations.WithLabelValues("pay_governance_fee", outcomeOf(err)).Inc()
		return entities.NegotiationUpdate{}, err
	}

	pctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
	ref, err := u.payments.ConfirmPayment(pctx, entities.GovernanceFeeRequest{
		NegotiationID: negotiationID,
		PayerID:       payerID,
		Role:          role,
		Amount:        u.cfg.GovernanceFee,
		Currency:      u.cfg.GovernanceFeeCurrency,
		Payload:       payload,
	})
	cancel()
	if err != nil {
		slog.Warn("[negotiation][usecase] governance fee not confirmed", "negotiation_id", negotiationID, "actor_id", payerID, "err", err)
		metrics.Operations.WithLabelValues("pay_governance_fee", outcomeOf(err)).Inc()
		return entities.NegotiationUpdate{}, err
	}

	update, err := u.mutateLocked(ctx, "pay_governance_fee", negotiationID, nil, func(n *entities.Negotiation) (mutation, error) {
		msgs, err := u.machine.RecordGovernanceFee(n, payerID, ref)
		if err != nil {
			return mutation{}, err
		}
		return mutation{appended: msgs, changed: true}, nil
	})
	if err != nil {
		slog.Error("[negotiation][usecase] governance fee charged but not recorded",
			"negotiation_id", negotiationID, "actor_id", payerID, "payment_ref", ref, "err", err)
		return entities.NegotiationUpdate{}, err
	}
	return update, nil
}

// Get returns the negotiation as seen by viewerID. Profiles are looked up only
// once identities are unlocked; a failing directory degrades to placeholder names.
func (u *NegotiationUseCase) Get(ctx context.Context, negotiationID, viewerID string) (visibility.NegotiationView, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return visibility.NegotiationView{}, fmt.Errorf("%w: negotiation id is required", negotiation.ErrValidation)
	}
	n, err := u.load(ctx, negotiationID)
	if err != nil {
		return visibility.NegotiationView{}, err
	}
	if n.ID == "" {
		return visibility.NegotiationView{}, ErrNegotiationNotFound
	}
	if !n.IsParticipant(viewerID) {
		return visibility.NegotiationView{}, fmt.Errorf("%w: %q", negotiation.ErrNotAParticipant, viewerID)
	}
	return visibility.BuildView(&n, viewerID, u.profilesFor(ctx, &n, visibility.Profiles{})), nil
}

// ListForUser returns every negotiation userID takes part in, newest first.
// Records created in the same instant stay in creation order (ascending
// Sequence) whatever order the repository returns them in.
func (u *NegotiationUseCase) ListForUser(ctx context.Context, userID string) ([]visibility.NegotiationView, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", negotiation.ErrValidation)
	}

	lctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
	list, err := u.repo.ListByParty(lctx, userID)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: list negotiations for %s: %w", negotiation.ErrCollaboratorUnavailable, userID, err)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].Sequence < list[j].Sequence
	})

	profiles := visibility.Profiles{}
	out := make([]visibility.NegotiationView, 0, len(list))
	for i := range list {
		n := &list[i]
		if !n.IsParticipant(userID) {
			continue
		}
		out = append(out, visibility.BuildView(n, userID, u.profilesFor(ctx, n, profiles)))
	}
	return out, nil
}

// QuoteDraft pre-fills a quote form for senderID. Catalog data wins; when the
// catalog has nothing (or is down) the last quote on record is reused.
func (u *NegotiationUseCase) QuoteDraft(ctx context.Context, negotiationID, senderID string) (QuoteDraft, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return QuoteDraft{}, fmt.Errorf("%w: negotiation id is required", negotiation.ErrValidation)
	}
	n, err := u.load(ctx, negotiationID)
	if err != nil {
		return QuoteDraft{}, err
	}
	if n.ID == "" {
		return QuoteDraft{}, ErrNegotiationNotFound
	}
	if !n.IsParticipant(senderID) {
		return QuoteDraft{}, fmt.Errorf("%w: %q", negotiation.ErrNotAParticipant, senderID)
	}

	draft := QuoteDraft{
		Price:              n.CurrentOffer,
		Quantity:           decimal.NewFromInt(1),
		GSTPercent:         decimal.NewFromInt(18),
		DeliveryDays:       3,
		InstallationTime:   "2 Hours",
		TermsAndConditions: "Standard warranty applied. Subject to site readiness.",
		Source:             "defaults",
	}

	if snap := u.entitySnapshot(ctx, &n); snap != nil {
		draft.ProductName = snap.Title
		if snap.Quantity.IsPositive() {
			draft.Quantity = snap.Quantity
		}
		if snap.Budget.IsPositive() {
			draft.Price = snap.Budget
		}
		if snap.GSTPercent.IsPositive() {
			draft.GSTPercent = snap.GSTPercent
		}
		draft.Source = "catalog"
		return draft, nil
	}

	if last, ok := n.LastQuote(); ok && last.QuoteDetails != nil {
		q := last.QuoteDetails
		draft.ProductName = q.ProductName
		draft.Price = q.Price
		draft.Quantity = q.Quantity
		draft.Discount = q.Discount
		draft.VisitCharge = q.VisitCharge
		draft.InstallationCharge = q.InstallationCharge
		draft.OtherCharges = q.OtherCharges
		draft.GSTPercent = q.GSTPercent
		if q.DeliveryDays > 0 {
			draft.DeliveryDays = q.DeliveryDays
		}
		if q.InstallationTime != "" {
			draft.InstallationTime = q.InstallationTime
		}
		if q.TermsAndConditions != "" {
			draft.TermsAndConditions = q.TermsAndConditions
		}
		draft.Source = "last_quote"
	}
	return draft, nil
}

func (u *NegotiationUseCase) entitySnapshot(ctx context.Context, n *entities.Negotiation) *entities.EntitySnapshot {
	if u.catalog == nil {
		return nil
	}
	cctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
	defer cancel()
	snap, err := u.catalog.GetEntitySnapshot(cctx, n.EntityID, n.EntityType)
	if err != nil {
		slog.Warn("[negotiation][usecase] catalog lookup failed", "negotiation_id", n.ID, "entity_id", n.EntityID, "err", err)
		return nil
	}
	return snap
}

// profilesFor fills cache with the directory profiles of n's parties when n
// is unlocked and returns it.
func (u *NegotiationUseCase) profilesFor(ctx context.Context, n *entities.Negotiation, cache visibility.Profiles) visibility.Profiles {
	if !n.Status.IsUnlocked() || u.directory == nil {
		return cache
	}
	for _, id := range []string{n.BuyerID, n.SellerID} {
		if _, ok := cache[id]; ok {
			continue
		}
		dctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
		p, err := u.directory.GetProfile(dctx, id)
		cancel()
		if err != nil {
			slog.Warn("[negotiation][usecase] directory lookup failed", "negotiation_id", n.ID, "user_id", id, "err", err)
			continue
		}
		cache[id] = p
	}
	return cache
}

func (u *NegotiationUseCase) mutate(ctx context.Context, op, negotiationID string, apply applyFunc) (entities.NegotiationUpdate, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.NegotiationUpdate{}, fmt.Errorf("%w: negotiation id is required", negotiation.ErrValidation)
	}
	unlock, err := u.locks.Lock(ctx, negotiationID)
	if err != nil {
		return entities.NegotiationUpdate{}, err
	}
	defer unlock()
	return u.mutateLocked(ctx, op, negotiationID, nil, apply)
}

// mutateLocked runs load, apply and a versioned save, re-reading and
// re-applying on a version conflict so a concurrent writer's messages are
// kept. create is used when the record does not exist; nil means the
// operation needs an existing record.
func (u *NegotiationUseCase) mutateLocked(ctx context.Context, op, negotiationID string, create func() (entities.Negotiation, error), apply applyFunc) (update entities.NegotiationUpdate, err error) {
	defer func() {
		outcome := outcomeOf(err)
		if err == nil && update.Duplicate {
			outcome = "duplicate"
		}
		metrics.Operations.WithLabelValues(op, outcome).Inc()
	}()

	var lastErr error
	for attempt := 1; attempt <= u.cfg.SaveMaxAttempts; attempt++ {
		current, err := u.load(ctx, negotiationID)
		if err != nil {
			return entities.NegotiationUpdate{}, err
		}

		created := false
		if current.ID == "" {
			if create == nil {
				return entities.NegotiationUpdate{}, ErrNegotiationNotFound
			}
			if current, err = create(); err != nil {
				return entities.NegotiationUpdate{}, err
			}
			created = true
		}

		next := current.Clone()
		res, err := apply(&next)
		if err != nil {
			return entities.NegotiationUpdate{}, err
		}
		if !res.changed && !created {
			update := entities.NewNegotiationUpdate(current, res.appended, u.machine.Now())
			update.Duplicate = res.duplicate
			return update, nil
		}

		saved, err := u.save(ctx, next, current.Version)
		if errors.Is(err, negotiation.ErrConflict) {
			metrics.SaveConflicts.Inc()
			slog.Warn("[negotiation][usecase] version conflict, retrying",
				"negotiation_id", negotiationID, "op", op, "attempt", attempt, "expected_version", current.Version)
			lastErr = err
			continue
		}
		if err != nil {
			return entities.NegotiationUpdate{}, err
		}

		if created || saved.Status != current.Status {
			metrics.StatusTransitions.WithLabelValues(string(saved.Status)).Inc()
		}
		slog.Info("[negotiation][usecase] saved",
			"negotiation_id", saved.ID, "op", op, "status", saved.Status, "version", saved.Version, "appended", len(res.appended))

		update := entities.NewNegotiationUpdate(saved, res.appended, u.machine.Now())
		u.publish(ctx, update)
		return update, nil
	}
	return entities.NegotiationUpdate{}, fmt.Errorf("save negotiation %s: gave up after %d attempts: %w", negotiationID, u.cfg.SaveMaxAttempts, lastErr)
}

func (u *NegotiationUseCase) load(ctx context.Context, id string) (entities.Negotiation, error) {
	lctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
	defer cancel()
	n, err := u.repo.Load(lctx, id)
	if err != nil {
		return entities.Negotiation{}, fmt.Errorf("%w: load negotiation %s: %w", negotiation.ErrCollaboratorUnavailable, id, err)
	}
	return n, nil
}

func (u *NegotiationUseCase) save(ctx context.Context, n entities.Negotiation, expectedVersion int64) (entities.Negotiation, error) {
	sctx, cancel := context.WithTimeout(ctx, u.cfg.CollaboratorTimeout)
	defer cancel()
	saved, err := u.repo.Save(sctx, n, expectedVersion)
	if err == nil {
		return saved, nil
	}
	if errors.Is(err, negotiation.ErrConflict) {
		return entities.Negotiation{}, err
	}
	return entities.Negotiation{}, fmt.Errorf("%w: save negotiation %s: %w", negotiation.ErrCollaboratorUnavailable, n.ID, err)
}

// publish is best effort: subscribers that miss an update recover through Get.
func (u *NegotiationUseCase) publish(ctx context.Context, update entities.NegotiationUpdate) {
	if u.publisher == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.cfg.CollaboratorTimeout)
	defer cancel()
	if err := u.publisher.Publish(pctx, update.NegotiationID, update); err != nil {
		metrics.PublishFailures.Inc()
		slog.Warn("[negotiation][usecase] realtime publish failed", "negotiation_id", update.NegotiationID, "err", err)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, negotiation.ErrValidation):
		return "validation_error"
	case errors.Is(err, negotiation.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, negotiation.ErrNotAParticipant):
		return "not_a_participant"
	case errors.Is(err, negotiation.ErrConflict):
		return "conflict"
	case errors.Is(err, negotiation.ErrCollaboratorUnavailable):
		return "collaborator_unavailable"
	case errors.Is(err, ErrNegotiationNotFound):
		return "not_found"
	}
	return "error"
}
