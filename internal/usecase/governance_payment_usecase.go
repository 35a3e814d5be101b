package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/infrastructure/metrics"
	"blind_negotiation/internal/usecase/interfaces"
)

var (
	ErrGovernancePaymentNotFound      = errors.New("governance payment not found")
	ErrInvalidPaymentNegotiationID    = errors.New("invalid negotiation_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrGovernancePaymentNotApproved   = errors.New("governance payment not approved")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IGovernancePaymentUseCase charges governance fees and exposes the payment ledger.
//
// ConfirmPayment is the payment-confirmation collaborator of the negotiation
// flow: it charges the fee through the gateway, stores the provider answer
// and returns the payment id used as the party's payment reference.

type IGovernancePaymentUseCase interface {
	ConfirmPayment(ctx context.Context, req entities.GovernanceFeeRequest) (string, error)
	GetByID(ctx context.Context, id string) (entities.GovernancePayment, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.GovernancePayment, error)
}

// mockablePaymentGateway is implemented by gateways that can approve charges
// locally. The payload checks the real provider needs are skipped for them.
type mockablePaymentGateway interface {
	MockMode() bool
}

type GovernancePaymentUseCase struct {
	repo    interfaces.IGovernancePaymentRepository
	gateway interfaces.IPaymentGateway
}

var (
	_ IGovernancePaymentUseCase       = (*GovernancePaymentUseCase)(nil)
	_ interfaces.IPaymentConfirmation = (*GovernancePaymentUseCase)(nil)
)

func NewGovernancePaymentUseCase(repo interfaces.IGovernancePaymentRepository, gateway interfaces.IPaymentGateway) *GovernancePaymentUseCase {
	return &GovernancePaymentUseCase{repo: repo, gateway: gateway}
}

func (u *GovernancePaymentUseCase) ConfirmPayment(ctx context.Context, req entities.GovernanceFeeRequest) (string, error) {
	negotiationID := strings.TrimSpace(req.NegotiationID)
	payload := req.Payload
	slog.Info("[payment][usecase] confirm start", "negotiation_id", negotiationID, "payer_id", req.PayerID, "role", req.Role, "payload_len", len(payload))

	mockMode := u.gatewayMocked()
	if negotiationID == "" {
		return "", ErrInvalidPaymentNegotiationID
	}
	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			slog.Warn("[payment][usecase] invalid payload", "negotiation_id", negotiationID)
			return "", ErrInvalidMPPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return "", errors.New("payment gateway not configured")
	}
	if u.repo == nil {
		return "", errors.New("governance payment repository not configured")
	}

	reference := negotiationID + ":" + strings.ToLower(string(req.Role))

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil && reqMap != nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			slog.Warn("[payment][usecase] missing payment_method_id", "negotiation_id", negotiationID)
			return "", ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			slog.Warn("[payment][usecase] missing/invalid payer", "negotiation_id", negotiationID)
			return "", ErrInvalidMPPayload
		}

		// Reconciliation keys and amount always come from the negotiation,
		// never from the client.
		reqMap["external_reference"] = reference
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Governance fee (%s) for negotiation %s", strings.ToLower(string(req.Role)), negotiationID)
		}
		reqMap["transaction_amount"] = req.Amount.InexactFloat64()
		reqMap["metadata"] = map[string]any{
			"negotiation_id": negotiationID,
			"payer_id":       req.PayerID,
			"role":           string(req.Role),
			"currency":       req.Currency,
		}
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	} else if !mockMode {
		slog.Warn("[payment][usecase] payload is not a json object", "negotiation_id", negotiationID)
		return "", ErrInvalidMPPayload
	}

	// A role is charged at most once per negotiation.
	prior, err := u.approvedPaymentFor(ctx, negotiationID, req.Role)
	if err != nil {
		return "", err
	}
	if prior != "" {
		slog.Info("[payment][usecase] fee already approved; reusing payment", "negotiation_id", negotiationID, "payment_id", prior, "role", req.Role)
		return prior, nil
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		slog.Error("[payment][usecase] payment gateway failed", "negotiation_id", negotiationID, "err", err)
		return "", mapGatewayError(err)
	}

	status := mapProviderStatus(providerStatus)
	metrics.GovernancePayments.WithLabelValues(string(status)).Inc()

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		slog.Warn("[payment][usecase] provider response unmarshal failed", "negotiation_id", negotiationID, "err", err)
	}

	p := entities.GovernancePayment{
		ID:                 providerPaymentID,
		NegotiationID:      negotiationID,
		PayerID:            req.PayerID,
		Role:               req.Role,
		Amount:             req.Amount,
		Currency:           req.Currency,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		slog.Error("[payment][usecase] payment repository create failed", "negotiation_id", negotiationID, "payment_id", p.ID, "err", err)
		return "", fmt.Errorf("%w: store governance payment: %w", negotiation.ErrCollaboratorUnavailable, err)
	}

	if created.Status != entities.PaymentStatusApproved {
		slog.Warn("[payment][usecase] payment not approved", "negotiation_id", negotiationID, "payment_id", created.ID, "provider_status", providerStatus)
		return "", fmt.Errorf("%w: provider status %q", ErrGovernancePaymentNotApproved, providerStatus)
	}
	slog.Info("[payment][usecase] confirm success", "negotiation_id", negotiationID, "payment_id", created.ID, "role", req.Role)
	return created.ID, nil
}

func (u *GovernancePaymentUseCase) gatewayMocked() bool {
	m, ok := u.gateway.(mockablePaymentGateway)
	return ok && m.MockMode()
}

// approvedPaymentFor returns the id of the approved payment already on the
// ledger for role, or "" when there is none.
func (u *GovernancePaymentUseCase) approvedPaymentFor(ctx context.Context, negotiationID string, role entities.PartyRole) (string, error) {
	existing, err := u.repo.ListByNegotiationID(ctx, negotiationID)
	if err != nil {
		slog.Error("[payment][usecase] payment repository list failed", "negotiation_id", negotiationID, "err", err)
		return "", fmt.Errorf("%w: list governance payments: %w", negotiation.ErrCollaboratorUnavailable, err)
	}
	for _, p := range existing {
		if p.Role == role && p.Status == entities.PaymentStatusApproved {
			return p.ID, nil
		}
	}
	return "", nil
}

func mapProviderStatus(s string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func mapGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return fmt.Errorf("%w: payment gateway: %w", negotiation.ErrCollaboratorUnavailable, err)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_in@testuser.com"
		}
	}
}

// normalizeSandboxPayerFromUserID swaps a configured sandbox payer user id
// for its email, which is what the sandbox accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"])); rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	slog.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *GovernancePaymentUseCase) GetByID(ctx context.Context, id string) (entities.GovernancePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.GovernancePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.GovernancePayment{}, err
	}
	if p.ID == "" {
		return entities.GovernancePayment{}, ErrGovernancePaymentNotFound
	}
	return p, nil
}

func (u *GovernancePaymentUseCase) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.GovernancePayment, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return nil, ErrInvalidPaymentNegotiationID
	}
	return u.repo.ListByNegotiationID(ctx, negotiationID)
}
