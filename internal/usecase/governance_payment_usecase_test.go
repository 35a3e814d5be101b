package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/negotiation"
	"blind_negotiation/internal/infrastructure/payments"
	mock_interfaces "blind_negotiation/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func feeRequest(payload string) entities.GovernanceFeeRequest {
	return entities.GovernanceFeeRequest{
		NegotiationID: "neg-1",
		PayerID:       "buyer-1",
		Role:          entities.PartyRoleBuyer,
		Amount:        decimal.NewFromInt(25),
		Currency:      "INR",
		Payload:       json.RawMessage(payload),
	}
}

func disableGatewayMock(t *testing.T) {
	t.Helper()
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
}

func TestGovernancePaymentUseCase_ConfirmPayment_Validations(t *testing.T) {
	disableGatewayMock(t)

	t.Run("empty negotiation id", func(t *testing.T) {
		uc := NewGovernancePaymentUseCase(nil, nil)
		req := feeRequest(`{}`)
		req.NegotiationID = " "
		_, err := uc.ConfirmPayment(context.Background(), req)
		if !errors.Is(err, ErrInvalidPaymentNegotiationID) {
			t.Fatalf("expected ErrInvalidPaymentNegotiationID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewGovernancePaymentUseCase(nil, nil)
		_, err := uc.ConfirmPayment(context.Background(), feeRequest(``))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewGovernancePaymentUseCase(nil, nil)
		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		uc := NewGovernancePaymentUseCase(repo, nil)

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payment_method_id":"upi"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payment_method_id":"upi"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("non-object payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`[]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestGovernancePaymentUseCase_ConfirmPayment_GatewayErrorMapping(t *testing.T) {
	disableGatewayMock(t)

	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
		{name: "unknown is unavailable", err: errors.New("connection reset"), want: negotiation.ErrCollaboratorUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewGovernancePaymentUseCase(repo, gateway)

			repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payment_method_id":"upi","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGovernancePaymentUseCase_ConfirmPayment_Statuses(t *testing.T) {
	disableGatewayMock(t)

	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
		wantErr        error
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusDenied, providerResp: json.RawMessage(`{"id":123}`), wantErr: ErrGovernancePaymentNotApproved},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`), wantErr: ErrGovernancePaymentNotApproved},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewGovernancePaymentUseCase(repo, gateway)
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")

			repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "neg-1:buyer" {
						t.Fatalf("external_reference not set: %v", body["external_reference"])
					}
					if body["transaction_amount"] != float64(25) {
						t.Fatalf("transaction_amount should come from the fee, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					meta := body["metadata"].(map[string]any)
					if meta["payer_id"] != "buyer-1" || meta["role"] != "BUYER" {
						t.Fatalf("unexpected metadata %v", meta)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.GovernancePayment{})).DoAndReturn(
				func(_ context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error) {
					if p.ID != "pay-1" || p.NegotiationID != "neg-1" || p.Status != tc.want || p.Role != entities.PartyRoleBuyer {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() || !p.Amount.Equal(decimal.NewFromInt(25)) {
						t.Fatalf("unexpected date/amount: %+v", p)
					}
					return p, nil
				},
			)

			ref, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payment_method_id":"upi","payer":{"id":"123"},"transaction_amount":1}`))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) || ref != "" {
					t.Fatalf("expected %v, got ref=%q err=%v", tc.wantErr, ref, err)
				}
				return
			}
			if err != nil || ref != "pay-1" {
				t.Fatalf("unexpected result ref=%q err=%v", ref, err)
			}
		})
	}

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GovernancePayment{}, errors.New("db-create"))

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(`{"payment_method_id":"upi","payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, negotiation.ErrCollaboratorUnavailable) {
			t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
		}
	})
}

func TestGovernancePaymentUseCase_ConfirmPayment_MockGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
	gateway, err := payments.NewMercadoPagoGateway("")
	if err != nil {
		t.Fatalf("gateway: %v", err)
	}
	uc := NewGovernancePaymentUseCase(repo, gateway)

	repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error) {
			if p.Status != entities.PaymentStatusApproved || p.ProviderPayload["external_reference"] != "neg-1:buyer" {
				t.Fatalf("unexpected mock payment: %+v", p)
			}
			if p.ProviderPayload["transaction_amount"] != float64(25) {
				t.Fatalf("amount should come from the fee, got %v", p.ProviderPayload["transaction_amount"])
			}
			return p, nil
		},
	)

	ref, err := uc.ConfirmPayment(context.Background(), feeRequest(``))
	if err != nil || ref == "" {
		t.Fatalf("unexpected result ref=%q err=%v", ref, err)
	}
}

func TestGovernancePaymentUseCase_ConfirmPayment_Ledger(t *testing.T) {
	disableGatewayMock(t)
	payload := `{"payment_method_id":"upi","payer":{"email":"x@test.com"}}`

	t.Run("approved fee for the role is reused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return([]entities.GovernancePayment{
			{ID: "pay-seller", NegotiationID: "neg-1", Role: entities.PartyRoleSeller, Status: entities.PaymentStatusApproved},
			{ID: "pay-buyer", NegotiationID: "neg-1", Role: entities.PartyRoleBuyer, Status: entities.PaymentStatusApproved},
		}, nil)

		ref, err := uc.ConfirmPayment(context.Background(), feeRequest(payload))
		if err != nil || ref != "pay-buyer" {
			t.Fatalf("expected the recorded payment, got ref=%q err=%v", ref, err)
		}
	})

	t.Run("denied attempt does not block a new charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return([]entities.GovernancePayment{
			{ID: "pay-old", NegotiationID: "neg-1", Role: entities.PartyRoleBuyer, Status: entities.PaymentStatusDenied},
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-new", "approved", json.RawMessage(`{"id":2}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.GovernancePayment) (entities.GovernancePayment, error) { return p, nil },
		)

		ref, err := uc.ConfirmPayment(context.Background(), feeRequest(payload))
		if err != nil || ref != "pay-new" {
			t.Fatalf("unexpected result ref=%q err=%v", ref, err)
		}
	})

	t.Run("ledger unavailable charges nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewGovernancePaymentUseCase(repo, gateway)

		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(nil, errors.New("throttled"))

		_, err := uc.ConfirmPayment(context.Background(), feeRequest(payload))
		if !errors.Is(err, negotiation.ErrCollaboratorUnavailable) {
			t.Fatalf("expected ErrCollaboratorUnavailable, got %v", err)
		}
	})
}

func TestGovernancePaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewGovernancePaymentUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if err == nil || err.Error() != "invalid payment id" {
			t.Fatalf("expected invalid payment id, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		uc := NewGovernancePaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.GovernancePayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrGovernancePaymentNotFound) {
			t.Fatalf("expected ErrGovernancePaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		uc := NewGovernancePaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.GovernancePayment{ID: "id-1"}, nil)

		res, err := uc.GetByID(context.Background(), " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByNegotiationID invalid", func(t *testing.T) {
		uc := NewGovernancePaymentUseCase(nil, nil)
		_, err := uc.ListByNegotiationID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentNegotiationID) {
			t.Fatalf("expected ErrInvalidPaymentNegotiationID, got %v", err)
		}
	})

	t.Run("ListByNegotiationID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIGovernancePaymentRepository(ctrl)
		uc := NewGovernancePaymentUseCase(repo, nil)
		expected := []entities.GovernancePayment{{ID: "p1", Date: time.Now()}}
		repo.EXPECT().ListByNegotiationID(gomock.Any(), "neg-1").Return(expected, nil)

		res, err := uc.ListByNegotiationID(context.Background(), " neg-1 ")
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestGovernancePaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for nil/blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		m := map[string]any{}
		ensurePayerDefaults(m)
		payer := m["payer"].(map[string]any)
		if payer["type"] != "customer" || payer["email"] != "test_user_in@testuser.com" {
			t.Fatalf("unexpected payer defaults %v", payer)
		}
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP-123")
		m := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(m)
		if _, ok := m["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		m2 := map[string]any{"payer": map[string]any{"id": "999"}}
		normalizeSandboxPayerFromUserID(m2)
		if _, ok := m2["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}
	})

	t.Run("mapProviderStatus", func(t *testing.T) {
		cases := map[string]entities.PaymentStatus{
			"approved":   entities.PaymentStatusApproved,
			" APPROVED ": entities.PaymentStatusApproved,
			"rejected":   entities.PaymentStatusDenied,
			"cancelled":  entities.PaymentStatusDenied,
			"in_process": entities.PaymentStatusPending,
			"":           entities.PaymentStatusPending,
		}
		for in, want := range cases {
			if got := mapProviderStatus(in); got != want {
				t.Fatalf("mapProviderStatus(%q) = %s, want %s", in, got, want)
			}
		}
	})
}
