package negotiation

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"blind_negotiation/internal/domain/entities"
	"blind_negotiation/internal/domain/quote"

	"github.com/shopspring/decimal"
)

const (
	buyerID  = "buyer-0001"
	sellerID = "seller-0002"
)

func newTestMachine() *Machine {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tick, seq := 0, 0
	return &Machine{
		Now: func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Second)
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		},
	}
}

func newStarted(t *testing.T, m *Machine) entities.Negotiation {
	t.Helper()
	n, err := m.Create(CreateParams{
		EntityID:     "lead-42",
		EntityType:   entities.EntityTypeLead,
		BuyerID:      buyerID,
		SellerID:     sellerID,
		InitialOffer: decimal.NewFromInt(5000),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return n
}

func simpleQuote(price string) QuoteProposal {
	return QuoteProposal{Input: quote.Input{
		Price:      decimal.RequireFromString(price),
		Quantity:   decimal.NewFromInt(1),
		GSTPercent: decimal.NewFromInt(18),
	}}
}

func acceptedNegotiation(t *testing.T, m *Machine) entities.Negotiation {
	t.Helper()
	n := newStarted(t, m)
	if _, err := m.SendQuote(&n, sellerID, simpleQuote("4500"), ""); err != nil {
		t.Fatalf("quote: %v", err)
	}
	if _, err := m.Accept(&n, buyerID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	return n
}

func unlockedNegotiation(t *testing.T, m *Machine) entities.Negotiation {
	t.Helper()
	n := acceptedNegotiation(t, m)
	if _, err := m.RecordGovernanceFee(&n, buyerID, "pay-b"); err != nil {
		t.Fatalf("buyer fee: %v", err)
	}
	if _, err := m.RecordGovernanceFee(&n, sellerID, "pay-s"); err != nil {
		t.Fatalf("seller fee: %v", err)
	}
	return n
}

func TestDeriveID(t *testing.T) {
	a := DeriveID("lead-1", "b", "s")
	if a != DeriveID("lead-1", "b", "s") {
		t.Fatalf("expected stable id")
	}
	if a == DeriveID("lead-1", "s", "b") {
		t.Fatalf("expected swapped parties to produce a different id")
	}
	if DeriveID("lead-1b", "", "s") == DeriveID("lead-1", "b", "s") {
		t.Fatalf("expected separator to keep fields apart")
	}
}

func TestMachine_Create(t *testing.T) {
	m := newTestMachine()

	t.Run("success", func(t *testing.T) {
		n := newStarted(t, m)
		if n.Status != entities.NegotiationStatusStarted {
			t.Fatalf("unexpected status %s", n.Status)
		}
		if n.ID != DeriveID("lead-42", buyerID, sellerID) {
			t.Fatalf("unexpected id %s", n.ID)
		}
		if len(n.Messages) != 0 || n.Version != 0 || n.Sequence == "" {
			t.Fatalf("unexpected record: %+v", n)
		}
		if !n.CurrentOffer.Equal(decimal.NewFromInt(5000)) {
			t.Fatalf("unexpected offer %s", n.CurrentOffer)
		}
	})

	invalid := []struct {
		name string
		p    CreateParams
	}{
		{"missing entity", CreateParams{EntityType: entities.EntityTypeLead, BuyerID: "b", SellerID: "s"}},
		{"unknown entity type", CreateParams{EntityID: "e", EntityType: "CAR", BuyerID: "b", SellerID: "s"}},
		{"missing seller", CreateParams{EntityID: "e", EntityType: entities.EntityTypeLead, BuyerID: "b"}},
		{"same party", CreateParams{EntityID: "e", EntityType: entities.EntityTypeLead, BuyerID: "b", SellerID: "b"}},
		{"system party", CreateParams{EntityID: "e", EntityType: entities.EntityTypeLead, BuyerID: "system", SellerID: "s"}},
		{"negative offer", CreateParams{EntityID: "e", EntityType: entities.EntityTypeLead, BuyerID: "b", SellerID: "s", InitialOffer: decimal.NewFromInt(-1)}},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := m.Create(tc.p); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestMachine_SendMessage(t *testing.T) {
	t.Run("appends with pseudonym", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		msg, err := m.SendMessage(&n, buyerID, "  hello  ", "k1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if msg.Text != "hello" || msg.SenderName != "Buyer_#0001" || msg.SenderRole != entities.PartyRoleBuyer {
			t.Fatalf("unexpected message: %+v", msg)
		}
		if msg.IdempotencyKey != "k1" || len(n.Messages) != 1 || n.Status != entities.NegotiationStatusStarted {
			t.Fatalf("unexpected record: %+v", n)
		}
	})

	t.Run("not a participant", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		if _, err := m.SendMessage(&n, "intruder", "hi", ""); !errors.Is(err, ErrNotAParticipant) {
			t.Fatalf("expected ErrNotAParticipant, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		if _, err := m.SendMessage(&n, buyerID, "   ", ""); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("allowed after acceptance", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.SendMessage(&n, sellerID, "invoice soon", ""); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("refused when terminal", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		if _, err := m.Withdraw(&n, buyerID, ""); err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		before := len(n.Messages)
		if _, err := m.SendMessage(&n, buyerID, "hi", ""); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if len(n.Messages) != before {
			t.Fatalf("expected no append")
		}
	})
}

func TestMachine_SendQuote(t *testing.T) {
	t.Run("prices and sets current offer", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		msg, err := m.SendQuote(&n, sellerID, simpleQuote("4500"), "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n.Status != entities.NegotiationStatusCounterOffered {
			t.Fatalf("unexpected status %s", n.Status)
		}
		if !msg.IsQuote || msg.QuoteDetails == nil || msg.QuoteDetails.FinalPrice.StringFixed(2) != "5310.00" {
			t.Fatalf("unexpected quote: %+v", msg)
		}
		if n.CurrentOffer.StringFixed(2) != "5310.00" {
			t.Fatalf("unexpected offer %s", n.CurrentOffer)
		}
		if msg.Text != "Quote v1: 5310.00" {
			t.Fatalf("unexpected text %q", msg.Text)
		}
	})

	t.Run("versions count quotes only", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		steps := []struct {
			quote  bool
			sender string
		}{
			{false, buyerID}, {true, sellerID}, {false, buyerID}, {false, sellerID},
			{true, buyerID}, {true, sellerID}, {false, buyerID}, {true, buyerID},
		}
		want := 0
		for i, s := range steps {
			if !s.quote {
				if _, err := m.SendMessage(&n, s.sender, fmt.Sprintf("chat %d", i), ""); err != nil {
					t.Fatalf("chat %d: %v", i, err)
				}
				continue
			}
			want++
			msg, err := m.SendQuote(&n, s.sender, simpleQuote("100"), "")
			if err != nil {
				t.Fatalf("quote %d: %v", i, err)
			}
			if msg.QuoteDetails.Version != want {
				t.Fatalf("step %d: expected version %d, got %d", i, want, msg.QuoteDetails.Version)
			}
		}
		if n.QuoteCount() != want {
			t.Fatalf("expected %d quotes, got %d", want, n.QuoteCount())
		}
	})

	t.Run("invalid input is a validation error", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		p := simpleQuote("100")
		p.Input.Discount = decimal.NewFromInt(200)
		_, err := m.SendQuote(&n, sellerID, p, "")
		if !errors.Is(err, ErrValidation) || !errors.Is(err, quote.ErrInvalidQuote) {
			t.Fatalf("expected ErrValidation wrapping ErrInvalidQuote, got %v", err)
		}
		if n.Status != entities.NegotiationStatusStarted || len(n.Messages) != 0 {
			t.Fatalf("expected untouched record: %+v", n)
		}
	})

	t.Run("closed after acceptance", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.SendQuote(&n, sellerID, simpleQuote("10"), ""); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})
}

func TestMachine_Accept(t *testing.T) {
	t.Run("from started", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		msg, err := m.Accept(&n, sellerID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n.Status != entities.NegotiationStatusAccepted || msg.SenderRole != entities.PartyRoleSystem {
			t.Fatalf("unexpected result: %s %+v", n.Status, msg)
		}
	})

	t.Run("twice", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.Accept(&n, buyerID); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		if _, err := m.Accept(&n, "someone"); !errors.Is(err, ErrNotAParticipant) {
			t.Fatalf("expected ErrNotAParticipant, got %v", err)
		}
	})
}

func TestMachine_GovernanceFees(t *testing.T) {
	t.Run("buyer then seller unlocks", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)

		msgs, err := m.RecordGovernanceFee(&n, buyerID, "pay-b")
		if err != nil {
			t.Fatalf("buyer fee: %v", err)
		}
		if n.Status != entities.NegotiationStatusBuyerPaymentDone || len(msgs) != 1 {
			t.Fatalf("unexpected state %s (%d msgs)", n.Status, len(msgs))
		}

		msgs, err = m.RecordGovernanceFee(&n, sellerID, "pay-s")
		if err != nil {
			t.Fatalf("seller fee: %v", err)
		}
		if n.Status != entities.NegotiationStatusAdminVerified || len(msgs) != 2 {
			t.Fatalf("unexpected state %s (%d msgs)", n.Status, len(msgs))
		}
		if n.BuyerPaymentRef != "pay-b" || n.SellerPaymentRef != "pay-s" {
			t.Fatalf("unexpected refs: %q %q", n.BuyerPaymentRef, n.SellerPaymentRef)
		}
	})

	t.Run("seller first", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.RecordGovernanceFee(&n, sellerID, "pay-s"); err != nil {
			t.Fatalf("seller fee: %v", err)
		}
		if n.Status != entities.NegotiationStatusSellerPaymentDone {
			t.Fatalf("unexpected status %s", n.Status)
		}
	})

	t.Run("paying twice", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.RecordGovernanceFee(&n, buyerID, "pay-b"); err != nil {
			t.Fatalf("buyer fee: %v", err)
		}
		if _, err := m.RecordGovernanceFee(&n, buyerID, "pay-b2"); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if n.BuyerPaymentRef != "pay-b" {
			t.Fatalf("expected original ref to be kept")
		}
	})

	t.Run("before acceptance", func(t *testing.T) {
		m := newTestMachine()
		n := newStarted(t, m)
		if _, err := m.CheckGovernanceFee(&n, buyerID); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.CheckGovernanceFee(&n, "someone"); !errors.Is(err, ErrNotAParticipant) {
			t.Fatalf("expected ErrNotAParticipant, got %v", err)
		}
	})

	t.Run("empty reference", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.RecordGovernanceFee(&n, buyerID, " "); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if n.Status != entities.NegotiationStatusAccepted {
			t.Fatalf("unexpected status %s", n.Status)
		}
	})
}

func TestDualPaymentGate(t *testing.T) {
	for _, target := range []entities.NegotiationStatus{
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusFinalized,
	} {
		for _, refs := range [][2]string{{"", ""}, {"pay-b", ""}, {"", "pay-s"}} {
			t.Run(fmt.Sprintf("%s buyer=%q seller=%q", target, refs[0], refs[1]), func(t *testing.T) {
				n := entities.Negotiation{
					Status:           entities.NegotiationStatusAccepted,
					BuyerPaymentRef:  refs[0],
					SellerPaymentRef: refs[1],
				}
				if target == entities.NegotiationStatusFinalized {
					n.Status = entities.NegotiationStatusAdminVerified
				}
				from := n.Status
				if err := advance(&n, target); !errors.Is(err, ErrInvalidState) {
					t.Fatalf("expected ErrInvalidState, got %v", err)
				}
				if n.Status != from {
					t.Fatalf("expected status to stay %s, got %s", from, n.Status)
				}
			})
		}
	}

	t.Run("both refs set", func(t *testing.T) {
		n := entities.Negotiation{
			Status:           entities.NegotiationStatusAccepted,
			BuyerPaymentRef:  "pay-b",
			SellerPaymentRef: "pay-s",
		}
		if err := advance(&n, entities.NegotiationStatusAdminVerified); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})
}

func TestForwardOnly(t *testing.T) {
	order := []entities.NegotiationStatus{
		entities.NegotiationStatusStarted,
		entities.NegotiationStatusCounterOffered,
		entities.NegotiationStatusAccepted,
		entities.NegotiationStatusBuyerPaymentDone,
		entities.NegotiationStatusSellerPaymentDone,
		entities.NegotiationStatusAdminVerified,
		entities.NegotiationStatusFinalized,
	}
	rank := map[entities.NegotiationStatus]int{}
	for i, s := range order {
		rank[s] = i
	}
	// The two single-payment states are siblings, neither follows the other.
	rank[entities.NegotiationStatusSellerPaymentDone] = rank[entities.NegotiationStatusBuyerPaymentDone]

	all := append(order, entities.NegotiationStatusRejected)
	for _, from := range all {
		for _, to := range all {
			if !CanTransition(from, to) {
				continue
			}
			if from.IsTerminal() {
				t.Fatalf("terminal %s has an edge to %s", from, to)
			}
			if to == entities.NegotiationStatusRejected {
				continue
			}
			if rank[to] < rank[from] || (rank[to] == rank[from] && from != to) {
				t.Fatalf("backward edge %s -> %s", from, to)
			}
		}
	}

	t.Run("admin verified cannot go back to accepted", func(t *testing.T) {
		m := newTestMachine()
		n := unlockedNegotiation(t, m)
		if _, err := m.RequestStatus(&n, buyerID, entities.NegotiationStatusAccepted); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
		if n.Status != entities.NegotiationStatusAdminVerified {
			t.Fatalf("unexpected status %s", n.Status)
		}
	})
}

func TestMachine_TerminalStates(t *testing.T) {
	finalized := func(t *testing.T, m *Machine) entities.Negotiation {
		n := unlockedNegotiation(t, m)
		if _, err := m.Finalize(&n, entities.SystemSenderID); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		return n
	}
	withdrawn := func(t *testing.T, m *Machine) entities.Negotiation {
		n := newStarted(t, m)
		msg, err := m.Withdraw(&n, sellerID, "out of stock")
		if err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		if msg.Text != "Seller_#0002 withdrew from the negotiation: out of stock" {
			t.Fatalf("unexpected text %q", msg.Text)
		}
		return n
	}

	for name, build := range map[string]func(*testing.T, *Machine) entities.Negotiation{
		"finalized": finalized,
		"withdrawn": withdrawn,
	} {
		t.Run(name, func(t *testing.T) {
			m := newTestMachine()
			n := build(t, m)
			before := n.Clone()

			ops := map[string]func() error{
				"message":  func() error { _, err := m.SendMessage(&n, buyerID, "hi", ""); return err },
				"quote":    func() error { _, err := m.SendQuote(&n, buyerID, simpleQuote("1"), ""); return err },
				"accept":   func() error { _, err := m.Accept(&n, buyerID); return err },
				"fee":      func() error { _, err := m.RecordGovernanceFee(&n, buyerID, "x"); return err },
				"finalize": func() error { _, err := m.Finalize(&n, buyerID); return err },
				"withdraw": func() error { _, err := m.Withdraw(&n, buyerID, ""); return err },
				"offer":    func() error { _, err := m.UpdateOffer(&n, decimal.NewFromInt(1)); return err },
			}
			for op, fn := range ops {
				if err := fn(); !errors.Is(err, ErrInvalidState) {
					t.Fatalf("%s: expected ErrInvalidState, got %v", op, err)
				}
			}
			if n.Status != before.Status || len(n.Messages) != len(before.Messages) {
				t.Fatalf("terminal record was mutated")
			}
		})
	}
}

func TestMachine_Finalize(t *testing.T) {
	t.Run("requires unlock", func(t *testing.T) {
		m := newTestMachine()
		n := acceptedNegotiation(t, m)
		if _, err := m.Finalize(&n, buyerID); !errors.Is(err, ErrInvalidState) {
			t.Fatalf("expected ErrInvalidState, got %v", err)
		}
	})

	t.Run("by participant", func(t *testing.T) {
		m := newTestMachine()
		n := unlockedNegotiation(t, m)
		if _, err := m.Finalize(&n, sellerID); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if n.Status != entities.NegotiationStatusFinalized {
			t.Fatalf("unexpected status %s", n.Status)
		}
	})

	t.Run("stranger", func(t *testing.T) {
		m := newTestMachine()
		n := unlockedNegotiation(t, m)
		if _, err := m.Finalize(&n, "someone"); !errors.Is(err, ErrNotAParticipant) {
			t.Fatalf("expected ErrNotAParticipant, got %v", err)
		}
	})
}

func TestMachine_UpdateOfferAndRequestStatus(t *testing.T) {
	m := newTestMachine()
	n := newStarted(t, m)

	changed, err := m.UpdateOffer(&n, decimal.NewFromInt(5000))
	if err != nil || changed {
		t.Fatalf("expected unchanged offer, got %v %v", changed, err)
	}
	changed, err = m.UpdateOffer(&n, decimal.NewFromInt(4800))
	if err != nil || !changed {
		t.Fatalf("expected changed offer, got %v %v", changed, err)
	}
	if _, err := m.UpdateOffer(&n, decimal.NewFromInt(-5)); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	msgs, err := m.RequestStatus(&n, buyerID, entities.NegotiationStatusStarted)
	if err != nil || msgs != nil {
		t.Fatalf("expected no-op, got %v %v", msgs, err)
	}
	if _, err := m.RequestStatus(&n, buyerID, entities.NegotiationStatusAdminVerified); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	msgs, err = m.RequestStatus(&n, buyerID, entities.NegotiationStatusAccepted)
	if err != nil || len(msgs) != 1 || n.Status != entities.NegotiationStatusAccepted {
		t.Fatalf("expected accept, got %v %v %s", msgs, err, n.Status)
	}
	if _, err := m.UpdateOffer(&n, decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
}

func TestMachine_TimestampsNeverGoBack(t *testing.T) {
	m := newTestMachine()
	n := newStarted(t, m)
	if _, err := m.SendMessage(&n, buyerID, "first", ""); err != nil {
		t.Fatalf("send: %v", err)
	}
	last := n.Messages[0].Timestamp
	m.Now = func() time.Time { return last.Add(-time.Hour) }

	msg, err := m.SendMessage(&n, sellerID, "second", "")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Timestamp.Before(last) {
		t.Fatalf("timestamp went backwards: %s < %s", msg.Timestamp, last)
	}
}
