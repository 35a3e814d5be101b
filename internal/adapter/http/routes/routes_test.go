package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blind_negotiation/internal/config"
	"blind_negotiation/internal/container"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	c, err := container.New(context.Background(), config.Config{
		NegotiationStore:      config.StoreMemory,
		GovernanceFee:         decimal.NewFromInt(25),
		GovernanceFeeCurrency: "INR",
		CollaboratorTimeout:   time.Second,
		SaveMaxAttempts:       3,
	})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return NewRouter(c)
}

func call(t *testing.T, r http.Handler, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w.Code, out
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)
	code, body := call(t, r, http.MethodGet, "/v1/ping", "")
	if code != http.StatusOK || body["message"] != "pong" {
		t.Fatalf("unexpected ping %d %v", code, body)
	}
}

func TestMetricsExposed(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "go_goroutines") {
		t.Fatalf("unexpected metrics response %d", w.Code)
	}
}

func TestNegotiationLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	code, started := call(t, r, http.MethodPost, "/v1/negotiations/start",
		`{"entity_id":"lead-42","entity_type":"LEAD","buyer_id":"buyer-0001","seller_id":"seller-0002","offer":5000}`)
	if code != http.StatusOK {
		t.Fatalf("start: %d %v", code, started)
	}
	id, _ := started["negotiation_id"].(string)
	base := "/v1/negotiations/" + id

	if code, body := call(t, r, http.MethodPost, base+"/quotes", `{"sender_id":"seller-0002","product_name":"Steel","price":4500,"quantity":1}`); code != http.StatusOK || body["current_offer"] != "5310.00" {
		t.Fatalf("quote: %d %v", code, body)
	}
	if code, body := call(t, r, http.MethodPost, base+"/accept", `{"actor_id":"buyer-0001"}`); code != http.StatusOK || body["status"] != "ACCEPTED" {
		t.Fatalf("accept: %d %v", code, body)
	}

	_, view := call(t, r, http.MethodGet, base+"?viewer_id=buyer-0001", "")
	counterpart, _ := view["counterpart"].(map[string]any)
	if counterpart["display_name"] != "Seller_#0002" || counterpart["user_id"] != nil {
		t.Fatalf("expected masked counterpart, got %v", counterpart)
	}

	if code, _ := call(t, r, http.MethodPost, base+"/finalize", `{"actor_id":"system"}`); code != http.StatusConflict {
		t.Fatalf("finalize before unlock: expected 409, got %d", code)
	}

	for _, payer := range []string{"buyer-0001", "seller-0002"} {
		if code, body := call(t, r, http.MethodPost, base+"/governance-fee", `{"payer_id":"`+payer+`","mp_payload":{"token":"tok"}}`); code != http.StatusOK {
			t.Fatalf("fee %s: %d %v", payer, code, body)
		}
	}

	_, view = call(t, r, http.MethodGet, base+"?viewer_id=buyer-0001", "")
	if view["status"] != "ADMIN_VERIFIED" || view["unlocked"] != true {
		t.Fatalf("expected unlocked view, got %v", view)
	}

	req := httptest.NewRequest(http.MethodGet, base+"/payments?viewer_id=seller-0002", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 2 {
		t.Fatalf("payments: %d %s", w.Code, w.Body.String())
	}

	if code, body := call(t, r, http.MethodPost, base+"/finalize", `{"actor_id":"system"}`); code != http.StatusOK || body["status"] != "FINALIZED" {
		t.Fatalf("finalize: %d %v", code, body)
	}
	if code, body := call(t, r, http.MethodPost, base+"/messages", `{"sender_id":"buyer-0001","text":"late"}`); code != http.StatusConflict || body["code"] != "INVALID_STATE" {
		t.Fatalf("message after finalize: %d %v", code, body)
	}
}
