package request

import "encoding/json"

// GovernanceFeeRequest is the payload of the governance fee route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
type GovernanceFeeRequest struct {
	PayerID   string          `json:"payer_id" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload"`
}
