package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload of the design payment route.
//
// `mp_payload` is forwarded as raw JSON to support varying Mercado Pago schemas.
// A bare Mercado Pago body without the envelope is accepted too.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
