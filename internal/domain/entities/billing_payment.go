package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// PaymentStatusFromProvider maps a Mercado Pago status to ours.
func PaymentStatusFromProvider(providerStatus string) PaymentStatus {
	switch providerStatus {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusDenied
	default:
		return PaymentStatusPending
	}
}

// BillingPayment is a payment for an approved customer design.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (design_id-index): design_id
//
// MPPayloadRaw keeps the provider response for traceability; MPPayload is the
// parsed form used for debugging.
type BillingPayment struct {
	ID       string        `json:"id"`
	DesignID string        `json:"design_id"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
