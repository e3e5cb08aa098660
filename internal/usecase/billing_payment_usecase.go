package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase/interfaces"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentDesignID         = errors.New("invalid design_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrDesignNotApproved              = errors.New("design not approved")
	ErrDesignMissingFinalPrice        = errors.New("approved design has no final price")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings carries the Mercado Pago knobs the payment flow needs.
// MockMode relaxes payload checks; the gateway itself fakes the charge.
type PaymentSettings struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (s PaymentSettings) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(s.AccessToken), "TEST-")
}

// IBillingPaymentUseCase charges the final price of an approved design.
//
// Requested behavior:
//   - Only approved designs with a final price can be paid.
//   - The stored final price is always the transaction amount.
//   - A successful payment starts production of the design.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, designID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByDesignID(ctx context.Context, designID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo       interfaces.IBillingPaymentRepository
	designRepo interfaces.ICustomerDesignRepository
	gateway    interfaces.IPaymentGateway
	settings   PaymentSettings
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, designRepo interfaces.ICustomerDesignRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, designRepo: designRepo, gateway: gateway, settings: settings}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, designID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_design_id=%q payload_len=%d", designID, len(mpPayload))
	mockMode := u.settings.MockMode
	designID = strings.TrimSpace(designID)
	if designID == "" {
		log.Printf("[payment][usecase] invalid design_id (empty)")
		return entities.BillingPayment{}, ErrInvalidPaymentDesignID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload design_id=%s", designID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured design_id=%s", designID)
		return entities.BillingPayment{}, errors.New("payment gateway not configured")
	}
	if u.designRepo == nil {
		log.Printf("[payment][usecase] design repository not configured design_id=%s", designID)
		return entities.BillingPayment{}, errors.New("design repository not configured")
	}

	design, err := u.designRepo.GetByID(ctx, designID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading design design_id=%s err=%v", designID, err)
		return entities.BillingPayment{}, err
	}
	if design.ID == "" {
		log.Printf("[payment][usecase] design not found design_id=%s", designID)
		return entities.BillingPayment{}, ErrDesignNotFound
	}
	if design.Status != entities.DesignStatusApproved {
		log.Printf("[payment][usecase] design not approved design_id=%s status=%s", designID, design.Status)
		return entities.BillingPayment{}, ErrDesignNotApproved
	}
	if design.FinalPrice == nil || *design.FinalPrice <= 0 {
		log.Printf("[payment][usecase] approved design without final price design_id=%s", designID)
		return entities.BillingPayment{}, ErrDesignMissingFinalPrice
	}
	amount := *design.FinalPrice
	log.Printf("[payment][usecase] design loaded design_id=%s status=%s final_price=%.2f", designID, design.Status, amount)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		log.Printf("[payment][usecase] payload is not an object design_id=%s", designID)
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id design_id=%s", designID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer design_id=%s", designID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago reconciles events through external_reference.
	reqMap["external_reference"] = designID
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Custom design %s", designID)
	}
	reqMap["transaction_amount"] = amount
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	log.Printf("[payment][usecase] calling payment gateway design_id=%s mock=%t", designID, mockMode)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed design_id=%s err=%v", designID, err)
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.Printf("[payment][usecase] payment gateway answered design_id=%s provider_payment_id=%s provider_status=%s", designID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed design_id=%s err=%v", designID, err)
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		DesignID:     designID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed design_id=%s payment_id=%s err=%v", designID, p.ID, err)
		return entities.BillingPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		// The payment is already stored; a failed hand-off to production is only logged.
		moved, err := u.designRepo.Transition(ctx, designID, entities.DesignStatusApproved, entities.DesignChange{Status: entities.DesignStatusInProgress})
		switch {
		case err != nil:
			log.Printf("[payment][usecase] start production failed design_id=%s err=%v", designID, err)
		case moved.ID == "":
			log.Printf("[payment][usecase] design left approved state before production design_id=%s", designID)
		}
	}

	log.Printf("[payment][usecase] create-and-approve done design_id=%s payment_id=%s status=%s", designID, created.ID, created.Status)
	return created, nil
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
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

// ensurePayerDefaults fills payer.type and, in sandbox, a test payer email
// when neither payer.id nor payer.email was sent.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
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
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
		payer["email"] = email
	} else if u.settings.sandbox() {
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox user id for its email,
// since the sandbox rejects payments addressed by test user id.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.settings.sandbox() {
		return
	}
	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}
	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
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

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByDesignID(ctx context.Context, designID string) ([]entities.BillingPayment, error) {
	designID = strings.TrimSpace(designID)
	if designID == "" {
		return nil, ErrInvalidPaymentDesignID
	}
	return u.repo.ListByDesignID(ctx, designID)
}
