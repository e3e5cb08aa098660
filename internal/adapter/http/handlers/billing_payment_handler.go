package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "woodcraft/internal/adapter/http/dto/response"
	"woodcraft/internal/usecase"
	"woodcraft/pkg"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for design payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// CreatePaymentByDesignID charges the final price of the design in the path.
func (h *BillingPaymentHandler) CreatePaymentByDesignID(c *gin.Context) {
	designID := c.Param("design_id")
	log.Printf("[payment][handler] create start design_id=%s", designID)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// Mock mode accepts anything; the use case decides.
		log.Printf("[payment][handler] unreadable payload design_id=%s err=%v", designID, err)
		mpPayload = nil
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), designID, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed design_id=%s err=%v", designID, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success design_id=%s payment_id=%s status=%s", designID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByDesignID returns the latest payment for a design.
func (h *BillingPaymentHandler) GetPaymentByDesignID(c *gin.Context) {
	designID := c.Param("design_id")

	payments, err := h.usecase.ListByDesignID(c.Request.Context(), designID)
	if err != nil {
		log.Printf("[payment][handler] get-by-design failed design_id=%s err=%v", designID, err)
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := mapBillingPaymentError(usecase.ErrBillingPaymentNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentDesignID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDesignNotApproved):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_APPROVED", "Design not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrDesignMissingFinalPrice):
		return pkg.NewDomainErrorSimple("DESIGN_MISSING_FINAL_PRICE", "Approved design has no final price", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
