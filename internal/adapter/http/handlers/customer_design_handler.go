package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	request "woodcraft/internal/adapter/http/dto/request"
	response "woodcraft/internal/adapter/http/dto/response"
	"woodcraft/internal/domain/entities"
	"woodcraft/internal/usecase"
	"woodcraft/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDesignPayload = pkg.NewDomainErrorSimple("INVALID_DESIGN_INPUT", "Invalid design payload", http.StatusBadRequest)
)

// CustomerDesignHandler handles the stored design lifecycle.
type CustomerDesignHandler struct {
	usecase usecase.ICustomerDesignUseCase
}

func NewCustomerDesignHandler(uc usecase.ICustomerDesignUseCase) *CustomerDesignHandler {
	return &CustomerDesignHandler{usecase: uc}
}

func (h *CustomerDesignHandler) CreateDesign(c *gin.Context) {
	var payload request.CreateCustomerDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateDesign(c.Request.Context(), usecase.CreateDesignInput{
		UserID:         strings.TrimSpace(payload.UserID),
		Description:    payload.DesignDescription,
		DecorationType: payload.DecorationType,
		Material:       payload.ResolveMaterial(),
		Dimensions:     payload.Dimensions(),
		TaskID:         strings.TrimSpace(payload.TaskID),
		ModelURL:       strings.TrimSpace(payload.ModelURL),
		ModelImageURL:  strings.TrimSpace(payload.ModelImageURL),
	})
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomerDesign(created))
}

// ListDesigns lists one customer's designs, or every design when user_id is absent.
func (h *CustomerDesignHandler) ListDesigns(c *gin.Context) {
	var (
		items []entities.CustomerDesign
		err   error
	)
	if userID, ok := c.GetQuery("user_id"); ok {
		items, err = h.usecase.ListByUserID(c.Request.Context(), userID)
	} else {
		items, err = h.usecase.ListAll(c.Request.Context())
	}
	if err != nil {
		h.fail(c, "list", "", err)
		return
	}

	c.JSON(http.StatusOK, response.FromCustomerDesigns(items))
}

func (h *CustomerDesignHandler) GetDesign(c *gin.Context) {
	h.respond(c, "get", h.usecase.GetByID)
}

func (h *CustomerDesignHandler) RefreshGeneration(c *gin.Context) {
	h.respond(c, "refresh", h.usecase.RefreshGeneration)
}

func (h *CustomerDesignHandler) ApproveDesign(c *gin.Context) {
	var payload request.ApproveDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCustomerDesignError(usecase.ErrInvalidFinalPrice)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, "approve", func(ctx context.Context, id string) (entities.CustomerDesign, error) {
		return h.usecase.Approve(ctx, id, payload.FinalPrice)
	})
}

func (h *CustomerDesignHandler) RejectDesign(c *gin.Context) {
	var payload request.RejectDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := mapCustomerDesignError(usecase.ErrMissingRejectionMessage)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.respond(c, "reject", func(ctx context.Context, id string) (entities.CustomerDesign, error) {
		return h.usecase.Reject(ctx, id, payload.Message)
	})
}

func (h *CustomerDesignHandler) StartProduction(c *gin.Context) {
	h.respond(c, "start", h.usecase.StartProduction)
}

func (h *CustomerDesignHandler) CompleteDesign(c *gin.Context) {
	h.respond(c, "complete", h.usecase.Complete)
}

func (h *CustomerDesignHandler) respond(
	c *gin.Context,
	action string,
	run func(ctx context.Context, id string) (entities.CustomerDesign, error),
) {
	id := c.Param("id")
	d, err := run(c.Request.Context(), id)
	if err != nil {
		h.fail(c, action, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerDesign(d))
}

func (h *CustomerDesignHandler) fail(c *gin.Context, action, id string, err error) {
	log.Printf("[design][handler] %s failed id=%s err=%v", action, id, err)
	appErr := mapCustomerDesignError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCustomerDesignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDesignID), errors.Is(err, usecase.ErrInvalidDesignInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFinalPrice):
		return pkg.NewDomainErrorSimple("INVALID_FINAL_PRICE", "Final price must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingRejectionMessage):
		return pkg.NewDomainErrorSimple("MISSING_REJECTION_MESSAGE", "A rejection message is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingTaskID):
		return pkg.NewDomainErrorSimple("MISSING_TASK_ID", "Design has no generation task", http.StatusConflict)
	case errors.Is(err, usecase.ErrDesignNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_NOT_FOUND", "Design not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDesignTransition):
		return pkg.NewDomainErrorSimple("INVALID_DESIGN_TRANSITION", "Design cannot move to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrGenerationFailed):
		return pkg.NewDomainErrorSimple("GENERATION_FAILED", "Model generation failed", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGenerationUnavailable):
		return pkg.NewDomainError("GENERATION_UNAVAILABLE", "Generation service unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
