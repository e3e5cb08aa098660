package handlers

import (
	"log"
	"net/http"

	request "woodcraft/internal/adapter/http/dto/request"
	response "woodcraft/internal/adapter/http/dto/response"
	"woodcraft/internal/usecase"

	"github.com/gin-gonic/gin"
)

const msgInvalidDesignRequest = "Invalid design request"

// DesignHandler serves the design generation endpoints.
//
// Both endpoints answer with the structured {success, message} body even when
// the generation service is down; they never block on model completion.
type DesignHandler struct {
	usecase usecase.IDesignWorkflowUseCase
}

func NewDesignHandler(uc usecase.IDesignWorkflowUseCase) *DesignHandler {
	return &DesignHandler{usecase: uc}
}

// RequestDesign submits a generation task and returns the price quote.
//
// @Summary      Request a custom design
// @Tags         designs
// @Accept       json
// @Produce      json
// @Param        design  body      request.DesignRequest  true  "Design description"
// @Success      200     {object}  response.DesignQuoteResponse
// @Failure      400     {object}  response.DesignQuoteResponse
// @Router       /initiate_task_id [post]
func (h *DesignHandler) RequestDesign(c *gin.Context) {
	var payload request.DesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[design][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.DesignQuoteResponse{Success: false, Message: msgInvalidDesignRequest})
		return
	}

	quote := h.usecase.RequestDesign(c.Request.Context(), payload.ToEntity())
	log.Printf("[design][handler] request done success=%t task_id=%s", quote.Success, quote.TaskID)
	c.JSON(http.StatusOK, response.FromDesignQuote(quote))
}

// GetTaskStatus runs a single status check; clients re-invoke it to wait.
//
// @Summary      Check a generation task
// @Tags         designs
// @Produce      json
// @Param        task_id  path      string  true  "Generation task id"
// @Success      200      {object}  response.TaskStatusResponse
// @Router       /get_task_status/{task_id} [get]
func (h *DesignHandler) GetTaskStatus(c *gin.Context) {
	report := h.usecase.CheckStatus(c.Request.Context(), c.Param("task_id"))
	c.JSON(http.StatusOK, response.FromTaskStatusReport(report))
}
