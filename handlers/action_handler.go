package handlers

import (
	"github.com/gofiber/fiber/v2"

	"requisition-actions-server/models"
	"requisition-actions-server/services"
)

type ActionHandler struct {
	service *services.LineItemService
}

func NewActionHandler(svc *services.LineItemService) *ActionHandler {
	return &ActionHandler{service: svc}
}

// AddLineItem godoc
// @Summary Add a line item to a requisition
// @Description Agent action: validates the invocation parameters and appends one line item to the referenced requisition
// @Tags agent-actions
// @Accept json
// @Produce json
// @Param invocation body models.InvocationRequest true "Agent invocation payload"
// @Success 200 {object} models.Envelope
// @Router /agent/actions/add-line-item [post]
func (h *ActionHandler) AddLineItem(c *fiber.Ctx) error {
	var req models.InvocationRequest
	if err := c.BodyParser(&req); err != nil {
		req.Parameters = models.ParameterSet{}
	}

	envelope := h.service.AddLineItem(c.Context(), &req)

	// The agent protocol expects HTTP 200 on every recognized failure; the
	// envelope's statusCode carries the outcome.
	return c.JSON(envelope)
}
