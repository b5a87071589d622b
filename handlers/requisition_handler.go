package handlers

import (
	"github.com/gofiber/fiber/v2"

	"requisition-actions-server/models"
	"requisition-actions-server/services"
)

type RequisitionHandler struct {
	db *services.DBService
}

func NewRequisitionHandler(db *services.DBService) *RequisitionHandler {
	return &RequisitionHandler{db: db}
}

// ListLineItems godoc
// @Summary List line items of a requisition
// @Description Get the line items recorded for a requisition, newest first
// @Tags requisitions
// @Produce json
// @Param id path string true "Requisition ID"
// @Param limit query int false "Number of results to return" default(20)
// @Success 200 {array} models.LineItem
// @Router /api/requisitions/{id}/line-items [get]
func (h *RequisitionHandler) ListLineItems(c *fiber.Ctx) error {
	requisitionID := c.Params("id")
	limit := c.QueryInt("limit", 20)

	items, err := h.db.ListLineItems(c.Context(), requisitionID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if items == nil {
		items = []models.LineItem{}
	}

	return c.JSON(items)
}
