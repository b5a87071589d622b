package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"requisition-actions-server/models"
)

// requiredParams are checked in this fixed order; error messages list the
// missing names in the same order.
var requiredParams = []string{"requisition_id", "item_name", "quantity"}

type LineItemService struct {
	db       *DBService
	archive  ArchiveService
	notifier Notifier
}

func NewLineItemService(db *DBService, archive ArchiveService, notifier Notifier) *LineItemService {
	return &LineItemService{
		db:       db,
		archive:  archive,
		notifier: notifier,
	}
}

// AddLineItem runs the full add-line-item action: validate the normalized
// parameters, insert exactly one row, and build the protocol envelope. Every
// recognized failure folds into an error envelope; this never returns an
// error to the transport.
func (s *LineItemService) AddLineItem(ctx context.Context, req *models.InvocationRequest) *models.Envelope {
	params := req.Parameters
	if params == nil {
		params = models.ParameterSet{}
	}

	s.archiveInvocation(ctx, req)

	if missing := missingParams(params); len(missing) > 0 {
		return models.ErrorEnvelope(req, "Missing required field(s): "+strings.Join(missing, ", "), 400)
	}

	quantity, err := strconv.Atoi(params.Get("quantity"))
	if err != nil {
		return models.ErrorEnvelope(req, "Quantity must be an integer", 400)
	}

	item := &models.LineItem{
		RequisitionID: params.Get("requisition_id"),
		ItemName:      params.Get("item_name"),
		MaterialCode:  params.Get("material_code"),
		Quantity:      quantity,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.db.InsertLineItem(ctx, item); err != nil {
		log.Printf("insert line item failed: %v", err)
		return models.ErrorEnvelope(req, "Database error: "+err.Error(), 500)
	}

	s.notifyAdded(ctx, item)

	body := fmt.Sprintf("✓ Added '%s' (Qty %d) to requisition %s.", item.ItemName, item.Quantity, item.RequisitionID)
	return models.SuccessEnvelope(req, item, body)
}

// missingParams reports required parameters that are absent or falsy, in
// declaration order. "0" counts as falsy, so a zero quantity is reported
// missing rather than parsed.
func missingParams(params models.ParameterSet) []string {
	var missing []string
	for _, name := range requiredParams {
		if isFalsy(params.Get(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}

func isFalsy(value string) bool {
	return value == "" || value == "0"
}

// archiveInvocation stores the raw invocation payload. Best-effort: failures
// are logged and never change the outcome of the action.
func (s *LineItemService) archiveInvocation(ctx context.Context, req *models.InvocationRequest) {
	if s.archive == nil {
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		log.Printf("archive: failed to marshal invocation: %v", err)
		return
	}

	key := GenerateEventKey(time.Now().UTC())
	if err := s.archive.SaveEvent(ctx, key, payload); err != nil {
		log.Printf("archive: failed to save invocation %s: %v", key, err)
	}
}

// notifyAdded publishes the inserted line item for downstream consumers.
// Best-effort: the row is already committed when this runs.
func (s *LineItemService) notifyAdded(ctx context.Context, item *models.LineItem) {
	if s.notifier == nil {
		return
	}

	event := &models.LineItemEvent{
		RequisitionID: item.RequisitionID,
		ItemName:      item.ItemName,
		MaterialCode:  item.MaterialCode,
		Quantity:      item.Quantity,
		CreatedAt:     item.CreatedAt,
	}
	if err := s.notifier.PublishLineItemEvent(ctx, event); err != nil {
		log.Printf("notifier: failed to publish line item event: %v", err)
	}
}
