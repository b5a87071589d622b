package models

import "time"

// LineItem represents one row of the requisitions_lineitems table
type LineItem struct {
	ID            int64     `json:"id,omitempty"`
	RequisitionID string    `json:"requisition_id"`
	ItemName      string    `json:"item_name"`
	MaterialCode  string    `json:"material_code"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// LineItemEvent is pushed to the notifier queue after a successful insert
type LineItemEvent struct {
	RequisitionID string    `json:"requisitionId"`
	ItemName      string    `json:"itemName"`
	MaterialCode  string    `json:"materialCode"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"createdAt"`
}
