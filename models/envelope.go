package models

import "strconv"

// MessageVersion is the protocol version marker carried by every envelope
const MessageVersion = "1.0"

// TextBlock holds the human-readable message of a function response
type TextBlock struct {
	Body string `json:"body"`
}

// SuccessResponseBody echoes the persisted line-item fields alongside the
// confirmation text. material_code is always serialized, even when empty.
type SuccessResponseBody struct {
	Text          TextBlock `json:"TEXT"`
	RequisitionID string    `json:"requisition_id"`
	ItemName      string    `json:"item_name"`
	Quantity      string    `json:"quantity"`
	MaterialCode  string    `json:"material_code"`
}

// ErrorResponseBody carries only the failure text
type ErrorResponseBody struct {
	Text TextBlock `json:"TEXT"`
}

// FunctionResponse wraps either a success or an error response body
type FunctionResponse struct {
	ResponseBody interface{} `json:"responseBody"`
}

// ActionResponse echoes the action-group and function identifiers from the
// invocation
type ActionResponse struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

// Envelope is the fixed agent-protocol response shape. StatusCode sits next
// to the response, not inside it, and is only present on error envelopes.
type Envelope struct {
	MessageVersion string         `json:"messageVersion"`
	Response       ActionResponse `json:"response"`
	StatusCode     int            `json:"statusCode,omitempty"`
}

// SuccessEnvelope builds the success response for a persisted line item
func SuccessEnvelope(req *InvocationRequest, item *LineItem, body string) *Envelope {
	return &Envelope{
		MessageVersion: MessageVersion,
		Response: ActionResponse{
			ActionGroup: req.ActionGroup,
			Function:    req.Function,
			FunctionResponse: FunctionResponse{
				ResponseBody: SuccessResponseBody{
					Text:          TextBlock{Body: body},
					RequisitionID: item.RequisitionID,
					ItemName:      item.ItemName,
					Quantity:      strconv.Itoa(item.Quantity),
					MaterialCode:  item.MaterialCode,
				},
			},
		},
	}
}

// ErrorEnvelope builds an error response with an embedded HTTP-style status
// code. A zero statusCode defaults to 400.
func ErrorEnvelope(req *InvocationRequest, message string, statusCode int) *Envelope {
	if statusCode == 0 {
		statusCode = 400
	}
	return &Envelope{
		MessageVersion: MessageVersion,
		Response: ActionResponse{
			ActionGroup: req.ActionGroup,
			Function:    req.Function,
			FunctionResponse: FunctionResponse{
				ResponseBody: ErrorResponseBody{
					Text: TextBlock{Body: message},
				},
			},
		},
		StatusCode: statusCode,
	}
}
