package dto

// ApplyMovementRequest body for POST /api/parts/:id/movements.
type ApplyMovementRequest struct {
	Direction    string `json:"direction"` // in, out
	Quantity     int    `json:"quantity"`
	MachineID    string `json:"machine_id"`
	OperatorName string `json:"operator_name"`
	Notes        string `json:"notes,omitempty"`
}

// ApplyMovementResponse result of a successful movement.
type ApplyMovementResponse struct {
	TransactionID string `json:"transaction_id"`
	NewQuantity   int    `json:"new_quantity"`
}

// ConsistencyResponse result of the ledger replay check for one part.
type ConsistencyResponse struct {
	PartID         string `json:"part_id"`
	PartQuantity   int    `json:"part_quantity"`
	LedgerQuantity int    `json:"ledger_quantity"`
	Consistent     bool   `json:"consistent"`
}
