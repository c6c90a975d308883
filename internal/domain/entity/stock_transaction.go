package entity

import "time"

// Movement directions.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// ValidDirection reports whether d is a known movement direction.
func ValidDirection(d string) bool {
	return d == DirectionIn || d == DirectionOut
}

// StockTransaction is one entry of the append-only movement ledger.
// Immutable once created; there is no update or delete path.
type StockTransaction struct {
	ID           string
	PartID       string
	Direction    string // in, out
	Quantity     int    // always > 0; sign comes from Direction
	MachineID    string
	OperatorName string
	Notes        string
	CreatedBy    string // acting user id, passed in explicitly
	CreatedAt    time.Time
}

// Delta returns the signed quantity effect of the transaction.
func (t *StockTransaction) Delta() int {
	if t.Direction == DirectionOut {
		return -t.Quantity
	}
	return t.Quantity
}
