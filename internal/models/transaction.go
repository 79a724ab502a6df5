package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses
const (
	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

// Transaction is a ledger entry for a transfer attempt. A transaction is
// built in memory as PENDING and only ever persisted as COMPLETED (inside
// the unit-of-work) or FAILED (best-effort, after an aborted one).
type Transaction struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Reference string          `gorm:"uniqueIndex;not null" json:"reference"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"amount"`
	PayerID   uint            `gorm:"not null;index" json:"payer_id"`
	PayeeID   uint            `gorm:"not null;index" json:"payee_id"`
	Status    string          `gorm:"not null;default:'PENDING'" json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MarkCompleted transitions the transaction to its terminal success state.
func (t *Transaction) MarkCompleted() {
	t.Status = TransactionStatusCompleted
}

// MarkFailed transitions the transaction to its terminal failure state.
func (t *Transaction) MarkFailed() {
	t.Status = TransactionStatusFailed
}
