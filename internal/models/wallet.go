package models

import (
	"time"

	"github.com/shopspring/decimal"

	"flux/internal/errors"
)

// Wallet is the mutable balance record owned by exactly one user.
// Balance is stored and compared as a decimal; float comparisons never
// decide solvency.
type Wallet struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	UserID    uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Credit increases the balance. The amount must be positive.
func (w *Wallet) Credit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.ErrInvalidAmount
	}
	w.Balance = w.Balance.Add(amount)
	return nil
}

// Debit decreases the balance. The amount must be positive and must not
// exceed the current balance; this re-check is the last line of defense
// against concurrent transfers racing past the engine's solvency check.
func (w *Wallet) Debit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return errors.ErrInvalidAmount
	}
	if w.Balance.LessThan(amount) {
		return errors.NewInsufficientBalance(w.Balance, amount)
	}
	w.Balance = w.Balance.Sub(amount)
	return nil
}
