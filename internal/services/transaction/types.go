package transaction

import (
	"github.com/shopspring/decimal"

	"flux/internal/errors"
)

// TransferRequest is the validated input to the engine. The HTTP layer
// builds and validates it before the engine sees it; the engine re-checks
// the same rules defensively.
type TransferRequest struct {
	PayerID uint
	PayeeID uint
	Amount  decimal.Decimal
}

// Validate enforces the structural rules a well-formed request satisfies.
func (r TransferRequest) Validate(ceiling decimal.Decimal) error {
	if r.PayerID == r.PayeeID {
		return errors.ErrSameParticipant
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) || r.Amount.GreaterThan(ceiling) {
		return errors.ErrInvalidAmount
	}
	return nil
}
