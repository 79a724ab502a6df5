package errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrWalletMissing = &DomainError{
		Code:    "WALLET_NOT_FOUND",
		Message: "user has no wallet",
	}
	ErrSameParticipant = &DomainError{
		Code:    "SAME_PARTICIPANT",
		Message: "payer and payee must be different users",
	}
	ErrMerchantPayer = &DomainError{
		Code:    "MERCHANT_CANNOT_TRANSFER",
		Message: "merchants cannot initiate transfers",
	}
	ErrInvalidAmount = &DomainError{
		Code:    "INVALID_AMOUNT",
		Message: "invalid transfer amount",
	}
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient wallet balance",
	}
	ErrAuthorizationDenied = &DomainError{
		Code:    "AUTHORIZATION_DENIED",
		Message: "transfer not authorized",
	}
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email already registered",
	}
	ErrDocumentTaken = &DomainError{
		Code:    "DOCUMENT_TAKEN",
		Message: "document already registered",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}

	// ErrPersistenceFailure is the generic storage fault surfaced to callers
	// without leaking storage detail. Unlike the kinds above it is unexpected
	// and logged at error level where it occurs.
	ErrPersistenceFailure = &DomainError{
		Code:    "PERSISTENCE_FAILURE",
		Message: "could not process the transaction",
	}
)

// InsufficientBalanceError carries the balance and the requested amount for
// diagnostics. It matches ErrInsufficientBalance under errors.Is.
type InsufficientBalanceError struct {
	Balance  decimal.Decimal
	Required decimal.Decimal
}

func NewInsufficientBalance(balance, required decimal.Decimal) *InsufficientBalanceError {
	return &InsufficientBalanceError{Balance: balance, Required: required}
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: have %s, need %s", e.Balance, e.Required)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
