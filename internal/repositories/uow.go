package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Stores bundles the repositories bound to one transactional scope. The
// closure passed to RunAtomically must use these handles, not the
// standalone repositories, for its writes to participate in the scope.
type Stores struct {
	Users        UserRepository
	Wallets      WalletRepository
	Transactions TransactionRepository
}

// UnitOfWork runs a set of store mutations all-or-nothing.
type UnitOfWork interface {
	// RunAtomically begins a transactional scope, invokes fn with
	// scope-bound stores, commits on nil and rolls back on error. The error
	// is propagated unwrapped so callers can still distinguish business
	// error kinds. Nesting is not supported.
	RunAtomically(ctx context.Context, fn func(Stores) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a unit-of-work over the given database handle.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) RunAtomically(ctx context.Context, fn func(Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Stores{
			Users:        NewUserRepository(tx),
			Wallets:      NewWalletRepository(tx),
			Transactions: NewTransactionRepository(tx),
		})
	})
}
