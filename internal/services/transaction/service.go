// Package transaction implements the transfer execution engine: it owns
// the business invariants of a wallet-to-wallet transfer and the
// failure/compensation path around the atomic commit.
package transaction

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"flux/internal/errors"
	"flux/internal/models"
	"flux/internal/repositories"
)

type service struct {
	users      repositories.UserRepository
	wallets    repositories.WalletRepository
	ledger     repositories.TransactionRepository
	uow        repositories.UnitOfWork
	authorizer Authorizer
	notifier   Notifier
	cache      CacheInvalidator
	ceiling    decimal.Decimal
	log        *logrus.Entry
}

// NewService creates the transfer engine. The cache invalidator is
// optional; everything else is required.
func NewService(
	users repositories.UserRepository,
	wallets repositories.WalletRepository,
	ledger repositories.TransactionRepository,
	uow repositories.UnitOfWork,
	authorizer Authorizer,
	notifier Notifier,
	cache CacheInvalidator,
	ceiling decimal.Decimal,
) Service {
	if users == nil || wallets == nil || ledger == nil || uow == nil {
		panic("transaction service: stores and unit-of-work are required")
	}
	if authorizer == nil {
		panic("transaction service: authorizer is required")
	}
	if notifier == nil {
		panic("transaction service: notifier is required")
	}
	return &service{
		users:      users,
		wallets:    wallets,
		ledger:     ledger,
		uow:        uow,
		authorizer: authorizer,
		notifier:   notifier,
		cache:      cache,
		ceiling:    ceiling,
		log:        logrus.WithField("component", "transaction"),
	}
}

// ExecuteTransfer validates the request, consults the authorizer and
// applies both wallet mutations plus the ledger record atomically. The
// notifier runs strictly after commit so a slow external service can
// never hold the database transaction open.
func (s *service) ExecuteTransfer(ctx context.Context, req TransferRequest) (*models.Transaction, error) {
	payer, err := s.users.GetByID(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	payee, err := s.users.GetByID(ctx, req.PayeeID)
	if err != nil {
		return nil, err
	}

	if req.PayerID == req.PayeeID {
		return nil, errors.ErrSameParticipant
	}
	if payer.IsMerchant() {
		return nil, errors.ErrMerchantPayer
	}

	payerWallet, err := s.wallets.GetByUserID(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.wallets.GetByUserID(ctx, req.PayeeID); err != nil {
		return nil, err
	}

	if req.Amount.LessThanOrEqual(decimal.Zero) || req.Amount.GreaterThan(s.ceiling) {
		return nil, errors.ErrInvalidAmount
	}
	if payerWallet.Balance.LessThan(req.Amount) {
		return nil, errors.NewInsufficientBalance(payerWallet.Balance, req.Amount)
	}

	authorized, err := s.authorizer.Authorize(ctx, req.PayerID, req.PayeeID, req.Amount)
	if err != nil {
		// Fail closed: an unreachable oracle denies the transfer.
		s.log.WithFields(logrus.Fields{
			"payer": req.PayerID,
			"payee": req.PayeeID,
			"error": err,
		}).Warn("authorizer unreachable, denying transfer")
		return nil, errors.ErrAuthorizationDenied
	}
	if !authorized {
		return nil, errors.ErrAuthorizationDenied
	}

	tx := &models.Transaction{
		Reference: "TXN-" + uuid.NewString(),
		Amount:    req.Amount,
		PayerID:   req.PayerID,
		PayeeID:   req.PayeeID,
		Status:    models.TransactionStatusPending,
	}

	if err := s.uow.RunAtomically(ctx, func(stores repositories.Stores) error {
		return s.applyTransfer(ctx, stores, tx)
	}); err != nil {
		if isBusinessError(err) {
			return nil, err
		}
		s.log.WithFields(logrus.Fields{
			"payer":     req.PayerID,
			"payee":     req.PayeeID,
			"reference": tx.Reference,
			"error":     err,
		}).Error("transfer commit failed")
		s.recordFailure(ctx, tx)
		return nil, errors.ErrPersistenceFailure
	}

	s.afterCommit(ctx, payer, payee, tx)
	return tx, nil
}

// applyTransfer runs inside the unit-of-work. Wallets are re-fetched under
// row locks, in ascending user-id order so two concurrent transfers over
// the same pair cannot deadlock, and the balance check is repeated against
// the locked rows.
func (s *service) applyTransfer(ctx context.Context, stores repositories.Stores, tx *models.Transaction) error {
	first, second := tx.PayerID, tx.PayeeID
	if second < first {
		first, second = second, first
	}

	locked := make(map[uint]*models.Wallet, 2)
	for _, userID := range []uint{first, second} {
		wallet, err := stores.Wallets.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		locked[userID] = wallet
	}

	payerWallet := locked[tx.PayerID]
	payeeWallet := locked[tx.PayeeID]

	if err := payerWallet.Debit(tx.Amount); err != nil {
		return err
	}
	if err := payeeWallet.Credit(tx.Amount); err != nil {
		return err
	}

	if err := stores.Wallets.Save(ctx, payerWallet); err != nil {
		return err
	}
	if err := stores.Wallets.Save(ctx, payeeWallet); err != nil {
		return err
	}

	tx.MarkCompleted()
	return stores.Transactions.Save(ctx, tx)
}

// recordFailure persists a FAILED ledger row outside the aborted
// unit-of-work as a forensic trail. Best-effort only.
func (s *service) recordFailure(ctx context.Context, tx *models.Transaction) {
	failed := *tx
	failed.ID = 0
	failed.MarkFailed()
	if err := s.ledger.Save(ctx, &failed); err != nil {
		s.log.WithFields(logrus.Fields{
			"reference": tx.Reference,
			"error":     err,
		}).Warn("could not record failed transaction")
	}
}

// afterCommit handles the side channels of a committed transfer: cache
// invalidation and best-effort notification of both parties.
func (s *service) afterCommit(ctx context.Context, payer, payee *models.User, tx *models.Transaction) {
	if s.cache != nil {
		for _, userID := range []uint{payer.ID, payee.ID} {
			if err := s.cache.InvalidateWallet(ctx, userID); err != nil {
				s.log.WithFields(logrus.Fields{
					"user":  userID,
					"error": err,
				}).Warn("wallet cache invalidation failed")
			}
		}
	}

	if err := s.notifier.NotifyTransfer(ctx, payer.ID, payee.ID, tx.Amount); err != nil {
		s.log.WithFields(logrus.Fields{
			"reference": tx.Reference,
			"error":     err,
		}).Warn("transfer notification failed")
	}
}

// GetUserHistory returns the transactions a user participated in.
func (s *service) GetUserHistory(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	txs, err := s.ledger.GetByParticipant(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}
	return txs, nil
}

func isBusinessError(err error) bool {
	for _, kind := range []error{
		errors.ErrUserNotFound,
		errors.ErrWalletMissing,
		errors.ErrSameParticipant,
		errors.ErrMerchantPayer,
		errors.ErrInvalidAmount,
		errors.ErrInsufficientBalance,
		errors.ErrAuthorizationDenied,
	} {
		if stderrors.Is(err, kind) {
			return true
		}
	}
	return false
}
