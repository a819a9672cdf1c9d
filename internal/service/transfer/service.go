package transfer

import (
	"context"
	"fmt"
	"math"

	"budgetd/internal/apperr"
	"budgetd/internal/repository"
	"github.com/jmoiron/sqlx"
)

// Service moves balance between two envelopes atomically. The legacy service
// issued the debit and credit as independent statements and could leave the
// source debited without the destination credited; here both run in one
// transaction with the rows locked.
type Service struct {
	db   *sqlx.DB
	envs repository.EnvelopesRepository
}

func New(db *sqlx.DB, envs repository.EnvelopesRepository) *Service {
	return &Service{db: db, envs: envs}
}

// Transfer subtracts amount from the source envelope and adds it to the
// destination. Any failed precondition (non-positive amount, unknown id,
// short balance) reports apperr.ErrInsufficientFunds, matching the legacy
// contract.
func (s *Service) Transfer(ctx context.Context, fromID, toID int64, amount float64) error {
	if amount <= 0 || math.IsNaN(amount) {
		return apperr.ErrInsufficientFunds
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	from, err := s.envs.GetForUpdate(ctx, tx, fromID)
	if err != nil {
		return fmt.Errorf("lock source: %w", err)
	}
	to, err := s.envs.GetForUpdate(ctx, tx, toID)
	if err != nil {
		return fmt.Errorf("lock destination: %w", err)
	}
	if from == nil || to == nil {
		return apperr.ErrInsufficientFunds
	}
	if from.Amount < amount {
		return apperr.ErrInsufficientFunds
	}

	n, err := s.envs.AdjustAmount(ctx, tx, fromID, -amount)
	if err != nil {
		return fmt.Errorf("debit: %w", err)
	}
	if n != 1 {
		return apperr.ErrUnexpected
	}

	n, err = s.envs.AdjustAmount(ctx, tx, toID, amount)
	if err != nil {
		return fmt.Errorf("credit: %w", err)
	}
	if n != 1 {
		return apperr.ErrUnexpected
	}

	return tx.Commit()
}
