// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
	"github.com/bytebank/backend/internal/domain/ledger"
)

// LedgerRepository defines the interface for the write side of the ledger.
// Each mutating call persists the transaction change and applies the given
// delta to the user's balance and investment summary in a single database
// transaction, so a partial write can never leave the aggregates stale.
type LedgerRepository interface {
	// CreateWithDelta inserts the transaction and applies delta to the
	// user's ledger aggregates atomically.
	CreateWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error

	// UpdateWithDelta saves the transaction's new amount and date and
	// applies delta atomically.
	UpdateWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error

	// DeleteWithDelta removes the transaction and applies delta atomically.
	DeleteWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error

	// GetBalance returns the user's current account balance, zero when the
	// user has no balance row yet.
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// GetInvestmentSummary returns the user's investment aggregate, the
	// empty aggregate when none has been persisted yet.
	GetInvestmentSummary(ctx context.Context, userID uuid.UUID) (*entity.InvestmentSummary, error)
}
