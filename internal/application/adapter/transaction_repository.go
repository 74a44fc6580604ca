// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bytebank/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	UserID uuid.UUID

	// Types restricts the list to the given transaction types. Empty means all.
	Types []entity.TransactionType

	// Date restricts the list to movements on a single calendar day.
	Date *time.Time

	// AmountSearch matches transactions whose formatted amount contains the
	// given digits, mirroring the client-side amount search box.
	AmountSearch string
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction read operations.
// Writes go through LedgerRepository so the transaction row and the ledger
// aggregates always change together.
type TransactionRepository interface {
	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions based on filter criteria with
	// pagination, newest date first.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)
}
