// Package ledger contains use cases reading the user's ledger aggregates.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/application/adapter"
	"github.com/bytebank/backend/internal/domain/money"
)

// GetBalanceInput represents the input for reading the account balance.
type GetBalanceInput struct {
	UserID uuid.UUID
}

// GetBalanceOutput represents the output of reading the account balance.
type GetBalanceOutput struct {
	Balance          decimal.Decimal
	FormattedBalance string
}

// GetBalanceUseCase handles reading the account balance.
type GetBalanceUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetBalanceUseCase creates a new GetBalanceUseCase instance.
func NewGetBalanceUseCase(ledgerRepo adapter.LedgerRepository) *GetBalanceUseCase {
	return &GetBalanceUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute reads the user's current balance. Users with no recorded
// transactions get zero.
func (uc *GetBalanceUseCase) Execute(ctx context.Context, input GetBalanceInput) (*GetBalanceOutput, error) {
	balance, err := uc.ledgerRepo.GetBalance(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return &GetBalanceOutput{
		Balance:          balance,
		FormattedBalance: money.Format(balance, balance.IsNegative()),
	}, nil
}
