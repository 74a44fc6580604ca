package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/application/adapter"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/domain/ledger"
)

// UpdateTransactionInput represents the input for transaction editing.
// Only the amount and date are editable; changing the type or category of a
// recorded movement would be a different movement, so the client records a
// new transaction instead.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
}

// UpdateTransactionOutput represents the output of transaction editing.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction editing logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	ledgerRepo      adapter.LedgerRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	ledgerRepo adapter.LedgerRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
	}
}

// Execute performs the transaction edit. The ledger is adjusted by the
// difference between the new and old amounts, so editing and then deleting
// nets out exactly like deleting the original.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if transaction.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to edit this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	delta := ledger.ForAmountChange(transaction.Type, transaction.Category, transaction.Amount, input.Amount)

	transaction.Amount = input.Amount
	transaction.Date = input.Date
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerRepo.UpdateWithDelta(ctx, transaction, delta); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}
