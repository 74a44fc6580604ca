package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/application/adapter"
	"github.com/bytebank/backend/internal/domain/entity"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/domain/ledger"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID     uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal
	Type       entity.TransactionType
	Category   *entity.InvestmentCategory
	Attachment *entity.Attachment
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(ledgerRepo adapter.LedgerRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute performs the transaction creation. The transaction row and the
// user's balance and investment aggregates are written in one database
// transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTypeAndCategory(input.Type, input.Category); err != nil {
		return nil, err
	}

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

	transaction := entity.NewTransaction(
		input.UserID,
		input.Date,
		input.Amount,
		input.Type,
		input.Category,
		input.Attachment,
	)

	delta := ledger.ForCreate(input.Type, input.Category, input.Amount)

	if err := uc.ledgerRepo.CreateWithDelta(ctx, transaction, delta); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// validateTypeAndCategory checks the type is known and the category matches
// what the type requires: investments and withdrawals must name one of the
// five categories, deposits and transfers must not carry one.
func validateTypeAndCategory(transactionType entity.TransactionType, category *entity.InvestmentCategory) error {
	if !transactionType.Valid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'deposit', 'transfer', 'investment' or 'withdrawal'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if transactionType.RequiresCategory() {
		if category == nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeMissingCategory,
				"investment category is required for this transaction type",
				domainerror.ErrMissingInvestmentCategory,
			)
		}
		if !category.Valid() {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategory,
				"unknown investment category",
				domainerror.ErrInvalidInvestmentCategory,
			)
		}
		return nil
	}

	if category != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedCategory,
			"investment category is not allowed for this transaction type",
			domainerror.ErrUnexpectedInvestmentCategory,
		)
	}
	return nil
}
