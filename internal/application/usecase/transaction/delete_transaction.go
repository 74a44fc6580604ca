package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bytebank/backend/internal/application/adapter"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/domain/ledger"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Success bool
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	ledgerRepo      adapter.LedgerRepository
	fileStorage     adapter.FileStorage
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	ledgerRepo adapter.LedgerRepository,
	fileStorage adapter.FileStorage,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		fileStorage:     fileStorage,
	}
}

// Execute performs the transaction deletion, applying the exact inverse of
// the transaction's ledger effect. The attachment blob is removed after the
// database commit; a failed blob delete only leaves an orphaned object, so
// it is logged rather than surfaced.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
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
			"not authorized to delete this transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	delta := ledger.ForDelete(transaction.Type, transaction.Category, transaction.Amount)

	if err := uc.ledgerRepo.DeleteWithDelta(ctx, transaction, delta); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	if transaction.Attachment != nil && transaction.Attachment.Path != "" {
		if err := uc.fileStorage.Delete(ctx, transaction.Attachment.Path); err != nil {
			slog.Warn("Failed to delete transaction attachment",
				"transactionID", transaction.ID,
				"path", transaction.Attachment.Path,
				"error", err,
			)
		}
	}

	return &DeleteTransactionOutput{
		Success: true,
	}, nil
}
