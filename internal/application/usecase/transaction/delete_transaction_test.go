package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
	domainerror "github.com/bytebank/backend/internal/domain/error"
)

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("delete reverses the ledger effect", func(t *testing.T) {
		store := newFakeLedgerStore()
		storage := &fakeFileStorage{}

		category := entity.CategoryStockMarket
		out, err := NewCreateTransactionUseCase(store).Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     date,
			Amount:   decimal.NewFromInt(25),
			Type:     entity.TransactionTypeInvestment,
			Category: &category,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		uc := NewDeleteTransactionUseCase(store, store, storage)
		result, err := uc.Execute(ctx, DeleteTransactionInput{
			TransactionID: out.Transaction.ID,
			UserID:        userID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Success {
			t.Error("expected Success to be true")
		}

		balance, _ := store.GetBalance(ctx, userID)
		if !balance.IsZero() {
			t.Errorf("balance = %s, want 0", balance)
		}

		summary, _ := store.GetInvestmentSummary(ctx, userID)
		if !summary.StockMarket.IsZero() {
			t.Errorf("stock market = %s, want 0", summary.StockMarket)
		}

		if _, err := store.FindByID(ctx, out.Transaction.ID); !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected transaction to be gone, got %v", err)
		}
	})

	t.Run("delete removes the attachment blob", func(t *testing.T) {
		store := newFakeLedgerStore()
		storage := &fakeFileStorage{}

		out, err := NewCreateTransactionUseCase(store).Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(10),
			Type:   entity.TransactionTypeDeposit,
			Attachment: &entity.Attachment{
				Path: "receipts/u/1_receipt.pdf",
				URL:  "https://storage.example/receipts/u/1_receipt.pdf",
			},
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		uc := NewDeleteTransactionUseCase(store, store, storage)
		if _, err := uc.Execute(ctx, DeleteTransactionInput{
			TransactionID: out.Transaction.ID,
			UserID:        userID,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(storage.deleted) != 1 || storage.deleted[0] != "receipts/u/1_receipt.pdf" {
			t.Errorf("deleted blobs = %v, want the attachment path", storage.deleted)
		}
	})

	t.Run("rejects deletes by another user", func(t *testing.T) {
		store := newFakeLedgerStore()
		storage := &fakeFileStorage{}

		out, err := NewCreateTransactionUseCase(store).Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(10),
			Type:   entity.TransactionTypeDeposit,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		uc := NewDeleteTransactionUseCase(store, store, storage)
		_, err = uc.Execute(ctx, DeleteTransactionInput{
			TransactionID: out.Transaction.ID,
			UserID:        uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})
}
