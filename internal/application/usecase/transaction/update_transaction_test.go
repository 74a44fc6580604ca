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

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	seedInvestment := func(t *testing.T, store *fakeLedgerStore, amount int64) *entity.Transaction {
		t.Helper()
		category := entity.CategoryGovernmentBonds
		out, err := NewCreateTransactionUseCase(store).Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     date,
			Amount:   decimal.NewFromInt(amount),
			Type:     entity.TransactionTypeInvestment,
			Category: &category,
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		return store.transactions[out.Transaction.ID]
	}

	t.Run("edit adjusts balance and category by the difference", func(t *testing.T) {
		store := newFakeLedgerStore()
		created := seedInvestment(t, store, 30)

		uc := NewUpdateTransactionUseCase(store, store)
		newDate := date.AddDate(0, 0, 5)

		out, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			UserID:        userID,
			Amount:        decimal.NewFromInt(50),
			Date:          newDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Transaction.Amount.Equal(decimal.NewFromInt(50)) {
			t.Errorf("amount = %s, want 50", out.Transaction.Amount)
		}
		if !out.Transaction.Date.Equal(newDate) {
			t.Errorf("date = %v, want %v", out.Transaction.Date, newDate)
		}

		balance, _ := store.GetBalance(ctx, userID)
		if !balance.Equal(decimal.NewFromInt(-50)) {
			t.Errorf("balance = %s, want -50", balance)
		}

		summary, _ := store.GetInvestmentSummary(ctx, userID)
		if !summary.GovernmentBonds.Equal(decimal.NewFromInt(50)) {
			t.Errorf("government bonds = %s, want 50", summary.GovernmentBonds)
		}
	})

	t.Run("editing to the same amount leaves the ledger untouched", func(t *testing.T) {
		store := newFakeLedgerStore()
		created := seedInvestment(t, store, 30)

		uc := NewUpdateTransactionUseCase(store, store)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			UserID:        userID,
			Amount:        decimal.NewFromInt(30),
			Date:          date,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		balance, _ := store.GetBalance(ctx, userID)
		if !balance.Equal(decimal.NewFromInt(-30)) {
			t.Errorf("balance = %s, want -30", balance)
		}
	})

	t.Run("rejects edits by another user", func(t *testing.T) {
		store := newFakeLedgerStore()
		created := seedInvestment(t, store, 30)

		uc := NewUpdateTransactionUseCase(store, store)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: created.ID,
			UserID:        uuid.New(),
			Amount:        decimal.NewFromInt(50),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", err)
		}
	})

	t.Run("unknown transaction yields not found", func(t *testing.T) {
		store := newFakeLedgerStore()

		uc := NewUpdateTransactionUseCase(store, store)
		_, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: uuid.New(),
			UserID:        userID,
			Amount:        decimal.NewFromInt(50),
			Date:          date,
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestEditThenDeleteNetsToZero(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	store := newFakeLedgerStore()
	storage := &fakeFileStorage{}

	category := entity.CategoryInvestmentFunds
	out, err := NewCreateTransactionUseCase(store).Execute(ctx, CreateTransactionInput{
		UserID:   userID,
		Date:     date,
		Amount:   decimal.NewFromInt(30),
		Type:     entity.TransactionTypeInvestment,
		Category: &category,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := NewUpdateTransactionUseCase(store, store).Execute(ctx, UpdateTransactionInput{
		TransactionID: out.Transaction.ID,
		UserID:        userID,
		Amount:        decimal.NewFromInt(80),
		Date:          date,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if _, err := NewDeleteTransactionUseCase(store, store, storage).Execute(ctx, DeleteTransactionInput{
		TransactionID: out.Transaction.ID,
		UserID:        userID,
	}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	balance, _ := store.GetBalance(ctx, userID)
	if !balance.IsZero() {
		t.Errorf("balance = %s, want 0", balance)
	}

	summary, _ := store.GetInvestmentSummary(ctx, userID)
	if !summary.InvestmentFunds.IsZero() || !summary.GrandTotal.IsZero() {
		t.Errorf("investment funds = %s grand = %s, want zero", summary.InvestmentFunds, summary.GrandTotal)
	}
}
