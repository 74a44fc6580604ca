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

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("deposit increases the balance", func(t *testing.T) {
		store := newFakeLedgerStore()
		uc := NewCreateTransactionUseCase(store)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(100),
			Type:   entity.TransactionTypeDeposit,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Transaction.FormattedAmount != "R$ 100,00" {
			t.Errorf("formatted amount = %q, want %q", out.Transaction.FormattedAmount, "R$ 100,00")
		}

		balance, _ := store.GetBalance(ctx, userID)
		if !balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("balance = %s, want 100", balance)
		}
	})

	t.Run("investment funds its category and debits the balance", func(t *testing.T) {
		store := newFakeLedgerStore()
		uc := NewCreateTransactionUseCase(store)

		category := entity.CategoryGovernmentBonds
		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     date,
			Amount:   decimal.NewFromInt(30),
			Type:     entity.TransactionTypeInvestment,
			Category: &category,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		balance, _ := store.GetBalance(ctx, userID)
		if !balance.Equal(decimal.NewFromInt(-30)) {
			t.Errorf("balance = %s, want -30", balance)
		}

		summary, _ := store.GetInvestmentSummary(ctx, userID)
		if !summary.GovernmentBonds.Equal(decimal.NewFromInt(30)) {
			t.Errorf("government bonds = %s, want 30", summary.GovernmentBonds)
		}
		if !summary.FixedTotal.Equal(decimal.NewFromInt(30)) {
			t.Errorf("fixed total = %s, want 30", summary.FixedTotal)
		}
	})

	t.Run("transfer is recorded as a negative movement", func(t *testing.T) {
		store := newFakeLedgerStore()
		uc := NewCreateTransactionUseCase(store)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(40),
			Type:   entity.TransactionTypeTransfer,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Transaction.FormattedAmount != "- R$ 40,00" {
			t.Errorf("formatted amount = %q, want %q", out.Transaction.FormattedAmount, "- R$ 40,00")
		}
	})

	t.Run("rejects unknown transaction type", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeLedgerStore())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(10),
			Type:   entity.TransactionType("loan"),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects investment without category", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeLedgerStore())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.NewFromInt(10),
			Type:   entity.TransactionTypeInvestment,
		})
		if !errors.Is(err, domainerror.ErrMissingInvestmentCategory) {
			t.Errorf("expected ErrMissingInvestmentCategory, got %v", err)
		}
	})

	t.Run("rejects deposit with category", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeLedgerStore())

		category := entity.CategoryStockMarket
		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     date,
			Amount:   decimal.NewFromInt(10),
			Type:     entity.TransactionTypeDeposit,
			Category: &category,
		})
		if !errors.Is(err, domainerror.ErrUnexpectedInvestmentCategory) {
			t.Errorf("expected ErrUnexpectedInvestmentCategory, got %v", err)
		}
	})

	t.Run("rejects unknown category label", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeLedgerStore())

		category := entity.InvestmentCategory("crypto")
		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:   userID,
			Date:     date,
			Amount:   decimal.NewFromInt(10),
			Type:     entity.TransactionTypeInvestment,
			Category: &category,
		})
		if !errors.Is(err, domainerror.ErrInvalidInvestmentCategory) {
			t.Errorf("expected ErrInvalidInvestmentCategory, got %v", err)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		uc := NewCreateTransactionUseCase(newFakeLedgerStore())

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID: userID,
			Date:   date,
			Amount: decimal.Zero,
			Type:   entity.TransactionTypeDeposit,
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
	})
}
