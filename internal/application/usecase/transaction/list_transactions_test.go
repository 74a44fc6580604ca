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

func TestListTransactions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUserID := uuid.New()

	store := newFakeLedgerStore()
	create := NewCreateTransactionUseCase(store)

	day1 := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	seed := func(owner uuid.UUID, date time.Time, amount int64, txType entity.TransactionType, category *entity.InvestmentCategory) {
		t.Helper()
		if _, err := create.Execute(ctx, CreateTransactionInput{
			UserID:   owner,
			Date:     date,
			Amount:   decimal.NewFromInt(amount),
			Type:     txType,
			Category: category,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	bonds := entity.CategoryGovernmentBonds
	seed(userID, day1, 100, entity.TransactionTypeDeposit, nil)
	seed(userID, day1, 40, entity.TransactionTypeTransfer, nil)
	seed(userID, day2, 30, entity.TransactionTypeInvestment, &bonds)
	seed(otherUserID, day1, 500, entity.TransactionTypeDeposit, nil)

	uc := NewListTransactionsUseCase(store)

	t.Run("lists only the user's transactions", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pagination.Total != 3 {
			t.Errorf("total = %d, want 3", out.Pagination.Total)
		}
	})

	t.Run("filters by type", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{
			UserID: userID,
			Types:  []entity.TransactionType{entity.TransactionTypeInvestment},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pagination.Total != 1 {
			t.Fatalf("total = %d, want 1", out.Pagination.Total)
		}
		if out.Transactions[0].Type != entity.TransactionTypeInvestment {
			t.Errorf("type = %s, want investment", out.Transactions[0].Type)
		}
	})

	t.Run("filters by date", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{
			UserID: userID,
			Date:   &day1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pagination.Total != 2 {
			t.Errorf("total = %d, want 2", out.Pagination.Total)
		}
	})

	t.Run("filters by amount digits", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{
			UserID:       userID,
			AmountSearch: "40",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pagination.Total != 1 {
			t.Errorf("total = %d, want 1", out.Pagination.Total)
		}
	})

	t.Run("applies pagination defaults", func(t *testing.T) {
		out, err := uc.Execute(ctx, ListTransactionsInput{UserID: userID, Page: -3, Limit: 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Pagination.Page != 1 || out.Pagination.Limit != 20 {
			t.Errorf("pagination = %d/%d, want 1/20", out.Pagination.Page, out.Pagination.Limit)
		}
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTransactionsInput{
			UserID: userID,
			Types:  []entity.TransactionType{entity.TransactionType("loan")},
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})
}
