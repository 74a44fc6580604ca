// Package ledger contains use cases reading the user's ledger aggregates.
package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
	domainledger "github.com/bytebank/backend/internal/domain/ledger"
)

type fakeLedgerRepo struct {
	balance decimal.Decimal
	summary *entity.InvestmentSummary
}

func (r *fakeLedgerRepo) CreateWithDelta(context.Context, *entity.Transaction, domainledger.Delta) error {
	return nil
}

func (r *fakeLedgerRepo) UpdateWithDelta(context.Context, *entity.Transaction, domainledger.Delta) error {
	return nil
}

func (r *fakeLedgerRepo) DeleteWithDelta(context.Context, *entity.Transaction, domainledger.Delta) error {
	return nil
}

func (r *fakeLedgerRepo) GetBalance(context.Context, uuid.UUID) (decimal.Decimal, error) {
	return r.balance, nil
}

func (r *fakeLedgerRepo) GetInvestmentSummary(context.Context, uuid.UUID) (*entity.InvestmentSummary, error) {
	return r.summary, nil
}

func TestGetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("formats a positive balance", func(t *testing.T) {
		uc := NewGetBalanceUseCase(&fakeLedgerRepo{balance: decimal.RequireFromString("1234.56")})

		out, err := uc.Execute(ctx, GetBalanceInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FormattedBalance != "R$ 1.234,56" {
			t.Errorf("formatted balance = %q, want %q", out.FormattedBalance, "R$ 1.234,56")
		}
	})

	t.Run("formats an overdrawn balance with the negative prefix", func(t *testing.T) {
		uc := NewGetBalanceUseCase(&fakeLedgerRepo{balance: decimal.RequireFromString("-20")})

		out, err := uc.Execute(ctx, GetBalanceInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.FormattedBalance != "- R$ 20,00" {
			t.Errorf("formatted balance = %q, want %q", out.FormattedBalance, "- R$ 20,00")
		}
	})
}

func TestGetInvestmentSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("derives percentages from the grand total", func(t *testing.T) {
		summary := entity.EmptyInvestmentSummary()
		summary.ApplyDelta(entity.CategoryGovernmentBonds, decimal.NewFromInt(30))
		summary.ApplyDelta(entity.CategoryStockMarket, decimal.NewFromInt(70))

		uc := NewGetInvestmentSummaryUseCase(&fakeLedgerRepo{summary: summary})

		out, err := uc.Execute(ctx, GetInvestmentSummaryInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Allocations) != len(entity.AllInvestmentCategories) {
			t.Fatalf("allocations = %d, want %d", len(out.Allocations), len(entity.AllInvestmentCategories))
		}

		byCategory := make(map[entity.InvestmentCategory]*CategoryAllocation)
		for _, a := range out.Allocations {
			byCategory[a.Category] = a
		}

		if got := byCategory[entity.CategoryGovernmentBonds].Percentage; got != 30 {
			t.Errorf("government bonds percentage = %v, want 30", got)
		}
		if got := byCategory[entity.CategoryStockMarket].Percentage; got != 70 {
			t.Errorf("stock market percentage = %v, want 70", got)
		}
		if got := byCategory[entity.CategoryInvestmentFunds].Percentage; got != 0 {
			t.Errorf("investment funds percentage = %v, want 0", got)
		}

		if byCategory[entity.CategoryGovernmentBonds].Group != entity.IncomeGroupFixed {
			t.Error("government bonds should be fixed income")
		}
		if byCategory[entity.CategoryStockMarket].Group != entity.IncomeGroupVariable {
			t.Error("stock market should be variable income")
		}

		if out.FormattedGrandTotal != "R$ 100,00" {
			t.Errorf("formatted grand total = %q, want %q", out.FormattedGrandTotal, "R$ 100,00")
		}
	})

	t.Run("all-zero aggregate yields zero percentages", func(t *testing.T) {
		uc := NewGetInvestmentSummaryUseCase(&fakeLedgerRepo{summary: entity.EmptyInvestmentSummary()})

		out, err := uc.Execute(ctx, GetInvestmentSummaryInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, a := range out.Allocations {
			if a.Percentage != 0 {
				t.Errorf("%s percentage = %v, want 0", a.Category, a.Percentage)
			}
		}
	})
}
