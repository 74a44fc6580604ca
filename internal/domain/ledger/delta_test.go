package ledger

import (
	"testing"

	"github.com/bytebank/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func catPtr(c entity.InvestmentCategory) *entity.InvestmentCategory {
	return &c
}

func TestForCreate(t *testing.T) {
	tests := []struct {
		name             string
		transactionType  entity.TransactionType
		category         *entity.InvestmentCategory
		amount           string
		wantBalance      string
		wantCategory     entity.InvestmentCategory
		wantCategoryDiff string
	}{
		{
			name:             "deposit increases balance",
			transactionType:  entity.TransactionTypeDeposit,
			amount:           "100",
			wantBalance:      "100",
			wantCategoryDiff: "0",
		},
		{
			name:             "transfer decreases balance",
			transactionType:  entity.TransactionTypeTransfer,
			amount:           "40",
			wantBalance:      "-40",
			wantCategoryDiff: "0",
		},
		{
			name:             "investment decreases balance and funds category",
			transactionType:  entity.TransactionTypeInvestment,
			category:         catPtr(entity.CategoryGovernmentBonds),
			amount:           "30",
			wantBalance:      "-30",
			wantCategory:     entity.CategoryGovernmentBonds,
			wantCategoryDiff: "30",
		},
		{
			name:             "withdrawal increases balance and drains category",
			transactionType:  entity.TransactionTypeWithdrawal,
			category:         catPtr(entity.CategoryStockMarket),
			amount:           "20",
			wantBalance:      "20",
			wantCategory:     entity.CategoryStockMarket,
			wantCategoryDiff: "-20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ForCreate(tt.transactionType, tt.category, dec(tt.amount))

			if !d.Balance.Equal(dec(tt.wantBalance)) {
				t.Errorf("balance delta = %s, want %s", d.Balance, tt.wantBalance)
			}
			if d.Category != tt.wantCategory {
				t.Errorf("category = %q, want %q", d.Category, tt.wantCategory)
			}
			if !d.CategoryDelta.Equal(dec(tt.wantCategoryDiff)) {
				t.Errorf("category delta = %s, want %s", d.CategoryDelta, tt.wantCategoryDiff)
			}
		})
	}
}

func TestForAmountChange(t *testing.T) {
	t.Run("investment edit applies the difference", func(t *testing.T) {
		d := ForAmountChange(entity.TransactionTypeInvestment, catPtr(entity.CategoryGovernmentBonds), dec("30"), dec("50"))

		if !d.Balance.Equal(dec("-20")) {
			t.Errorf("balance delta = %s, want -20", d.Balance)
		}
		if !d.CategoryDelta.Equal(dec("20")) {
			t.Errorf("category delta = %s, want 20", d.CategoryDelta)
		}
	})

	t.Run("editing to the same amount is a no-op", func(t *testing.T) {
		d := ForAmountChange(entity.TransactionTypeDeposit, nil, dec("75"), dec("75"))

		if !d.Balance.IsZero() || !d.CategoryDelta.IsZero() {
			t.Errorf("expected zero delta, got balance=%s category=%s", d.Balance, d.CategoryDelta)
		}
	})

	t.Run("shrinking a deposit lowers the balance", func(t *testing.T) {
		d := ForAmountChange(entity.TransactionTypeDeposit, nil, dec("100"), dec("60"))

		if !d.Balance.Equal(dec("-40")) {
			t.Errorf("balance delta = %s, want -40", d.Balance)
		}
	})
}

func TestForDelete(t *testing.T) {
	t.Run("delete inverts create exactly", func(t *testing.T) {
		create := ForCreate(entity.TransactionTypeInvestment, catPtr(entity.CategoryInvestmentFunds), dec("30"))
		del := ForDelete(entity.TransactionTypeInvestment, catPtr(entity.CategoryInvestmentFunds), dec("30"))

		if !create.Balance.Add(del.Balance).IsZero() {
			t.Errorf("balance deltas do not cancel: %s + %s", create.Balance, del.Balance)
		}
		if !create.CategoryDelta.Add(del.CategoryDelta).IsZero() {
			t.Errorf("category deltas do not cancel: %s + %s", create.CategoryDelta, del.CategoryDelta)
		}
	})
}

// Replays the canonical lifecycle against a live aggregate: deposit 100,
// invest 30 in government bonds, edit the investment to 50, delete it.
func TestLedgerReplay(t *testing.T) {
	balance := decimal.Zero
	summary := entity.EmptyInvestmentSummary()

	apply := func(d Delta) {
		balance = balance.Add(d.Balance)
		if d.HasCategory() {
			summary.ApplyDelta(d.Category, d.CategoryDelta)
		}
	}

	apply(ForCreate(entity.TransactionTypeDeposit, nil, dec("100")))
	if !balance.Equal(dec("100")) {
		t.Fatalf("after deposit: balance = %s, want 100", balance)
	}

	bonds := catPtr(entity.CategoryGovernmentBonds)

	apply(ForCreate(entity.TransactionTypeInvestment, bonds, dec("30")))
	if !balance.Equal(dec("70")) {
		t.Fatalf("after investment: balance = %s, want 70", balance)
	}
	if !summary.GovernmentBonds.Equal(dec("30")) {
		t.Fatalf("after investment: bonds = %s, want 30", summary.GovernmentBonds)
	}
	if !summary.FixedTotal.Equal(dec("30")) || !summary.GrandTotal.Equal(dec("30")) {
		t.Fatalf("after investment: fixed = %s grand = %s, want 30/30", summary.FixedTotal, summary.GrandTotal)
	}

	apply(ForAmountChange(entity.TransactionTypeInvestment, bonds, dec("30"), dec("50")))
	if !balance.Equal(dec("50")) {
		t.Fatalf("after edit: balance = %s, want 50", balance)
	}
	if !summary.GovernmentBonds.Equal(dec("50")) {
		t.Fatalf("after edit: bonds = %s, want 50", summary.GovernmentBonds)
	}

	apply(ForDelete(entity.TransactionTypeInvestment, bonds, dec("50")))
	if !balance.Equal(dec("100")) {
		t.Fatalf("after delete: balance = %s, want 100", balance)
	}
	if !summary.GovernmentBonds.IsZero() || !summary.GrandTotal.IsZero() {
		t.Fatalf("after delete: bonds = %s grand = %s, want zero", summary.GovernmentBonds, summary.GrandTotal)
	}
}

// Withdrawals are not clamped: redeeming from an empty category drives the
// category total negative rather than failing.
func TestWithdrawalFromEmptyCategory(t *testing.T) {
	balance := decimal.Zero
	summary := entity.EmptyInvestmentSummary()

	d := ForCreate(entity.TransactionTypeWithdrawal, catPtr(entity.CategoryStockMarket), dec("20"))
	balance = balance.Add(d.Balance)
	summary.ApplyDelta(d.Category, d.CategoryDelta)

	if !balance.Equal(dec("20")) {
		t.Errorf("balance = %s, want 20", balance)
	}
	if !summary.StockMarket.Equal(dec("-20")) {
		t.Errorf("stock market = %s, want -20", summary.StockMarket)
	}
	if !summary.VariableTotal.Equal(dec("-20")) {
		t.Errorf("variable total = %s, want -20", summary.VariableTotal)
	}
}
