package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/application/adapter"
	"github.com/bytebank/backend/internal/domain/entity"
	"github.com/bytebank/backend/internal/domain/money"
)

// GetInvestmentSummaryInput represents the input for reading the investment summary.
type GetInvestmentSummaryInput struct {
	UserID uuid.UUID
}

// CategoryAllocation is one category's slice of the invested total.
type CategoryAllocation struct {
	Category        entity.InvestmentCategory
	Group           entity.IncomeGroup
	Amount          decimal.Decimal
	FormattedAmount string
	Percentage      float64
}

// GetInvestmentSummaryOutput represents the output of reading the investment summary.
type GetInvestmentSummaryOutput struct {
	Allocations []*CategoryAllocation

	FixedTotal    decimal.Decimal
	VariableTotal decimal.Decimal
	GrandTotal    decimal.Decimal

	FormattedFixedTotal    string
	FormattedVariableTotal string
	FormattedGrandTotal    string
}

// GetInvestmentSummaryUseCase handles reading the investment allocation.
type GetInvestmentSummaryUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetInvestmentSummaryUseCase creates a new GetInvestmentSummaryUseCase instance.
func NewGetInvestmentSummaryUseCase(ledgerRepo adapter.LedgerRepository) *GetInvestmentSummaryUseCase {
	return &GetInvestmentSummaryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute reads the user's investment aggregate and derives each category's
// share of the grand total. All five categories are always present in the
// output, zero-valued ones included, so clients render a stable chart.
func (uc *GetInvestmentSummaryUseCase) Execute(ctx context.Context, input GetInvestmentSummaryInput) (*GetInvestmentSummaryOutput, error) {
	summary, err := uc.ledgerRepo.GetInvestmentSummary(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get investment summary: %w", err)
	}

	allocations := make([]*CategoryAllocation, 0, len(entity.AllInvestmentCategories))
	for _, category := range entity.AllInvestmentCategories {
		amount := summary.CategoryTotal(category)

		percentage := 0.0
		if !summary.GrandTotal.IsZero() {
			percentage, _ = amount.Mul(decimal.NewFromInt(100)).Div(summary.GrandTotal).Round(2).Float64()
		}

		allocations = append(allocations, &CategoryAllocation{
			Category:        category,
			Group:           category.Group(),
			Amount:          amount,
			FormattedAmount: money.Format(amount, amount.IsNegative()),
			Percentage:      percentage,
		})
	}

	return &GetInvestmentSummaryOutput{
		Allocations:            allocations,
		FixedTotal:             summary.FixedTotal,
		VariableTotal:          summary.VariableTotal,
		GrandTotal:             summary.GrandTotal,
		FormattedFixedTotal:    money.Format(summary.FixedTotal, summary.FixedTotal.IsNegative()),
		FormattedVariableTotal: money.Format(summary.VariableTotal, summary.VariableTotal.IsNegative()),
		FormattedGrandTotal:    money.Format(summary.GrandTotal, summary.GrandTotal.IsNegative()),
	}, nil
}
