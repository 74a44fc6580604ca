package dto

import (
	"github.com/bytebank/backend/internal/application/usecase/ledger"
)

// BalanceResponse represents the account balance in API responses.
type BalanceResponse struct {
	Balance          string `json:"balance"`
	FormattedBalance string `json:"formatted_balance"`
}

// CategoryAllocationResponse represents one category slice of the invested total.
type CategoryAllocationResponse struct {
	Category        string  `json:"category"`
	Group           string  `json:"group"`
	Amount          string  `json:"amount"`
	FormattedAmount string  `json:"formatted_amount"`
	Percentage      float64 `json:"percentage"`
}

// InvestmentSummaryResponse represents the investment allocation in API responses.
type InvestmentSummaryResponse struct {
	Allocations            []CategoryAllocationResponse `json:"allocations"`
	FixedTotal             string                       `json:"fixed_total"`
	VariableTotal          string                       `json:"variable_total"`
	GrandTotal             string                       `json:"grand_total"`
	FormattedFixedTotal    string                       `json:"formatted_fixed_total"`
	FormattedVariableTotal string                       `json:"formatted_variable_total"`
	FormattedGrandTotal    string                       `json:"formatted_grand_total"`
}

// ToBalanceResponse converts a GetBalanceOutput to a BalanceResponse DTO.
func ToBalanceResponse(output *ledger.GetBalanceOutput) BalanceResponse {
	return BalanceResponse{
		Balance:          output.Balance.String(),
		FormattedBalance: output.FormattedBalance,
	}
}

// ToInvestmentSummaryResponse converts a GetInvestmentSummaryOutput to an
// InvestmentSummaryResponse DTO.
func ToInvestmentSummaryResponse(output *ledger.GetInvestmentSummaryOutput) InvestmentSummaryResponse {
	allocations := make([]CategoryAllocationResponse, len(output.Allocations))
	for i, a := range output.Allocations {
		allocations[i] = CategoryAllocationResponse{
			Category:        string(a.Category),
			Group:           string(a.Group),
			Amount:          a.Amount.String(),
			FormattedAmount: a.FormattedAmount,
			Percentage:      a.Percentage,
		}
	}

	return InvestmentSummaryResponse{
		Allocations:            allocations,
		FixedTotal:             output.FixedTotal.String(),
		VariableTotal:          output.VariableTotal.String(),
		GrandTotal:             output.GrandTotal.String(),
		FormattedFixedTotal:    output.FormattedFixedTotal,
		FormattedVariableTotal: output.FormattedVariableTotal,
		FormattedGrandTotal:    output.FormattedGrandTotal,
	}
}
