package entity

import "github.com/shopspring/decimal"

// InvestmentCategory is one of the five fixed labels an investment or
// withdrawal transaction can reference.
type InvestmentCategory string

const (
	CategoryStockMarket            InvestmentCategory = "stock_market"
	CategoryInvestmentFunds        InvestmentCategory = "investment_funds"
	CategoryPrivatePensionFixed    InvestmentCategory = "private_pension_fixed"
	CategoryPrivatePensionVariable InvestmentCategory = "private_pension_variable"
	CategoryGovernmentBonds        InvestmentCategory = "government_bonds"
)

// IncomeGroup partitions investment categories into fixed and variable income.
type IncomeGroup string

const (
	IncomeGroupFixed    IncomeGroup = "fixed"
	IncomeGroupVariable IncomeGroup = "variable"
)

// AllInvestmentCategories lists every category in display order.
var AllInvestmentCategories = []InvestmentCategory{
	CategoryStockMarket,
	CategoryInvestmentFunds,
	CategoryPrivatePensionFixed,
	CategoryPrivatePensionVariable,
	CategoryGovernmentBonds,
}

// Valid reports whether c is one of the five known categories.
func (c InvestmentCategory) Valid() bool {
	switch c {
	case CategoryStockMarket, CategoryInvestmentFunds, CategoryPrivatePensionFixed,
		CategoryPrivatePensionVariable, CategoryGovernmentBonds:
		return true
	}
	return false
}

// Group returns the income group the category belongs to.
func (c InvestmentCategory) Group() IncomeGroup {
	switch c {
	case CategoryPrivatePensionFixed, CategoryGovernmentBonds:
		return IncomeGroupFixed
	default:
		return IncomeGroupVariable
	}
}

// InvestmentSummary is the per-user denormalized aggregate of investment
// holdings: one running total per category plus derived group and grand
// totals. Totals are stored numerically; formatting to currency strings
// happens only at the presentation boundary.
type InvestmentSummary struct {
	StockMarket            decimal.Decimal
	InvestmentFunds        decimal.Decimal
	PrivatePensionFixed    decimal.Decimal
	PrivatePensionVariable decimal.Decimal
	GovernmentBonds        decimal.Decimal

	FixedTotal    decimal.Decimal
	VariableTotal decimal.Decimal
	GrandTotal    decimal.Decimal
}

// EmptyInvestmentSummary returns the all-zero aggregate used when no
// summary has been persisted yet.
func EmptyInvestmentSummary() *InvestmentSummary {
	return &InvestmentSummary{
		StockMarket:            decimal.Zero,
		InvestmentFunds:        decimal.Zero,
		PrivatePensionFixed:    decimal.Zero,
		PrivatePensionVariable: decimal.Zero,
		GovernmentBonds:        decimal.Zero,
		FixedTotal:             decimal.Zero,
		VariableTotal:          decimal.Zero,
		GrandTotal:             decimal.Zero,
	}
}

// CategoryTotal returns the running total for a single category.
func (s *InvestmentSummary) CategoryTotal(category InvestmentCategory) decimal.Decimal {
	switch category {
	case CategoryStockMarket:
		return s.StockMarket
	case CategoryInvestmentFunds:
		return s.InvestmentFunds
	case CategoryPrivatePensionFixed:
		return s.PrivatePensionFixed
	case CategoryPrivatePensionVariable:
		return s.PrivatePensionVariable
	case CategoryGovernmentBonds:
		return s.GovernmentBonds
	}
	return decimal.Zero
}

// ApplyDelta adds delta to exactly one category's running total and
// recomputes the derived totals.
func (s *InvestmentSummary) ApplyDelta(category InvestmentCategory, delta decimal.Decimal) {
	switch category {
	case CategoryStockMarket:
		s.StockMarket = s.StockMarket.Add(delta)
	case CategoryInvestmentFunds:
		s.InvestmentFunds = s.InvestmentFunds.Add(delta)
	case CategoryPrivatePensionFixed:
		s.PrivatePensionFixed = s.PrivatePensionFixed.Add(delta)
	case CategoryPrivatePensionVariable:
		s.PrivatePensionVariable = s.PrivatePensionVariable.Add(delta)
	case CategoryGovernmentBonds:
		s.GovernmentBonds = s.GovernmentBonds.Add(delta)
	}
	s.Recompute()
}

// Recompute re-derives the group and grand totals from the five category
// values. Stored subtotals are never trusted; this runs after every delta.
func (s *InvestmentSummary) Recompute() {
	s.FixedTotal = s.PrivatePensionFixed.Add(s.GovernmentBonds)
	s.VariableTotal = s.InvestmentFunds.Add(s.PrivatePensionVariable).Add(s.StockMarket)
	s.GrandTotal = s.FixedTotal.Add(s.VariableTotal)
}
