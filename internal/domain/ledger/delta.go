// Package ledger computes the balance and investment-aggregate effects of
// transaction writes. Every create, edit and delete funnels through a Delta
// so the three mutation paths cannot disagree about signs.
package ledger

import (
	"github.com/bytebank/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Delta is the consolidated effect of one transaction write on the user's
// ledger: a signed balance adjustment plus, when the transaction touches an
// investment category, a signed adjustment to that category's running total.
type Delta struct {
	Balance       decimal.Decimal
	Category      entity.InvestmentCategory
	CategoryDelta decimal.Decimal
}

// HasCategory reports whether the delta adjusts an investment category.
func (d Delta) HasCategory() bool {
	return d.Category != ""
}

// Inverse returns the delta that exactly undoes d.
func (d Delta) Inverse() Delta {
	return Delta{
		Balance:       d.Balance.Neg(),
		Category:      d.Category,
		CategoryDelta: d.CategoryDelta.Neg(),
	}
}

// ForCreate returns the ledger effect of recording a new transaction.
// The balance moves by amount with the sign of the type; an investment adds
// the amount to its category, a withdrawal removes it.
func ForCreate(transactionType entity.TransactionType, category *entity.InvestmentCategory, amount decimal.Decimal) Delta {
	d := Delta{
		Balance:       amount.Mul(transactionType.Sign()),
		CategoryDelta: decimal.Zero,
	}

	if transactionType.RequiresCategory() && category != nil {
		d.Category = *category
		switch transactionType {
		case entity.TransactionTypeInvestment:
			d.CategoryDelta = amount
		case entity.TransactionTypeWithdrawal:
			d.CategoryDelta = amount.Neg()
		}
	}

	return d
}

// ForAmountChange returns the ledger effect of editing a transaction's
// amount in place. The type and category are unchanged, so the effect is
// the create delta of the difference newAmount-oldAmount: editing to the
// same amount yields a zero delta and editing then deleting nets out the
// same as deleting the original.
func ForAmountChange(transactionType entity.TransactionType, category *entity.InvestmentCategory, oldAmount, newAmount decimal.Decimal) Delta {
	return ForCreate(transactionType, category, newAmount.Sub(oldAmount))
}

// ForDelete returns the ledger effect of removing a transaction, the exact
// inverse of creating it.
func ForDelete(transactionType entity.TransactionType, category *entity.InvestmentCategory, amount decimal.Decimal) Delta {
	return ForCreate(transactionType, category, amount).Inverse()
}
