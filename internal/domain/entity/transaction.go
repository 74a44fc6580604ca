// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of money movement.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeTransfer   TransactionType = "transfer"
	TransactionTypeInvestment TransactionType = "investment"
	// TransactionTypeWithdrawal is a redemption from an investment (Resgate).
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Valid reports whether t is one of the four known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeTransfer,
		TransactionTypeInvestment, TransactionTypeWithdrawal:
		return true
	}
	return false
}

// Sign returns the balance sign for the type: +1 for movements that
// increase the account balance (deposit, withdrawal), -1 for movements
// that decrease it (transfer, investment). The sign is a pure function
// of the type so it can never drift from it.
func (t TransactionType) Sign() decimal.Decimal {
	if t.IsNegative() {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// IsNegative reports whether the type decreases the account balance.
func (t TransactionType) IsNegative() bool {
	return t == TransactionTypeTransfer || t == TransactionTypeInvestment
}

// RequiresCategory reports whether the type must carry an investment category.
func (t TransactionType) RequiresCategory() bool {
	return t == TransactionTypeInvestment || t == TransactionTypeWithdrawal
}

// Attachment references an uploaded receipt in blob storage.
type Attachment struct {
	Path string
	URL  string
}

// Transaction represents one user-initiated money movement.
type Transaction struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time // calendar date of the movement, user-editable
	Amount     decimal.Decimal
	Type       TransactionType
	Category   *InvestmentCategory // set iff Type requires a category
	Attachment *Attachment
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	transactionType TransactionType,
	category *InvestmentCategory,
	attachment *Attachment,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		Amount:     amount,
		Type:       transactionType,
		Category:   category,
		Attachment: attachment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
