package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
)

// BalanceModel represents the balances table: one running account balance
// row per user.
type BalanceModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BalanceModel.
func (BalanceModel) TableName() string {
	return "balances"
}

// InvestmentSummaryModel represents the investment_summaries table: one
// denormalized aggregate row per user. The subtotal columns move together
// with the five category columns on every write, so fixed_total,
// variable_total and grand_total always equal the sums of their categories.
type InvestmentSummaryModel struct {
	UserID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StockMarket            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	InvestmentFunds        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrivatePensionFixed    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PrivatePensionVariable decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	GovernmentBonds        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FixedTotal             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	VariableTotal          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	GrandTotal             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	UpdatedAt              time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentSummaryModel.
func (InvestmentSummaryModel) TableName() string {
	return "investment_summaries"
}

// ToEntity converts an InvestmentSummaryModel to a domain InvestmentSummary entity.
func (m *InvestmentSummaryModel) ToEntity() *entity.InvestmentSummary {
	return &entity.InvestmentSummary{
		StockMarket:            m.StockMarket,
		InvestmentFunds:        m.InvestmentFunds,
		PrivatePensionFixed:    m.PrivatePensionFixed,
		PrivatePensionVariable: m.PrivatePensionVariable,
		GovernmentBonds:        m.GovernmentBonds,
		FixedTotal:             m.FixedTotal,
		VariableTotal:          m.VariableTotal,
		GrandTotal:             m.GrandTotal,
	}
}

// InvestmentSummaryFromEntity creates an InvestmentSummaryModel from a
// domain InvestmentSummary entity.
func InvestmentSummaryFromEntity(userID uuid.UUID, summary *entity.InvestmentSummary) *InvestmentSummaryModel {
	return &InvestmentSummaryModel{
		UserID:                 userID,
		StockMarket:            summary.StockMarket,
		InvestmentFunds:        summary.InvestmentFunds,
		PrivatePensionFixed:    summary.PrivatePensionFixed,
		PrivatePensionVariable: summary.PrivatePensionVariable,
		GovernmentBonds:        summary.GovernmentBonds,
		FixedTotal:             summary.FixedTotal,
		VariableTotal:          summary.VariableTotal,
		GrandTotal:             summary.GrandTotal,
		UpdatedAt:              time.Now().UTC(),
	}
}
